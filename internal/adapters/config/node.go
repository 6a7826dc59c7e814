package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/clank/internal/adapters/logger"
	"go.trai.ch/clank/internal/core/ports"
)

// NodeID is the unique identifier for the workspace Graft node.
const NodeID graft.ID = "adapter.workspace"

func init() {
	graft.Register(graft.Node[*Workspace]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Workspace, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWorkspace(log), nil
		},
	})
}
