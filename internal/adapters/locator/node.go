package locator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/clank/internal/adapters/logger"
	"go.trai.ch/clank/internal/adapters/shell"
	"go.trai.ch/clank/internal/core/ports"
)

// NodeID is the unique identifier for the include locator Graft node.
const NodeID graft.ID = "adapter.locator"

func init() {
	graft.Register(graft.Node[ports.IncludeLocator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.RunnerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.IncludeLocator, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(runner, log), nil
		},
	})
}
