package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/clank/internal/core/ports"
)

const (
	// LauncherNodeID is the unique identifier for the launcher Graft node.
	LauncherNodeID graft.ID = "adapter.launcher"
	// RunnerNodeID is the unique identifier for the runner Graft node.
	RunnerNodeID graft.ID = "adapter.runner"
)

func init() {
	graft.Register(graft.Node[ports.Launcher]{
		ID:        LauncherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.Launcher, error) {
			return NewLauncher(), nil
		},
	})

	graft.Register(graft.Node[ports.Runner]{
		ID:        RunnerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.Runner, error) {
			return NewRunner(), nil
		},
	})
}
