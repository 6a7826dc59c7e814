package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/clank/internal/adapters/config"
	"go.trai.ch/clank/internal/adapters/locator"
	"go.trai.ch/clank/internal/adapters/logger"
	"go.trai.ch/clank/internal/adapters/shell"
	"go.trai.ch/clank/internal/adapters/telemetry"
	"go.trai.ch/clank/internal/adapters/watcher"
	"go.trai.ch/clank/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			shell.LauncherNodeID,
			shell.RunnerNodeID,
			locator.NodeID,
			watcher.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	workspace, err := graft.Dep[*config.Workspace](ctx)
	if err != nil {
		return nil, err
	}

	launcher, err := graft.Dep[ports.Launcher](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[ports.Runner](ctx)
	if err != nil {
		return nil, err
	}

	includeLocator, err := graft.Dep[ports.IncludeLocator](ctx)
	if err != nil {
		return nil, err
	}

	fileWatcher, err := graft.Dep[*watcher.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(workspace, launcher, runner, includeLocator, fileWatcher, log, tracer), nil
}
