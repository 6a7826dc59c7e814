// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/clank/internal/adapters/config"
	_ "go.trai.ch/clank/internal/adapters/locator"
	_ "go.trai.ch/clank/internal/adapters/logger"
	_ "go.trai.ch/clank/internal/adapters/shell"
	_ "go.trai.ch/clank/internal/adapters/telemetry"
	_ "go.trai.ch/clank/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/clank/internal/app"
)
