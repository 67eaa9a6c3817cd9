// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/aot/internal/adapters/config"
	_ "go.trai.ch/aot/internal/adapters/logger"
	_ "go.trai.ch/aot/internal/adapters/manifest"
	_ "go.trai.ch/aot/internal/adapters/target"
	// Register app nodes.
	_ "go.trai.ch/aot/internal/app"
)
