// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/depfix/internal/adapters/config"
	_ "go.trai.ch/depfix/internal/adapters/fs"
	_ "go.trai.ch/depfix/internal/adapters/logger"
	_ "go.trai.ch/depfix/internal/adapters/manifest"
	_ "go.trai.ch/depfix/internal/adapters/shell"
	_ "go.trai.ch/depfix/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/depfix/internal/app"
	_ "go.trai.ch/depfix/internal/engine/runner"
)
