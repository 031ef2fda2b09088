// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/stow/internal/adapters/archive"
	_ "go.trai.ch/stow/internal/adapters/fs"
	_ "go.trai.ch/stow/internal/adapters/logger"
	_ "go.trai.ch/stow/internal/adapters/manifest"
	_ "go.trai.ch/stow/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/stow/internal/app"
	_ "go.trai.ch/stow/internal/engine/installer"
	_ "go.trai.ch/stow/internal/engine/reconciler"
)
