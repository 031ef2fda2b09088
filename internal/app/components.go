package app

import "go.trai.ch/stow/internal/core/ports"

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, log ports.Logger) *Components {
	return &Components{
		App:    app,
		Logger: log,
	}
}
