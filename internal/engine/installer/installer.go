// Package installer implements the install workflow: replaying cached
// archives into the project's module directory.
package installer

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/stow/internal/core/domain"
	"go.trai.ch/stow/internal/core/ports"
)

// Installer extracts declared archives into the module directory.
type Installer struct {
	store  ports.ArchiveStore
	logger ports.Logger
	tracer ports.Tracer
}

// New creates a new Installer.
func New(store ports.ArchiveStore, log ports.Logger, tracer ports.Tracer) *Installer {
	return &Installer{store: store, logger: log, tracer: tracer}
}

// Install extracts every cached archive whose identifier is in the declared
// set into <projectDir>/modules with full-replace semantics. Archives not in
// the declared set are left untouched in the cache. Extractions are
// sequential and fail fast; completed extractions are not rolled back.
func (i *Installer) Install(ctx context.Context, projectDir, cacheDir string, declared domain.DeclaredSet) error {
	ctx, span := i.tracer.Start(ctx, "install")
	defer span.End()
	span.SetAttribute("project_dir", projectDir)

	modulesDir := filepath.Join(projectDir, domain.ModulesDirName)
	extracted, err := i.store.ExtractAll(ctx, cacheDir, modulesDir, func(identifier string) bool {
		_, ok := declared[identifier]
		return ok
	})
	for _, identifier := range extracted {
		i.logger.Info(fmt.Sprintf("installed %s", identifier))
	}
	if err != nil {
		span.RecordError(err)
		return err
	}

	span.SetAttribute("installed", len(extracted))
	i.logger.Info(fmt.Sprintf("installed %d package(s)", len(extracted)))
	return nil
}
