// Package app implements the application layer for stow.
package app

import (
	"context"
	"path/filepath"

	"go.trai.ch/stow/internal/core/domain"
	"go.trai.ch/stow/internal/core/ports"
	"go.trai.ch/stow/internal/engine/installer"
	"go.trai.ch/stow/internal/engine/reconciler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	manifests  ports.ManifestLoader
	reconciler *reconciler.Reconciler
	installer  *installer.Installer
}

// New creates a new App instance.
func New(manifests ports.ManifestLoader, rec *reconciler.Reconciler, inst *installer.Installer) *App {
	return &App{
		manifests:  manifests,
		reconciler: rec,
		installer:  inst,
	}
}

// Install replays the archive cache into the project's module directory for
// every dependency declared in the given mode.
func (a *App) Install(ctx context.Context, projectDir, cacheDir string, mode domain.Mode) error {
	declared, err := a.declared(projectDir, mode)
	if err != nil {
		return err
	}
	if err := a.installer.Install(ctx, projectDir, resolveCacheDir(projectDir, cacheDir), declared); err != nil {
		return zerr.Wrap(err, "install failed")
	}
	return nil
}

// Pack reconciles the archive cache with the installed state. A non-empty
// target packs only that package.
func (a *App) Pack(ctx context.Context, projectDir, cacheDir string, mode domain.Mode, target string) error {
	declared, err := a.declared(projectDir, mode)
	if err != nil {
		return err
	}
	if err := a.reconciler.Reconcile(ctx, projectDir, resolveCacheDir(projectDir, cacheDir), declared, target); err != nil {
		return zerr.Wrap(err, "pack failed")
	}
	return nil
}

// declared loads the manifest and merges its subsets for the given mode.
// All three dependency sets are re-read from disk on every invocation.
func (a *App) declared(projectDir string, mode domain.Mode) (domain.DeclaredSet, error) {
	manifest, err := a.manifests.Load(projectDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load manifest")
	}
	return manifest.Merged(mode), nil
}

// resolveCacheDir defaults the cache directory to <projectDir>/archives.
func resolveCacheDir(projectDir, cacheDir string) string {
	if cacheDir != "" {
		return cacheDir
	}
	return filepath.Join(projectDir, domain.CacheDirName)
}
