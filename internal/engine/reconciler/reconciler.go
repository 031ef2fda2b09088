// Package reconciler implements the pack workflow: aligning the archive cache
// with the installed state, filtered by the declared dependency set.
package reconciler

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/stow/internal/core/domain"
	"go.trai.ch/stow/internal/core/ports"
	"go.trai.ch/zerr"
)

// Reconciler computes and applies the archive mutations needed to bring the
// cache in line with what is installed.
type Reconciler struct {
	resolver ports.PathResolver
	scanner  ports.InstalledScanner
	store    ports.ArchiveStore
	logger   ports.Logger
	tracer   ports.Tracer
}

// New creates a new Reconciler.
func New(
	resolver ports.PathResolver,
	scanner ports.InstalledScanner,
	store ports.ArchiveStore,
	log ports.Logger,
	tracer ports.Tracer,
) *Reconciler {
	return &Reconciler{
		resolver: resolver,
		scanner:  scanner,
		store:    store,
		logger:   log,
		tracer:   tracer,
	}
}

// Reconcile packs every declared and installed package whose archive is
// missing or stale. A non-empty target restricts the run to that single
// package, which must be declared. Archive mutations run strictly one at a
// time; the first failure aborts the remaining sequence without rollback, and
// a re-run converges from whatever state was left behind.
func (r *Reconciler) Reconcile(ctx context.Context, projectDir, cacheDir string, declared domain.DeclaredSet, target string) error {
	ctx, span := r.tracer.Start(ctx, "reconcile")
	defer span.End()
	span.SetAttribute("project_dir", projectDir)

	if target != "" {
		if _, ok := declared[target]; !ok {
			err := zerr.With(zerr.Wrap(domain.ErrNotDeclared, "invalid pack target"), "package", target)
			span.RecordError(err)
			return err
		}
	}

	installed, err := r.scanner.Scan(projectDir)
	if err != nil {
		span.RecordError(err)
		return err
	}
	archived, err := r.store.List(cacheDir)
	if err != nil {
		span.RecordError(err)
		return err
	}

	// Consistency findings are diagnostics for batch runs only; they never
	// affect the exit status.
	if target == "" {
		r.report(declared, installed, archived)
	}

	packed := 0
	for _, identifier := range domain.SortedKeys(installed) {
		if target != "" && identifier != target {
			continue
		}
		if _, ok := declared[identifier]; !ok {
			// Installed but not a dependency.
			continue
		}

		version := installed[identifier]
		if have, ok := archived[identifier]; ok {
			if have == version {
				continue
			}
			if err := r.store.Remove(cacheDir, identifier, have); err != nil {
				span.RecordError(err)
				return err
			}
			r.logger.Info(fmt.Sprintf("removed stale archive %s@%s", identifier, have))
		}

		if err := r.pack(ctx, projectDir, cacheDir, identifier, version); err != nil {
			span.RecordError(err)
			return err
		}
		r.logger.Info(fmt.Sprintf("packed %s@%s", identifier, version))
		packed++
	}

	span.SetAttribute("packed", packed)
	return nil
}

// pack compresses the package's resolved install directory into a new
// archive. The directory is located through the metadata file so hoisted
// packages compress from their actual install location.
func (r *Reconciler) pack(ctx context.Context, projectDir, cacheDir, identifier, version string) error {
	rel := filepath.Join(domain.ModulesDirName, domain.IdentifierPath(identifier), domain.MetadataFileName)
	metaPath, err := r.resolver.Resolve(projectDir, rel)
	if err != nil {
		return zerr.With(err, "package", identifier)
	}
	return r.store.Write(ctx, cacheDir, identifier, version, filepath.Dir(metaPath))
}

// report logs orphaned archives and declared-but-missing installs.
func (r *Reconciler) report(declared domain.DeclaredSet, installed domain.InstalledSet, archived domain.ArchiveSet) {
	for _, identifier := range domain.SortedKeys(archived) {
		if _, ok := declared[identifier]; !ok {
			r.logger.Info(fmt.Sprintf("archive %s@%s is not declared in the manifest", identifier, archived[identifier]))
		}
	}
	for _, identifier := range domain.SortedKeys(declared) {
		if _, ok := installed[identifier]; !ok {
			r.logger.Warn(fmt.Sprintf("%s is declared but not installed; nothing to pack", identifier))
		}
	}
}
