// Package fs provides filesystem adapters for path resolution and installed
// state scanning.
package fs

import (
	"iter"
	"os"
	"path/filepath"

	"go.trai.ch/stow/internal/core/domain"
	"go.trai.ch/stow/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PathResolver = (*Resolver)(nil)

// Resolver implements the PathResolver interface by climbing the directory
// ancestry.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve searches startDir, then each ancestor in turn up to the filesystem
// root, for a readable file at relPath. The nearest match wins.
func (r *Resolver) Resolve(startDir, relPath string) (string, error) {
	for dir := range r.Ancestors(startDir) {
		candidate := filepath.Join(dir, relPath)
		info, err := os.Stat(candidate)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		return candidate, nil
	}
	// Wrap before attaching metadata so errors.Is still reaches the sentinel.
	err := zerr.With(zerr.Wrap(domain.ErrPathNotFound, "resolve failed"), "relative_path", relPath)
	return "", zerr.With(err, "start_dir", startDir)
}

// Ancestors yields startDir and each of its ancestors up to the filesystem
// root, nearest-first. Paths are made absolute so the chain terminates at the
// root rather than at ".".
func (r *Resolver) Ancestors(startDir string) iter.Seq[string] {
	return func(yield func(string) bool) {
		dir, err := filepath.Abs(startDir)
		if err != nil {
			dir = filepath.Clean(startDir)
		}
		for {
			if !yield(dir) {
				return
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				return
			}
			dir = parent
		}
	}
}
