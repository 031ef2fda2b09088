// Package manifest provides the project manifest loader for stow.
package manifest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/stow/internal/core/domain"
	"go.trai.ch/stow/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ManifestLoader = (*Loader)(nil)

// Loader implements ports.ManifestLoader using a YAML file.
type Loader struct {
	Filename string
}

// NewLoader creates a Loader for the default manifest filename.
func NewLoader() *Loader {
	return &Loader{Filename: domain.ManifestFileName}
}

// Load reads the manifest from the given project directory.
func (l *Loader) Load(projectDir string) (*domain.Manifest, error) {
	path := filepath.Join(projectDir, l.Filename)
	return Load(path)
}

// Load reads a manifest file from the given path.
func Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrManifestNotFound, "failed to load manifest"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}

	var file manifestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		wrapped := zerr.With(zerr.Wrap(domain.ErrManifestInvalid, "failed to parse manifest"), "path", path)
		return nil, zerr.With(wrapped, "parse_error", err.Error())
	}

	return &domain.Manifest{
		Required:    declaredSet(file.Dependencies),
		Development: declaredSet(file.Development),
		Optional:    declaredSet(file.Optional),
	}, nil
}

func declaredSet(deps map[string]string) domain.DeclaredSet {
	set := make(domain.DeclaredSet, len(deps))
	for id, constraint := range deps {
		set[id] = constraint
	}
	return set
}
