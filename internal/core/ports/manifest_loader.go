package ports

import "go.trai.ch/stow/internal/core/domain"

// ManifestLoader reads a project's declared dependency sets.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest from the given project directory. It returns
	// domain.ErrManifestNotFound if the file is absent and
	// domain.ErrManifestInvalid if it cannot be parsed.
	Load(projectDir string) (*domain.Manifest, error)
}
