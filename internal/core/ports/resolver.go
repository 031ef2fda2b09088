package ports

import "iter"

// PathResolver locates files by climbing the directory ancestry, modelling
// "closest declaration wins" hoisting.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type PathResolver interface {
	// Resolve searches startDir, then each ancestor up to the filesystem
	// root, for a readable file at relPath. It returns the nearest match as
	// an absolute path, or domain.ErrPathNotFound.
	Resolve(startDir, relPath string) (string, error)

	// Ancestors yields startDir and each of its ancestors up to the
	// filesystem root, nearest-first.
	Ancestors(startDir string) iter.Seq[string]
}
