package ports

import (
	"context"

	"go.trai.ch/stow/internal/core/domain"
)

// ArchiveStore manages the versioned archive cache directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ArchiveStore interface {
	// List decodes every archive filename in cacheDir into an identifier to
	// version mapping. Entries that do not follow the naming convention are
	// skipped.
	List(cacheDir string) (domain.ArchiveSet, error)

	// Write compresses srcDir into a new archive for (identifier, version).
	Write(ctx context.Context, cacheDir, identifier, version, srcDir string) error

	// Remove deletes the archive for (identifier, version).
	Remove(cacheDir, identifier, version string) error

	// ExtractAll extracts every archive whose identifier satisfies include
	// into destRoot, replacing any existing directory for that identifier.
	// Identifiers are processed in lexicographic order; the extracted
	// identifiers are returned in that order.
	ExtractAll(ctx context.Context, cacheDir, destRoot string, include func(identifier string) bool) ([]string, error)
}
