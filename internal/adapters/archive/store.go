package archive

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/stow/internal/core/domain"
	"go.trai.ch/stow/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArchiveStore = (*Store)(nil)

// Store implements ports.ArchiveStore over a flat cache directory, with one
// extra level for scope directories. It is stateless; the cache directory
// flows through every call.
type Store struct {
	codec ports.ArchiveCodec
}

// NewStore creates a new Store using the given codec.
func NewStore(codec ports.ArchiveCodec) *Store {
	return &Store{codec: codec}
}

// List decodes every archive filename in cacheDir. Entries that do not follow
// the naming convention are skipped. A missing cache directory yields an
// empty set.
func (s *Store) List(cacheDir string) (domain.ArchiveSet, error) {
	set := make(domain.ArchiveSet)

	entries, err := os.ReadDir(cacheDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return set, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to list archive cache"), "path", cacheDir)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			if !strings.HasPrefix(name, domain.ScopePrefix) {
				continue
			}
			scopeDir := filepath.Join(cacheDir, name)
			scoped, err := os.ReadDir(scopeDir)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to list archive cache"), "path", scopeDir)
			}
			for _, sub := range scoped {
				if sub.IsDir() {
					continue
				}
				addEntry(set, name+"/"+sub.Name())
			}
			continue
		}
		addEntry(set, name)
	}

	return set, nil
}

func addEntry(set domain.ArchiveSet, rel string) {
	if identifier, version, ok := decodeName(rel); ok {
		set[identifier] = version
	}
}

// Write compresses srcDir into a new archive for (identifier, version),
// creating the scope directory if needed.
func (s *Store) Write(ctx context.Context, cacheDir, identifier, version, srcDir string) error {
	path := s.archivePath(cacheDir, identifier, version)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create archive cache"), "path", filepath.Dir(path))
	}
	if err := s.codec.Compress(ctx, srcDir, path); err != nil {
		return zerr.With(err, "package", identifier)
	}
	return nil
}

// Remove deletes the archive for (identifier, version).
func (s *Store) Remove(cacheDir, identifier, version string) error {
	path := s.archivePath(cacheDir, identifier, version)
	if err := os.Remove(path); err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to remove archive"), "path", path)
		return zerr.With(err, "package", identifier)
	}
	return nil
}

// ExtractAll extracts every archive whose identifier satisfies include into
// destRoot, replacing any existing directory for that identifier. Extractions
// run one at a time; the first codec failure aborts the remaining sequence.
func (s *Store) ExtractAll(ctx context.Context, cacheDir, destRoot string, include func(string) bool) ([]string, error) {
	set, err := s.List(cacheDir)
	if err != nil {
		return nil, err
	}

	var extracted []string
	for _, identifier := range domain.SortedKeys(set) {
		if !include(identifier) {
			continue
		}

		dest := filepath.Join(destRoot, domain.IdentifierPath(identifier))
		if err := os.RemoveAll(dest); err != nil {
			err = zerr.With(zerr.Wrap(err, "failed to clear install directory"), "path", dest)
			return extracted, zerr.With(err, "package", identifier)
		}

		archivePath := s.archivePath(cacheDir, identifier, set[identifier])
		if err := s.codec.Extract(ctx, archivePath, dest); err != nil {
			return extracted, zerr.With(err, "package", identifier)
		}
		extracted = append(extracted, identifier)
	}

	return extracted, nil
}

func (s *Store) archivePath(cacheDir, identifier, version string) string {
	return filepath.Join(cacheDir, filepath.FromSlash(encodeName(identifier, version)))
}
