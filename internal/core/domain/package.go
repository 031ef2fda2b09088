// Package domain holds the core types for the stow vendoring tool.
package domain

import (
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/zerr"
)

// Filesystem layout conventions shared by the scanner, the archive store and
// the engines.
const (
	// ModulesDirName is the directory under a project root that holds one
	// subdirectory per installed package.
	ModulesDirName = "modules"

	// MetadataFileName is the per-package metadata file exposing the
	// installed version.
	MetadataFileName = "module.yaml"

	// ManifestFileName is the project manifest declaring dependencies.
	ManifestFileName = "stow.yaml"

	// CacheDirName is the default archive cache directory under a project root.
	CacheDirName = "archives"

	// ScopePrefix marks a namespace directory ("@scope") both in the module
	// tree and in the archive cache.
	ScopePrefix = "@"
)

// Mode selects which declared dependency subsets an operation considers.
type Mode string

const (
	// ModeAll merges required, development and optional dependencies.
	ModeAll Mode = "all"

	// ModeProduction restricts operations to required dependencies.
	ModeProduction Mode = "production"
)

// ParseMode validates a user-supplied mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAll, ModeProduction:
		return Mode(s), nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownMode, "failed to parse mode"), "mode", s)
	}
}

// DeclaredSet maps package identifiers to declared version constraints.
// Constraints are opaque strings; they are never compared against installed
// versions.
type DeclaredSet map[string]string

// InstalledSet maps package identifiers to the version physically installed
// under a module directory, as read from each package's metadata file.
type InstalledSet map[string]string

// ArchiveSet maps package identifiers to the version held in the archive
// cache. The cache holds at most one archive per identifier.
type ArchiveSet map[string]string

// IsScoped reports whether an identifier is namespaced ("@scope/name").
func IsScoped(identifier string) bool {
	return strings.HasPrefix(identifier, ScopePrefix) && strings.Contains(identifier, "/")
}

// IdentifierPath maps an identifier onto its relative directory path. Scoped
// identifiers span two path segments.
func IdentifierPath(identifier string) string {
	return filepath.FromSlash(identifier)
}

// SortedKeys returns the identifiers of any of the set types in lexicographic
// order. Engines iterate in this order so runs are deterministic.
func SortedKeys[V any](set map[string]V) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
