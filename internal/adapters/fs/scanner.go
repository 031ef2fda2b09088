package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/stow/internal/core/domain"
	"go.trai.ch/stow/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.InstalledScanner = (*Scanner)(nil)

// Scanner implements the InstalledScanner interface by reading module
// directories along the ancestor chain.
type Scanner struct {
	resolver ports.PathResolver
}

// NewScanner creates a new Scanner using the given resolver for hoisted
// metadata lookups.
func NewScanner(resolver ports.PathResolver) *Scanner {
	return &Scanner{resolver: resolver}
}

// moduleMetadata is the on-disk shape of a package's metadata file.
type moduleMetadata struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// Scan walks from projectDir toward the filesystem root and records the
// installed version of every package found in a modules directory. Later
// ancestors overwrite earlier ones, so the module directory nearest the root
// wins when a package is installed at multiple levels. The scan aborts on the
// first metadata file that cannot be resolved or parsed.
func (s *Scanner) Scan(projectDir string) (domain.InstalledSet, error) {
	installed := make(domain.InstalledSet)

	for dir := range s.resolver.Ancestors(projectDir) {
		modulesDir := filepath.Join(dir, domain.ModulesDirName)
		identifiers, err := listPackageDirs(modulesDir)
		if err != nil {
			return nil, err
		}

		for _, identifier := range identifiers {
			version, err := s.installedVersion(dir, identifier)
			if err != nil {
				return nil, err
			}
			installed[identifier] = version
		}
	}

	return installed, nil
}

// installedVersion resolves the nearest metadata file for identifier starting
// at dir and reads its version. The metadata may be hoisted above the module
// directory the package was listed in.
func (s *Scanner) installedVersion(dir, identifier string) (string, error) {
	rel := filepath.Join(domain.ModulesDirName, domain.IdentifierPath(identifier), domain.MetadataFileName)
	metaPath, err := s.resolver.Resolve(dir, rel)
	if err != nil {
		return "", zerr.With(err, "package", identifier)
	}

	data, err := os.ReadFile(metaPath) //nolint:gosec // path derives from a scanned module tree
	if err != nil {
		err = zerr.With(zerr.Wrap(domain.ErrMetadataInvalid, "failed to read module metadata"), "path", metaPath)
		return "", zerr.With(err, "package", identifier)
	}

	var meta moduleMetadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		wrapped := zerr.With(zerr.Wrap(domain.ErrMetadataInvalid, "failed to parse module metadata"), "path", metaPath)
		wrapped = zerr.With(wrapped, "package", identifier)
		return "", zerr.With(wrapped, "parse_error", err.Error())
	}
	if meta.Version == "" {
		err := zerr.With(zerr.Wrap(domain.ErrMetadataInvalid, "metadata declares no version"), "path", metaPath)
		return "", zerr.With(err, "package", identifier)
	}

	return meta.Version, nil
}

// listPackageDirs returns the package identifiers directly under modulesDir:
// flat entries plus one extra level under scope directories. Dot-entries
// (such as a .bin directory) are skipped. A missing modules directory is not
// an error; os.ReadDir returns entries sorted, so the result is deterministic.
func listPackageDirs(modulesDir string) ([]string, error) {
	entries, err := os.ReadDir(modulesDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to list module directory"), "path", modulesDir)
	}

	var identifiers []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		if !strings.HasPrefix(name, domain.ScopePrefix) {
			identifiers = append(identifiers, name)
			continue
		}

		scopeDir := filepath.Join(modulesDir, name)
		scoped, err := os.ReadDir(scopeDir)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to list scope directory"), "path", scopeDir)
		}
		for _, sub := range scoped {
			if !sub.IsDir() || strings.HasPrefix(sub.Name(), ".") {
				continue
			}
			identifiers = append(identifiers, name+"/"+sub.Name())
		}
	}

	return identifiers, nil
}
