package ports

import "go.trai.ch/stow/internal/core/domain"

// InstalledScanner enumerates the packages physically installed under a
// project's module directory and its ancestors.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type InstalledScanner interface {
	// Scan walks the ancestor chain from projectDir and returns the
	// identifier to installed-version mapping. When a package is installed
	// at multiple ancestor levels the module directory nearest the
	// filesystem root wins. The scan aborts on the first metadata file that
	// cannot be resolved or parsed.
	Scan(projectDir string) (domain.InstalledSet, error)
}
