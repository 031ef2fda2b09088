package domain

import "go.trai.ch/zerr"

var (
	// ErrPathNotFound is returned when no directory in the ancestor chain
	// contains the requested relative path.
	ErrPathNotFound = zerr.New("path not found in directory ancestry")

	// ErrManifestNotFound is returned when the project manifest is absent.
	ErrManifestNotFound = zerr.New("manifest not found")

	// ErrManifestInvalid is returned when the project manifest cannot be parsed.
	ErrManifestInvalid = zerr.New("manifest invalid")

	// ErrMetadataInvalid is returned when a package's metadata file is
	// unreadable or lacks a version.
	ErrMetadataInvalid = zerr.New("module metadata invalid")

	// ErrNotDeclared is returned when a pack target is not a declared dependency.
	ErrNotDeclared = zerr.New("package not declared in manifest")

	// ErrUnknownMode is returned for an unrecognized install mode.
	ErrUnknownMode = zerr.New("unknown mode")
)
