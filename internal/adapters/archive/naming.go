// Package archive implements the archive cache and the tar+gzip codec.
package archive

import "strings"

const (
	// Separator splits identifier from version in an archive filename.
	// Identifiers must not contain the separator except as the scope prefix;
	// decoding is undefined otherwise.
	Separator = "@"

	// Extension is the archive file extension.
	Extension = ".tgz"
)

// encodeName maps (identifier, version) to the archive's slash-separated path
// relative to the cache directory. Scoped identifiers keep their scope
// directory, so "@s/pkg" at "1.0.0" encodes to "@s/pkg@1.0.0.tgz".
func encodeName(identifier, version string) string {
	return identifier + Separator + version + Extension
}

// decodeName recovers (identifier, version) from a relative archive path.
// The version is everything after the last separator of the trimmed name;
// a separator at position zero is the scope prefix, not a version split.
func decodeName(rel string) (identifier, version string, ok bool) {
	if !strings.HasSuffix(rel, Extension) {
		return "", "", false
	}
	trimmed := strings.TrimSuffix(rel, Extension)

	idx := strings.LastIndex(trimmed, Separator)
	if idx <= 0 || idx <= strings.LastIndex(trimmed, "/") {
		return "", "", false
	}
	identifier, version = trimmed[:idx], trimmed[idx+1:]
	if version == "" {
		return "", "", false
	}
	return identifier, version, true
}
