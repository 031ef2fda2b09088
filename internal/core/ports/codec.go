package ports

import "context"

// ArchiveCodec compresses directories to archive files and extracts them back.
//
//go:generate go run go.uber.org/mock/mockgen -source=codec.go -destination=mocks/mock_codec.go -package=mocks
type ArchiveCodec interface {
	// Compress writes an archive of srcDir's contents to archivePath.
	Compress(ctx context.Context, srcDir, archivePath string) error

	// Extract recreates an archive's contents under destDir, creating it if
	// needed.
	Extract(ctx context.Context, archivePath, destDir string) error
}
