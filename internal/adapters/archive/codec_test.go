package archive_test

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stow/internal/adapters/archive"
)

func TestCodec_CompressExtractRoundTrip(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "lib"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(src, "module.yaml"), []byte("version: 1.0.0\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(src, "lib", "index.js"), []byte("module.exports = {}\n"), 0o600))

	work := t.TempDir()
	archivePath := filepath.Join(work, "pkg@1.0.0.tgz")
	codec := archive.NewCodec()

	require.NoError(t, codec.Compress(context.Background(), src, archivePath))

	dest := filepath.Join(work, "out")
	require.NoError(t, codec.Extract(context.Background(), archivePath, dest))

	meta, err := os.ReadFile(filepath.Join(dest, "module.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "version: 1.0.0\n", string(meta))

	lib, err := os.ReadFile(filepath.Join(dest, "lib", "index.js"))
	require.NoError(t, err)
	assert.Equal(t, "module.exports = {}\n", string(lib))
}

func TestCodec_ExtractRejectsEscapingMembers(t *testing.T) {
	work := t.TempDir()
	archivePath := filepath.Join(work, "evil.tgz")

	// Craft an archive with a member that escapes the destination.
	out, err := os.Create(archivePath)
	require.NoError(t, err)
	gz := gzip.NewWriter(out)
	tw := tar.NewWriter(gz)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     "../escape.txt",
		Typeflag: tar.TypeReg,
		Mode:     0o600,
		Size:     0,
	}))
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	require.NoError(t, out.Close())

	dest := filepath.Join(work, "dest")
	err = archive.NewCodec().Extract(context.Background(), archivePath, dest)
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(work, "escape.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestCodec_ExtractAllowsDotsInFilenames(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "CHANGELOG..md"), []byte("history\n"), 0o600))

	work := t.TempDir()
	archivePath := filepath.Join(work, "pkg@1.0.0.tgz")
	codec := archive.NewCodec()

	require.NoError(t, codec.Compress(context.Background(), src, archivePath))

	dest := filepath.Join(work, "out")
	require.NoError(t, codec.Extract(context.Background(), archivePath, dest))

	data, err := os.ReadFile(filepath.Join(dest, "CHANGELOG..md"))
	require.NoError(t, err)
	assert.Equal(t, "history\n", string(data))
}

func TestCodec_ExtractRejectsInteriorTraversal(t *testing.T) {
	work := t.TempDir()
	archivePath := filepath.Join(work, "evil.tgz")

	out, err := os.Create(archivePath)
	require.NoError(t, err)
	gz := gzip.NewWriter(out)
	tw := tar.NewWriter(gz)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     "lib/../../escape.txt",
		Typeflag: tar.TypeReg,
		Mode:     0o600,
		Size:     0,
	}))
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	require.NoError(t, out.Close())

	err = archive.NewCodec().Extract(context.Background(), archivePath, filepath.Join(work, "dest"))
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(work, "escape.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestCodec_CompressMissingSource(t *testing.T) {
	work := t.TempDir()
	err := archive.NewCodec().Compress(context.Background(), filepath.Join(work, "nope"), filepath.Join(work, "a.tgz"))
	require.Error(t, err)
}

func TestCodec_ExtractMissingArchive(t *testing.T) {
	work := t.TempDir()
	err := archive.NewCodec().Extract(context.Background(), filepath.Join(work, "nope.tgz"), filepath.Join(work, "out"))
	require.Error(t, err)
}
