package archive

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/stow/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArchiveCodec = (*Codec)(nil)

// Codec implements ports.ArchiveCodec with gzip-compressed tar files.
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Compress writes a gzip'd tar of srcDir's contents to archivePath. Member
// names are slash-separated paths relative to srcDir; filepath.WalkDir yields
// them in lexical order, so the archive layout is deterministic. Only regular
// files and directories are archived.
func (c *Codec) Compress(ctx context.Context, srcDir, archivePath string) error {
	out, err := os.Create(archivePath) //nolint:gosec // path is built from the cache naming convention
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create archive"), "path", archivePath)
	}
	defer func() { _ = out.Close() }()

	gz := gzip.NewWriter(out)
	tw := tar.NewWriter(gz)

	walkErr := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		return c.writeMember(tw, path, filepath.ToSlash(rel), d)
	})
	if walkErr != nil {
		return zerr.With(zerr.Wrap(walkErr, "failed to compress directory"), "src", srcDir)
	}

	if err := tw.Close(); err != nil {
		return zerr.Wrap(err, "failed to finalize archive")
	}
	if err := gz.Close(); err != nil {
		return zerr.Wrap(err, "failed to finalize archive")
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write archive"), "path", archivePath)
	}
	return nil
}

func (c *Codec) writeMember(tw *tar.Writer, path, name string, d fs.DirEntry) error {
	info, err := d.Info()
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() && !info.IsDir() {
		// Sockets, devices and symlinks are not meaningful vendored payloads.
		return nil
	}

	header, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	header.Name = name
	if info.IsDir() {
		header.Name += "/"
	}
	if err := tw.WriteHeader(header); err != nil {
		return err
	}
	if info.IsDir() {
		return nil
	}

	file, err := os.Open(path) //nolint:gosec // path comes from walking the source directory
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()
	_, err = io.Copy(tw, file)
	return err
}

// Extract recreates an archive's contents under destDir. Member names that
// are absolute or escape destDir are rejected.
func (c *Codec) Extract(ctx context.Context, archivePath, destDir string) error {
	in, err := os.Open(archivePath) //nolint:gosec // path is built from the cache naming convention
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open archive"), "path", archivePath)
	}
	defer func() { _ = in.Close() }()

	gz, err := gzip.NewReader(in)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read archive"), "path", archivePath)
	}
	defer func() { _ = gz.Close() }()

	if err := os.MkdirAll(destDir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create destination"), "path", destDir)
	}

	tr := tar.NewReader(gz)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read archive"), "path", archivePath)
		}
		if err := c.extractMember(tr, header, destDir); err != nil {
			return zerr.With(zerr.With(err, "archive", archivePath), "member", header.Name)
		}
	}
}

// escapesDest reports whether a tar member name would resolve outside the
// destination. Only whole ".." path segments count; names like "a..b" are
// legitimate.
func escapesDest(name string) bool {
	slashed := filepath.ToSlash(name)
	if filepath.IsAbs(filepath.FromSlash(name)) || strings.HasPrefix(slashed, "/") {
		return true
	}
	if slashed == ".." || strings.HasPrefix(slashed, "../") || strings.HasSuffix(slashed, "/..") {
		return true
	}
	return strings.Contains(slashed, "/../")
}

func (c *Codec) extractMember(tr *tar.Reader, header *tar.Header, destDir string) error {
	if escapesDest(header.Name) {
		return zerr.New("archive member escapes destination")
	}
	target := filepath.Join(destDir, filepath.FromSlash(header.Name))

	switch header.Typeflag {
	case tar.TypeDir:
		return os.MkdirAll(target, header.FileInfo().Mode().Perm())
	case tar.TypeReg:
		if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
			return err
		}
		out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, header.FileInfo().Mode().Perm()) //nolint:gosec // path validated above
		if err != nil {
			return err
		}
		//nolint:gosec // vendored payloads are trusted local artifacts
		if _, err := io.Copy(out, tr); err != nil {
			_ = out.Close()
			return err
		}
		return out.Close()
	default:
		// Skip anything Compress would not have produced.
		return nil
	}
}
