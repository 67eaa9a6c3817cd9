// Package fs provides filesystem helpers for placing generated artifacts: a
// recursive mirror copier, a delete-then-move mover, and a content hasher.
package fs

import (
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/aot/internal/core/domain"
	"go.trai.ch/zerr"
)

// Copier mirrors directory trees without overwriting existing files.
type Copier struct{}

// NewCopier creates a new Copier.
func NewCopier() *Copier {
	return &Copier{}
}

// MirrorTree copies every regular file under srcRoot to the same relative
// path under dstRoot, depth-first, creating destination directories as
// needed. Files for which skip returns true (called with the
// slash-separated relative path) and files that already exist at the
// destination are left untouched.
func (c *Copier) MirrorTree(srcRoot, dstRoot string, skip func(rel string) bool) error {
	walkErr := filepath.WalkDir(srcRoot, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(srcRoot, path)
		if err != nil {
			return err
		}
		if skip != nil && skip(filepath.ToSlash(rel)) {
			return nil
		}

		dst := filepath.Join(dstRoot, rel)
		if _, err := os.Stat(dst); err == nil {
			// Existing destination files are never overwritten.
			return nil
		}

		if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
			return err
		}
		return c.CopyFile(path, dst)
	})
	if walkErr != nil {
		return zerr.With(zerr.Wrap(walkErr, domain.ErrCopyFailed.Error()), "source", srcRoot)
	}

	return nil
}

// CopyFile copies src to dst, truncating an existing destination.
func (c *Copier) CopyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "path", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close of read handle

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "path", dst)
	}

	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "path", dst)
	}

	return nil
}
