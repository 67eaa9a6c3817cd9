package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/aot/internal/core/domain"
	"go.trai.ch/aot/internal/core/ports"
	"go.trai.ch/zerr"
)

// Mover places files with delete-then-move semantics.
type Mover struct {
	logger ports.Logger
}

// NewMover creates a new Mover.
func NewMover(logger ports.Logger) *Mover {
	return &Mover{logger: logger}
}

// MoveFile renames src to dst, creating the destination directory as
// needed. An existing destination file is deleted first with an
// informational notice; the last writer wins.
func (m *Mover) MoveFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputDirCreateFailed.Error()), "path", filepath.Dir(dst))
	}

	if _, err := os.Stat(dst); err == nil {
		m.logger.Info(fmt.Sprintf("replacing existing file %s", dst))
		if err := os.Remove(dst); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrMoveFailed.Error()), "path", dst)
		}
	}

	if err := os.Rename(src, dst); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMoveFailed.Error()), "path", dst)
	}

	return nil
}
