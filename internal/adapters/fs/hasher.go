package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/aot/internal/core/domain"
	"go.trai.ch/zerr"
)

// Hasher fingerprints file and tree content with xxhash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputeTreeHash folds the relative path and content hash of every regular
// file under root into a single fingerprint, in sorted path order. Two trees
// with the same fingerprint hold the same files with the same bytes.
func (h *Hasher) ComputeTreeHash(root string) (string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", root)
	}

	sort.Strings(files)

	digest := xxhash.New()
	for _, path := range files {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return "", zerr.Wrap(err, domain.ErrFileHashFailed.Error())
		}

		_, _ = digest.WriteString(filepath.ToSlash(rel))
		_, _ = digest.Write([]byte{0})

		hash, err := h.ComputeFileHash(path)
		if err != nil {
			return "", err
		}
		if err := binary.Write(digest, binary.LittleEndian, hash); err != nil {
			return "", zerr.Wrap(err, domain.ErrFileHashFailed.Error())
		}
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}
