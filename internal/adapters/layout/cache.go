package layout

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"go.trai.ch/aot/internal/adapters/fs"
	"go.trai.ch/aot/internal/core/domain"
	"go.trai.ch/aot/internal/core/ports"
	"go.trai.ch/zerr"
)

// stagingPrefix names the per-run scratch directory the generator writes to
// before files move into their cache location. It lives under the output root
// so the move is a same-filesystem rename, and starts with a dot so cache
// inventory walks skip it.
const stagingPrefix = ".staging-"

// Cache places generated images in the shared package cache layout
// <outputDir>/<arch>/<name>/<version> and guards every package directory with
// a content hash stamp. Concurrent runs coordinate through the stamp alone:
// a matching stamp means no work, a differing one aborts unless overwriting
// was requested.
type Cache struct {
	outputDir string
	arch      string
	overwrite bool
	mover     *fs.Mover
	logger    ports.Logger

	staging string
	entries map[string]*domain.CacheEntry
}

var _ ports.OutputStrategy = (*Cache)(nil)

// NewCache returns a strategy maintaining the shared package cache below
// outputDir for the given architecture.
func NewCache(outputDir, arch string, overwrite bool, mover *fs.Mover, logger ports.Logger) *Cache {
	return &Cache{
		outputDir: outputDir,
		arch:      arch,
		overwrite: overwrite,
		mover:     mover,
		logger:    logger,
		entries:   make(map[string]*domain.CacheEntry),
	}
}

// Admit accepts serviceable libraries whose cached output is missing or
// stale. It parses the manifest hash and compares the persisted stamp: a
// matching stamp means the cache is current and the library is skipped, an
// absent stamp stages a new value, and a differing stamp is a hash mismatch
// error unless overwriting was requested. Nothing touches the disk before the
// comparison succeeds.
func (c *Cache) Admit(lib *domain.RuntimeLibrary) (bool, error) {
	if !lib.Serviceable {
		return false, nil
	}

	hash, err := domain.ParsePackageHash(lib.Hash)
	if err != nil {
		return false, zerr.With(err, "package", lib.ID())
	}

	root := domain.CacheLibraryRoot(c.outputDir, c.arch, lib.Name, lib.Version)
	entry := &domain.CacheEntry{
		Root:      root,
		Hash:      hash,
		StampPath: filepath.Join(root, domain.StampFileName(lib.Name, lib.Version)),
	}

	current, err := os.ReadFile(entry.StampPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		entry.Staged = true
	case err != nil:
		return false, zerr.With(zerr.Wrap(err, domain.ErrStampReadFailed.Error()), "path", entry.StampPath)
	case string(current) == string(entry.Hash):
		c.logger.Info(fmt.Sprintf("%s is already cached, skipping generation", lib.ID()))

		return false, nil
	case !c.overwrite:
		mismatch := zerr.With(domain.ErrHashMismatch, "package", lib.ID())
		mismatch = zerr.With(mismatch, "stamp", entry.StampPath)
		mismatch = zerr.With(mismatch, "expected", string(entry.Hash))

		return false, zerr.With(mismatch, "found", string(current))
	default:
		c.logger.Warn(fmt.Sprintf("overwriting hash stamp for %s, applications sharing this cache may see a cache miss", lib.ID()))
		entry.Staged = true
	}

	c.entries[lib.ID()] = entry

	return true, nil
}

// AssetDir returns a scratch directory mirroring the asset's manifest-relative
// directory below the per-run staging root, creating both as needed.
func (c *Cache) AssetDir(_ *domain.RuntimeLibrary, assetPath string) (string, error) {
	staging, err := c.stagingRoot()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(staging, filepath.FromSlash(path.Dir(assetPath)))
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrOutputDirCreateFailed.Error()), "path", dir)
	}

	return dir, nil
}

// stagingRoot lazily creates the per-run staging directory under the output
// root. Runs that admit no assets create nothing.
func (c *Cache) stagingRoot() (string, error) {
	if c.staging != "" {
		return c.staging, nil
	}

	if err := os.MkdirAll(c.outputDir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrOutputDirCreateFailed.Error()), "path", c.outputDir)
	}

	staging, err := os.MkdirTemp(c.outputDir, stagingPrefix)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrOutputDirCreateFailed.Error()), "path", c.outputDir)
	}

	c.staging = staging

	return staging, nil
}

// AssetComplete moves every produced file from the staging directory into the
// library's cache root, below the asset's manifest-relative directory. An
// existing destination is replaced, last writer wins.
func (c *Cache) AssetComplete(lib *domain.RuntimeLibrary, asset domain.GeneratedAsset) error {
	root := domain.CacheLibraryRoot(c.outputDir, c.arch, lib.Name, lib.Version)
	dir := filepath.Join(root, filepath.FromSlash(path.Dir(asset.SourcePath)))

	for _, output := range asset.Outputs {
		if err := c.mover.MoveFile(output, filepath.Join(dir, filepath.Base(output))); err != nil {
			return err
		}
	}

	return nil
}

// LibraryComplete writes the staged hash value to the library's stamp file.
// Nothing is written when no value was staged or when the cache root does not
// exist, so a library that produced zero assets gains no stamp. The write
// repeats with identical content when a library has several asset groups.
func (c *Cache) LibraryComplete(lib *domain.RuntimeLibrary) error {
	entry, ok := c.entries[lib.ID()]
	if !ok || !entry.Staged {
		return nil
	}

	if _, err := os.Stat(entry.Root); errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStampWriteFailed.Error()), "path", entry.StampPath)
	}

	if err := os.WriteFile(entry.StampPath, []byte(entry.Hash), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStampWriteFailed.Error()), "path", entry.StampPath)
	}

	return nil
}

// RunComplete removes the staging directory. The cache tree itself is already
// final, every asset moved into place as it completed.
func (c *Cache) RunComplete() error {
	if c.staging == "" {
		return nil
	}

	if err := os.RemoveAll(c.staging); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove staging directory"), "path", c.staging)
	}

	c.staging = ""

	return nil
}
