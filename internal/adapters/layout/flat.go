// Package layout implements the output strategies that decide where generated
// native images land: Flat reproduces the application directory structure,
// Cache maintains a shared per-package cache guarded by hash stamps.
package layout

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/aot/internal/adapters/fs"
	"go.trai.ch/aot/internal/core/domain"
	"go.trai.ch/aot/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// KindFlat selects the flat output strategy.
	KindFlat = "flat"

	// KindCache selects the cache output strategy.
	KindCache = "cache"
)

// Flat writes generated images at the asset's manifest-relative path below the
// output directory and, once the run completes, mirrors everything generation
// did not produce from the application directory.
type Flat struct {
	appDir    string
	outputDir string
	copier    *fs.Copier
	generated map[string]struct{}
}

var _ ports.OutputStrategy = (*Flat)(nil)

// NewFlat returns a strategy that reproduces the application directory
// structure below outputDir.
func NewFlat(appDir, outputDir string, copier *fs.Copier) *Flat {
	return &Flat{
		appDir:    appDir,
		outputDir: outputDir,
		copier:    copier,
		generated: make(map[string]struct{}),
	}
}

// Admit accepts every library. The flat layout keeps no per-package state.
func (f *Flat) Admit(*domain.RuntimeLibrary) (bool, error) {
	return true, nil
}

// AssetDir mirrors the asset's manifest-relative directory below the output
// root and creates it.
func (f *Flat) AssetDir(_ *domain.RuntimeLibrary, assetPath string) (string, error) {
	dir := filepath.Join(f.outputDir, filepath.FromSlash(path.Dir(assetPath)))
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrOutputDirCreateFailed.Error()), "path", dir)
	}

	return dir, nil
}

// AssetComplete records the produced files so the final mirror pass leaves
// them in place.
func (f *Flat) AssetComplete(_ *domain.RuntimeLibrary, asset domain.GeneratedAsset) error {
	for _, output := range asset.Outputs {
		rel, err := filepath.Rel(f.outputDir, output)
		if err != nil || strings.HasPrefix(rel, "..") {
			// Outputs outside the output root cannot collide with the mirror.
			continue
		}

		f.generated[filepath.ToSlash(rel)] = struct{}{}
	}

	return nil
}

// LibraryComplete is a no-op, the flat layout finalizes nothing per library.
func (f *Flat) LibraryComplete(*domain.RuntimeLibrary) error {
	return nil
}

// RunComplete copies the remaining application files into the output
// directory. Generated files and pre-existing destination files stay as they
// are.
func (f *Flat) RunComplete() error {
	return f.copier.MirrorTree(f.appDir, f.outputDir, func(rel string) bool {
		_, ok := f.generated[rel]

		return ok
	})
}
