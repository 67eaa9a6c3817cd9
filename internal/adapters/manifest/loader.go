// Package manifest reads application dependency manifests.
package manifest

import (
	"encoding/json"
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/aot/internal/core/domain"
	"go.trai.ch/aot/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader implements ports.ManifestLoader for deps.json and runtimeconfig.json
// files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.ManifestLoader = (*Loader)(nil)

// LoadDeps reads and parses <appDir>/<appName>.deps.json.
func (l *Loader) LoadDeps(appDir, appName string) (*domain.DependencyManifest, error) {
	path := filepath.Join(appDir, domain.DepsManifestName(appName))

	// #nosec G304 -- path is derived from the application directory
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(domain.ErrManifestNotFound, "path", path)
	}
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
	}

	var file depsFile
	if parseErr := json.Unmarshal(data, &file); parseErr != nil {
		return nil, zerr.Wrap(parseErr, domain.ErrManifestParseFailed.Error())
	}

	return toManifest(path, &file)
}

// LoadRuntimeConfig reads the optional <appDir>/<appName>.runtimeconfig.json.
// A missing file yields the zero configuration.
func (l *Loader) LoadRuntimeConfig(appDir, appName string) (domain.RuntimeConfig, error) {
	path := filepath.Join(appDir, domain.RuntimeConfigName(appName))

	// #nosec G304 -- path is derived from the application directory
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.RuntimeConfig{}, nil
	}
	if err != nil {
		return domain.RuntimeConfig{}, zerr.Wrap(err, domain.ErrRuntimeConfigReadFailed.Error())
	}

	var file runtimeConfigFile
	if parseErr := json.Unmarshal(data, &file); parseErr != nil {
		return domain.RuntimeConfig{}, zerr.Wrap(parseErr, domain.ErrRuntimeConfigParseFailed.Error())
	}

	cfg := domain.RuntimeConfig{}
	if fw := file.RuntimeOptions.Framework; fw != nil {
		cfg.FrameworkName = fw.Name
		cfg.FrameworkVersion = fw.Version
	}

	return cfg, nil
}

// toManifest converts the raw file structure into the domain manifest.
// Libraries and asset paths are sorted so processing order is deterministic
// regardless of JSON map iteration order.
func toManifest(path string, file *depsFile) (*domain.DependencyManifest, error) {
	framework, rid := splitRuntimeTargetName(file.RuntimeTarget.Name)
	if framework == "" {
		err := zerr.With(domain.ErrManifestParseFailed, "reason", "missing runtime target name")
		return nil, zerr.With(err, "path", path)
	}

	target, ok := file.Targets[file.RuntimeTarget.Name]
	if !ok {
		err := zerr.With(domain.ErrManifestParseFailed, "reason", "missing target section")
		return nil, zerr.With(err, "target", file.RuntimeTarget.Name)
	}

	m := &domain.DependencyManifest{
		Framework:    framework,
		RuntimeID:    rid,
		RuntimeGraph: file.Runtimes,
		Libraries:    make([]domain.RuntimeLibrary, 0, len(target)),
	}

	for _, key := range slices.Sorted(maps.Keys(target)) {
		name, version, found := strings.Cut(key, "/")
		if !found {
			err := zerr.With(domain.ErrManifestParseFailed, "reason", "malformed library key")
			return nil, zerr.With(err, "library", key)
		}

		lib := domain.RuntimeLibrary{Name: name, Version: version}
		if meta, hasMeta := file.Libraries[key]; hasMeta {
			lib.Serviceable = meta.Serviceable
			lib.Hash = meta.SHA512
		}
		lib.AssetGroups = toAssetGroups(target[key])

		m.Libraries = append(m.Libraries, lib)
	}

	return m, nil
}

// toAssetGroups builds the library's asset groups: the runtime-agnostic
// default group first, then one group per runtime identifier found in the
// runtimeTargets section, restricted to runtime (not native) assets.
func toAssetGroups(dto targetLibDTO) []domain.AssetGroup {
	var groups []domain.AssetGroup

	if len(dto.Runtime) > 0 {
		groups = append(groups, domain.AssetGroup{
			AssetPaths: slices.Sorted(maps.Keys(dto.Runtime)),
		})
	}

	byRID := make(map[string][]string)
	for assetPath, asset := range dto.RuntimeTargets {
		if asset.AssetType != runtimeAssetType {
			continue
		}
		byRID[asset.Rid] = append(byRID[asset.Rid], assetPath)
	}

	for _, rid := range slices.Sorted(maps.Keys(byRID)) {
		paths := byRID[rid]
		slices.Sort(paths)
		groups = append(groups, domain.AssetGroup{Runtime: rid, AssetPaths: paths})
	}

	return groups
}

// splitRuntimeTargetName splits ".NETCoreApp,Version=v2.0/linux-x64" into the
// framework moniker and the runtime identifier. Portable manifests carry no
// identifier part.
func splitRuntimeTargetName(name string) (framework, rid string) {
	framework, rid, _ = strings.Cut(name, "/")
	return framework, rid
}
