// Package app implements the application layer for aot.
package app

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/aot/internal/adapters/crossgen"
	adapterfs "go.trai.ch/aot/internal/adapters/fs"
	"go.trai.ch/aot/internal/adapters/layout"
	"go.trai.ch/aot/internal/adapters/telemetry"
	"go.trai.ch/aot/internal/core/domain"
	"go.trai.ch/aot/internal/core/ports"
	"go.trai.ch/aot/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader   ports.ConfigLoader
	manifestLoader ports.ManifestLoader
	targetResolver ports.TargetResolver
	logger         ports.Logger
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	manifestLoader ports.ManifestLoader,
	targetResolver ports.TargetResolver,
	log ports.Logger,
) *App {
	return &App{
		configLoader:   configLoader,
		manifestLoader: manifestLoader,
		targetResolver: targetResolver,
		logger:         log,
	}
}

// GenerateOptions configuration for the Generate method.
type GenerateOptions struct {
	// AppName is the application name, the stem of its manifest files.
	AppName string

	// AppDir is the directory holding the deployed application.
	AppDir string

	// OutputDir is the root the selected layout writes into.
	OutputDir string

	// Layout selects the output strategy, layout.KindFlat or layout.KindCache.
	Layout string

	// GeneratorPath is the generator executable. Falls back to the tool
	// configuration when empty.
	GeneratorPath string

	// SymbolWriterPath overrides symbol writer probing when set.
	SymbolWriterPath string

	// CreateSymbols requests debug symbols alongside each native image.
	CreateSymbols bool

	// Overwrite permits replacing cache entries whose stamp disagrees.
	Overwrite bool

	// DotnetRoot is the dotnet installation root for portable applications.
	// Falls back to the tool configuration when empty.
	DotnetRoot string

	// ConfigPath is the tool configuration file. Defaults to aot.yaml in the
	// working directory.
	ConfigPath string
}

// Generate produces native images for every eligible assembly of the
// application in opts.AppDir and lays them out per the selected strategy.
func (a *App) Generate(ctx context.Context, opts GenerateOptions) error {
	// 1. Load the tool configuration
	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = domain.ConfigFileName
	}
	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return err
	}

	generatorPath := opts.GeneratorPath
	if generatorPath == "" {
		generatorPath = cfg.GeneratorPath
	}
	dotnetRoot := opts.DotnetRoot
	if dotnetRoot == "" {
		dotnetRoot = cfg.DotnetRoot
	}

	// 2. Load the dependency manifest
	manifest, err := a.manifestLoader.LoadDeps(opts.AppDir, opts.AppName)
	if err != nil {
		return err
	}

	// 3. Resolve the generation target
	target, err := a.targetResolver.Resolve(opts.AppDir, opts.AppName, dotnetRoot)
	if err != nil {
		return err
	}

	// 4. Pick the output strategy
	strategy, err := a.newStrategy(opts, target)
	if err != nil {
		return err
	}

	// 5. Initialize telemetry
	// The bridge reports span durations through the logger, so the run
	// narrates itself without any exporter wiring.
	tp := setupOTel(telemetry.NewBridge(a.logger))
	defer func() {
		_ = tp.Shutdown(ctx)
	}()
	tracer := telemetry.NewOTelTracer("aot")

	// 6. Initialize the generator invoker
	invoker, err := crossgen.NewInvoker(ctx, crossgen.Options{
		GeneratorPath:    generatorPath,
		AppDir:           opts.AppDir,
		Target:           target,
		RuntimeGraph:     manifest.RuntimeGraph,
		CreateSymbols:    opts.CreateSymbols,
		SymbolWriterPath: opts.SymbolWriterPath,
	}, a.logger)
	if err != nil {
		return err
	}

	// 7. Run the pipeline
	p := pipeline.NewPipeline(
		invoker,
		strategy,
		tracer,
		a.logger,
		opts.AppDir,
		cfg.ExcludedAssemblies,
	)

	return p.Run(ctx, manifest)
}

// newStrategy builds the output strategy for the selected layout.
func (a *App) newStrategy(opts GenerateOptions, target domain.GenerationTarget) (ports.OutputStrategy, error) {
	switch opts.Layout {
	case layout.KindFlat:
		return layout.NewFlat(opts.AppDir, opts.OutputDir, adapterfs.NewCopier()), nil
	case layout.KindCache:
		return layout.NewCache(
			opts.OutputDir,
			target.Architecture(),
			opts.Overwrite,
			adapterfs.NewMover(a.logger),
			a.logger,
		), nil
	default:
		return nil, zerr.With(domain.ErrUnknownLayout, "layout", opts.Layout)
	}
}

// List inventories an optimization cache directory. A directory that does not
// exist yields an empty inventory; packages whose stamp file is missing are
// reported with an empty hash.
func (a *App) List(_ context.Context, dir string) ([]domain.CachedPackage, error) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	archs, err := readSubDirs(dir)
	if err != nil {
		return nil, err
	}

	var packages []domain.CachedPackage
	for _, arch := range archs {
		names, err := readSubDirs(filepath.Join(dir, arch))
		if err != nil {
			return nil, err
		}

		for _, name := range names {
			versions, err := readSubDirs(filepath.Join(dir, arch, name))
			if err != nil {
				return nil, err
			}

			for _, version := range versions {
				pkg, err := inspectPackage(dir, arch, name, version)
				if err != nil {
					return nil, err
				}
				packages = append(packages, pkg)
			}
		}
	}

	return packages, nil
}

// inspectPackage reads one package version directory of the cache layout.
func inspectPackage(dir, arch, name, version string) (domain.CachedPackage, error) {
	pkg := domain.CachedPackage{
		Arch:    arch,
		Name:    name,
		Version: version,
	}

	root := domain.CacheLibraryRoot(dir, arch, name, version)
	stampName := domain.StampFileName(name, version)

	stamp, err := os.ReadFile(filepath.Join(root, stampName)) // #nosec G304 -- path is derived from the cache layout
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Aborted run, listed with an empty hash.
	case err != nil:
		return pkg, zerr.With(zerr.Wrap(err, domain.ErrCacheScanFailed.Error()), "path", root)
	default:
		pkg.Hash = string(stamp)
	}

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() == stampName {
			return nil
		}
		pkg.Assets++

		return nil
	})
	if walkErr != nil {
		return pkg, zerr.With(zerr.Wrap(walkErr, domain.ErrCacheScanFailed.Error()), "path", root)
	}

	return pkg, nil
}

// readSubDirs returns the sorted child directory names of dir, skipping
// dot-prefixed entries such as in-flight staging directories.
func readSubDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheScanFailed.Error()), "path", dir)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() || entry.Name()[0] == '.' {
			continue
		}
		names = append(names, entry.Name())
	}

	return names, nil
}

// setupOTel configures the OpenTelemetry SDK with the logging bridge.
// The returned provider must be shut down when the run ends.
func setupOTel(bridge *telemetry.Bridge) *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(bridge),
	)
	otel.SetTracerProvider(tp)

	return tp
}
