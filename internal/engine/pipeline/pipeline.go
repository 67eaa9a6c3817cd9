// Package pipeline drives native image generation over a dependency manifest.
// Libraries and assets are processed strictly sequentially; the first error
// aborts the run.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/aot/internal/core/domain"
	"go.trai.ch/aot/internal/core/ports"
	"go.trai.ch/zerr"
)

// Pipeline folds the output strategy's callbacks over the manifest's
// (library, asset) pairs, invoking the generator for every admitted assembly.
type Pipeline struct {
	generator ports.ImageGenerator
	strategy  ports.OutputStrategy
	tracer    ports.Tracer
	logger    ports.Logger

	appDir   string
	excluded map[string]struct{}
}

// NewPipeline creates a new Pipeline for the application directory.
// excludedAssemblies extends the built-in set of assembly names the generator
// rejects.
func NewPipeline(
	generator ports.ImageGenerator,
	strategy ports.OutputStrategy,
	tracer ports.Tracer,
	logger ports.Logger,
	appDir string,
	excludedAssemblies []string,
) *Pipeline {
	return &Pipeline{
		generator: generator,
		strategy:  strategy,
		tracer:    tracer,
		logger:    logger,
		appDir:    appDir,
		excluded:  exclusionSet(excludedAssemblies),
	}
}

// Run processes every library of the manifest once, in manifest order, then
// finalizes the output tree.
func (p *Pipeline) Run(ctx context.Context, manifest *domain.DependencyManifest) error {
	ctx, span := p.tracer.Start(ctx, "generate")
	defer span.End()
	span.SetAttribute("libraries", len(manifest.Libraries))

	seen := make(map[string]struct{}, len(manifest.Libraries))
	for i := range manifest.Libraries {
		lib := &manifest.Libraries[i]
		if _, done := seen[lib.ID()]; done {
			continue
		}
		seen[lib.ID()] = struct{}{}

		if err := p.processLibrary(ctx, lib); err != nil {
			span.RecordError(err)

			return err
		}
	}

	if err := p.strategy.RunComplete(); err != nil {
		span.RecordError(err)

		return err
	}

	return nil
}

// processLibrary runs one library through admission and its asset groups.
// The library completion callback fires once per group, so strategies must
// tolerate the repeat for libraries with several groups.
func (p *Pipeline) processLibrary(ctx context.Context, lib *domain.RuntimeLibrary) error {
	admitted, err := p.strategy.Admit(lib)
	if err != nil {
		return err
	}
	if !admitted {
		return nil
	}

	ctx, span := p.tracer.Start(ctx, lib.ID())
	defer span.End()

	p.logger.Info(fmt.Sprintf("generating native images for %s", lib.ID()))

	for _, group := range lib.AssetGroups {
		if err := p.processGroup(ctx, lib, group); err != nil {
			span.RecordError(err)

			return err
		}
	}

	return nil
}

func (p *Pipeline) processGroup(ctx context.Context, lib *domain.RuntimeLibrary, group domain.AssetGroup) error {
	for _, assetPath := range group.AssetPaths {
		if !strings.EqualFold(path.Ext(assetPath), domain.AssemblyExt) {
			continue
		}
		if p.isExcluded(assetPath) {
			continue
		}

		if err := p.processAsset(ctx, lib, assetPath); err != nil {
			return err
		}
	}

	return p.strategy.LibraryComplete(lib)
}

func (p *Pipeline) processAsset(ctx context.Context, lib *domain.RuntimeLibrary, assetPath string) error {
	ctx, span := p.tracer.Start(ctx, path.Base(assetPath))
	defer span.End()
	span.SetAttribute("package", lib.ID())
	span.SetAttribute("asset", assetPath)

	source := filepath.Join(p.appDir, filepath.FromSlash(assetPath))
	if _, err := os.Stat(source); err != nil {
		notFound := zerr.With(domain.ErrAssetNotFound, "path", source)
		notFound = zerr.With(notFound, "package", lib.ID())
		span.RecordError(notFound)

		return notFound
	}

	outDir, err := p.strategy.AssetDir(lib, assetPath)
	if err != nil {
		span.RecordError(err)

		return err
	}

	outputs, err := p.generator.Generate(ctx, source, outDir)
	if err != nil {
		span.RecordError(err)

		return err
	}

	asset := domain.GeneratedAsset{SourcePath: assetPath, Outputs: outputs}
	if err := p.strategy.AssetComplete(lib, asset); err != nil {
		span.RecordError(err)

		return err
	}

	return nil
}

func (p *Pipeline) isExcluded(assetPath string) bool {
	_, ok := p.excluded[strings.ToLower(path.Base(assetPath))]

	return ok
}

// exclusionSet folds the built-in and configured assembly names into one
// case-insensitive lookup set.
func exclusionSet(extra []string) map[string]struct{} {
	set := make(map[string]struct{}, len(domain.BuiltinExcludedAssemblies)+len(extra))
	for _, name := range domain.BuiltinExcludedAssemblies {
		set[strings.ToLower(name)] = struct{}{}
	}
	for _, name := range extra {
		set[strings.ToLower(name)] = struct{}{}
	}

	return set
}
