// Package crossgen invokes the external native-image generator and resolves
// the host artifacts it needs: the JIT library and the debug symbol writer.
package crossgen

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/aot/internal/core/domain"
	"go.trai.ch/aot/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options configures a generator invoker for one run.
type Options struct {
	// GeneratorPath is the path of the generator executable. Resolution of
	// an installation is up to the caller; an empty path is an error.
	GeneratorPath string

	// AppDir is the directory holding the application's assemblies.
	AppDir string

	// Target is the resolved generation target.
	Target domain.GenerationTarget

	// RuntimeGraph maps a runtime identifier to its fallback chain, taken
	// from the dependency manifest.
	RuntimeGraph map[string][]string

	// CreateSymbols requests debug symbols alongside each native image.
	CreateSymbols bool

	// SymbolWriterPath overrides symbol writer probing when set.
	SymbolWriterPath string
}

// Invoker implements ports.ImageGenerator by running the external generator
// once per assembly.
type Invoker struct {
	execPath      string
	jitPath       string
	platformDirs  []string
	symbolWriter  string
	createSymbols bool
	logger        ports.Logger
}

var _ ports.ImageGenerator = (*Invoker)(nil)

// NewInvoker resolves everything a run needs up front: the generator
// executable, the JIT library, and, when symbols are requested, a generator
// version recent enough to produce them plus the symbol writer assembly.
func NewInvoker(ctx context.Context, opts Options, logger ports.Logger) (*Invoker, error) {
	if opts.GeneratorPath == "" {
		return nil, domain.ErrGeneratorNotConfigured
	}

	execPath, err := exec.LookPath(opts.GeneratorPath)
	if err != nil {
		return nil, zerr.With(domain.ErrGeneratorNotFound, "path", opts.GeneratorPath)
	}

	platformDirs := []string{opts.AppDir}
	if opts.Target.Portable() {
		platformDirs = append(platformDirs, opts.Target.SharedFrameworkDir)
	}

	jitPath, err := probeJIT(platformDirs)
	if err != nil {
		return nil, err
	}

	inv := &Invoker{
		execPath:      execPath,
		jitPath:       jitPath,
		platformDirs:  platformDirs,
		createSymbols: opts.CreateSymbols,
		logger:        logger,
	}

	if !opts.CreateSymbols {
		return inv, nil
	}

	if err := checkSymbolSupport(ctx, execPath); err != nil {
		return nil, err
	}

	writer := opts.SymbolWriterPath
	if writer == "" {
		writer, err = probeSymbolWriter(opts.AppDir, opts.Target, opts.RuntimeGraph, logger)
		if err != nil {
			return nil, err
		}
	} else if !fileExists(writer) {
		return nil, zerr.With(domain.ErrSymbolWriterNotFound, "path", writer)
	}
	inv.symbolWriter = writer

	return inv, nil
}

// Generate runs the generator for one assembly, writing the native image and
// optional symbols into outputDir. It returns the produced file paths, each
// verified to exist.
func (i *Invoker) Generate(ctx context.Context, assemblyPath, outputDir string) ([]string, error) {
	args := []string{
		assemblyPath,
		"--platform-assemblies", strings.Join(i.platformDirs, string(os.PathListSeparator)),
		"--jit-path", i.jitPath,
		"--out-dir", outputDir,
	}
	if i.createSymbols {
		args = append(args, "--create-symbols", "--symbol-writer", i.symbolWriter)
	}

	cmd := exec.CommandContext(ctx, i.execPath, args...) //nolint:gosec // generator path is resolved during setup
	output, err := cmd.CombinedOutput()
	if err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}

		genErr := zerr.With(domain.ErrGenerationFailed, "assembly", filepath.Base(assemblyPath))
		genErr = zerr.With(genErr, "exit_code", exitCode)
		if diag := strings.TrimSpace(string(output)); diag != "" {
			genErr = zerr.With(genErr, "diagnostics", diag)
		}
		return nil, genErr
	}

	base := filepath.Base(assemblyPath)
	outputs := []string{filepath.Join(outputDir, base)}
	if i.createSymbols {
		symbol := strings.TrimSuffix(base, domain.AssemblyExt) + domain.SymbolExt
		outputs = append(outputs, filepath.Join(outputDir, symbol))
	}

	for _, path := range outputs {
		if !fileExists(path) {
			return nil, zerr.With(domain.ErrOutputMissing, "path", path)
		}
	}

	return outputs, nil
}
