package crossgen

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/aot/internal/core/domain"
	"go.trai.ch/aot/internal/core/ports"
	"go.trai.ch/zerr"
)

// symbolWriterPrefix is the file name prefix of the platform symbol writer
// assembly shipped with the runtime packages.
const symbolWriterPrefix = "Microsoft.DiaSymReader.Native."

// jitName returns the platform-specific file name of the JIT library the
// generator loads.
func jitName() string {
	switch runtime.GOOS {
	case "windows":
		return "clrjit.dll"
	case "darwin":
		return "libclrjit.dylib"
	default:
		return "libclrjit.so"
	}
}

// probeJIT looks for the JIT library in each directory in order.
func probeJIT(dirs []string) (string, error) {
	name := jitName()
	for _, dir := range dirs {
		candidate := filepath.Join(dir, name)
		if fileExists(candidate) {
			return candidate, nil
		}
	}

	return "", zerr.With(domain.ErrJITNotFound, "name", name)
}

// symbolWriterNames returns the candidate file names for the symbol writer.
// The x64 runtime packages historically shipped the writer under an amd64
// spelling, so both spellings are probed on that architecture.
func symbolWriterNames(arch string) []string {
	names := []string{symbolWriterPrefix + arch + domain.AssemblyExt}
	switch arch {
	case "x64":
		names = append(names, symbolWriterPrefix+"amd64"+domain.AssemblyExt)
	case "amd64":
		names = append(names, symbolWriterPrefix+"x64"+domain.AssemblyExt)
	}

	return names
}

// fallbackChain returns the RID probe order: the target runtime identifier
// followed by its fallbacks from the runtime graph.
func fallbackChain(rid string, graph map[string][]string, logger ports.Logger) []string {
	chain := []string{rid}
	fallbacks, ok := graph[rid]
	if !ok {
		logger.Warn(fmt.Sprintf("runtime %s has no fallback entry in the dependency manifest, symbol writer probing is limited to the exact runtime", rid))
		return chain
	}

	return append(chain, fallbacks...)
}

// probeSymbolWriter looks for the platform symbol writer next to the
// application assemblies and under runtimes/<rid>/native for each runtime in
// the fallback chain.
func probeSymbolWriter(appDir string, target domain.GenerationTarget, graph map[string][]string, logger ports.Logger) (string, error) {
	names := symbolWriterNames(target.Architecture())

	dirs := []string{appDir}
	for _, rid := range fallbackChain(target.RuntimeID, graph, logger) {
		dirs = append(dirs, filepath.Join(appDir, domain.RuntimeNativeDir(rid)))
	}

	// The primary spelling is exhausted across all directories before the
	// alternate spelling is considered.
	for _, name := range names {
		for _, dir := range dirs {
			candidate := filepath.Join(dir, name)
			if fileExists(candidate) {
				return candidate, nil
			}
		}
	}

	swErr := zerr.With(domain.ErrSymbolWriterNotFound, "architecture", target.Architecture())
	return "", zerr.With(swErr, "runtime", target.RuntimeID)
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
