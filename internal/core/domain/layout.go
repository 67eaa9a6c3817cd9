package domain

import "path/filepath"

const (
	// AssemblyExt is the file extension of managed assemblies eligible for
	// native image generation.
	AssemblyExt = ".dll"

	// SymbolExt is the file extension of companion debug symbol files.
	SymbolExt = ".pdb"

	// StampExt is the file extension of cache hash stamp files.
	StampExt = ".nupkg.sha512"

	// DepsManifestExt is the file extension of dependency manifests.
	DepsManifestExt = ".deps.json"

	// RuntimeConfigExt is the file extension of runtime configuration files.
	RuntimeConfigExt = ".runtimeconfig.json"

	// RuntimeAssetDirName is the directory holding runtime-specific assets
	// inside an application directory (runtimes/<rid>/native).
	RuntimeAssetDirName = "runtimes"

	// NativeAssetDirName is the native asset directory below a runtime
	// identifier directory.
	NativeAssetDirName = "native"

	// SharedFrameworkDirName is the directory holding shared framework
	// versions below a dotnet installation root.
	SharedFrameworkDirName = "shared"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DepsManifestName returns the dependency manifest file name for an
// application, e.g. "App.deps.json".
func DepsManifestName(appName string) string {
	return appName + DepsManifestExt
}

// RuntimeConfigName returns the runtime configuration file name for an
// application, e.g. "App.runtimeconfig.json".
func RuntimeConfigName(appName string) string {
	return appName + RuntimeConfigExt
}

// StampFileName returns the hash stamp file name for a package version.
// It joins name, version, and the stamp extension.
func StampFileName(name, version string) string {
	return name + "." + version + StampExt
}

// CacheLibraryRoot returns the cache directory for a package version.
// It joins the output directory, architecture, name, and version.
func CacheLibraryRoot(outputDir, arch, name, version string) string {
	return filepath.Join(outputDir, arch, name, version)
}

// RuntimeNativeDir returns the runtime-specific native asset directory for a
// runtime identifier, relative to the application directory.
func RuntimeNativeDir(rid string) string {
	return filepath.Join(RuntimeAssetDirName, rid, NativeAssetDirName)
}

// CachedPackage is one package version found in an optimization cache
// directory, as reported by the cache inventory.
type CachedPackage struct {
	Arch    string
	Name    string
	Version string

	// Hash is the raw stamp value. Empty when the stamp file is missing,
	// which marks a package version an aborted run left behind.
	Hash string

	// Assets is the number of cached files below the package root, the
	// stamp file excluded.
	Assets int
}

// SharedFrameworkDir returns the installation directory of a shared framework
// version below a dotnet root.
func SharedFrameworkDir(dotnetRoot, name, version string) string {
	return filepath.Join(dotnetRoot, SharedFrameworkDirName, name, version)
}
