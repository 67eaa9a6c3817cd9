package domain

// DependencyManifest is the parsed form of an application's deps.json file.
// It is read-only input to the generation pipeline.
type DependencyManifest struct {
	// Framework is the target framework moniker of the manifest's runtime target.
	Framework string

	// RuntimeID is the runtime identifier of the manifest's runtime target.
	// Empty for portable applications, which take the identifier from the host.
	RuntimeID string

	// Libraries are the runtime libraries of the dependency graph, in
	// manifest order.
	Libraries []RuntimeLibrary

	// RuntimeGraph maps a runtime identifier to its ordered fallback
	// identifiers, used to probe runtime-specific native assets.
	RuntimeGraph map[string][]string
}

// RuntimeLibrary is one runtime dependency from the dependency manifest.
type RuntimeLibrary struct {
	Name    string
	Version string

	// Hash is the package content hash string in "<algorithm>-<value>" form.
	Hash string

	// Serviceable marks a library as eligible for shared caching. The
	// application's own first-party output is not serviceable.
	Serviceable bool

	// AssetGroups are the library's runtime asset groups, in manifest order.
	AssetGroups []AssetGroup
}

// ID returns the canonical name@version identity of the library.
func (l *RuntimeLibrary) ID() string {
	return l.Name + "@" + l.Version
}

// AssetGroup is one group of runtime assets within a library.
type AssetGroup struct {
	// Runtime is the optional runtime qualifier of the group.
	// Empty for the default, runtime-agnostic group.
	Runtime string

	// AssetPaths are slash-separated paths relative to the application
	// directory, as they appear in the manifest.
	AssetPaths []string
}

// RuntimeConfig is the parsed form of an application's runtimeconfig.json.
// The file is optional; its zero value describes a self-contained application.
type RuntimeConfig struct {
	// FrameworkName and FrameworkVersion name the shared framework a portable
	// application runs on. Both are empty for self-contained applications.
	FrameworkName    string
	FrameworkVersion string
}

// Portable reports whether the configuration declares a shared framework
// dependency.
func (c RuntimeConfig) Portable() bool {
	return c.FrameworkName != ""
}

// GeneratedAsset records the output of one generator invocation. It is owned
// by the current processing step and discarded after relocation.
type GeneratedAsset struct {
	// SourcePath is the manifest-relative path of the input assembly.
	SourcePath string

	// Outputs are absolute paths of the files the generator produced.
	Outputs []string
}
