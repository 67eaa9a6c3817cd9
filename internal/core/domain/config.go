package domain

const (
	// ConfigFileName is the name of the optional tool configuration file.
	ConfigFileName = "aot.yaml"
)

// BuiltinExcludedAssemblies are assembly file names never handed to the
// generator. The runtime ships them pre-compiled and the generator rejects
// them. Names are matched case-insensitively against the asset file name.
var BuiltinExcludedAssemblies = []string{
	"mscorlib.dll",
	"mscorlib.ni.dll",
	"System.Private.CoreLib.dll",
	"System.Private.CoreLib.ni.dll",
}

// ToolConfig is the parsed tool configuration. All fields are optional;
// the zero value is the default configuration.
type ToolConfig struct {
	// ExcludedAssemblies extends the built-in set of assembly file names the
	// generator is known to reject. Names are matched case-insensitively.
	ExcludedAssemblies []string

	// GeneratorPath is a default generator executable path, used when no
	// path is given on the command line.
	GeneratorPath string

	// DotnetRoot is a default dotnet installation root for locating shared
	// frameworks of portable applications.
	DotnetRoot string
}
