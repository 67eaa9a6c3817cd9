package config

// configFile represents the structure of the aot.yaml configuration file.
type configFile struct {
	ExcludedAssemblies []string `yaml:"excludedAssemblies"`
	GeneratorPath      string   `yaml:"generatorPath"`
	DotnetRoot         string   `yaml:"dotnetRoot"`
}
