// Package config reads the optional aot.yaml tool configuration.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/aot/internal/core/domain"
	"go.trai.ch/aot/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.ConfigLoader = (*Loader)(nil)

// Load reads the tool configuration from path. A missing file yields the
// default configuration.
func (l *Loader) Load(path string) (*domain.ToolConfig, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return &domain.ToolConfig{}, nil
	}

	var file configFile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, err
	}

	return &domain.ToolConfig{
		ExcludedAssemblies: file.ExcludedAssemblies,
		GeneratorPath:      file.GeneratorPath,
		DotnetRoot:         file.DotnetRoot,
	}, nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is chosen by the user
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
