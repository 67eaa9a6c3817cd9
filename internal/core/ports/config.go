package ports

import "go.trai.ch/aot/internal/core/domain"

// ConfigLoader defines the interface for loading the tool configuration.
//
//go:generate mockgen -source=config.go -destination=mocks/mock_config.go -package=mocks
type ConfigLoader interface {
	// Load reads the tool configuration from the given path. A missing file
	// yields the default configuration, not an error.
	Load(path string) (*domain.ToolConfig, error)
}
