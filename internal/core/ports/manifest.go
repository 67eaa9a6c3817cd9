// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/aot/internal/core/domain"

// ManifestLoader defines the interface for reading application manifests.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestLoader interface {
	// LoadDeps reads and parses the dependency manifest for an application.
	// The manifest must exist; a missing file is an error.
	LoadDeps(appDir, appName string) (*domain.DependencyManifest, error)

	// LoadRuntimeConfig reads the optional runtime configuration for an
	// application. A missing file yields the zero value, not an error.
	LoadRuntimeConfig(appDir, appName string) (domain.RuntimeConfig, error)
}
