package ports

import "go.trai.ch/aot/internal/core/domain"

// TargetResolver defines the interface for resolving the generation target.
//
//go:generate mockgen -source=target.go -destination=mocks/mock_target.go -package=mocks
type TargetResolver interface {
	// Resolve determines the (framework, runtime identifier, shared framework
	// directory) triple for the application in appDir. Portable applications
	// take the runtime identifier from the host and locate their shared
	// framework below dotnetRoot; self-contained applications take everything
	// from the dependency manifest. An empty dotnetRoot falls back to the
	// DOTNET_ROOT environment variable, then the conventional install path.
	Resolve(appDir, appName, dotnetRoot string) (domain.GenerationTarget, error)
}
