package ports

import "context"

// ImageGenerator defines the interface for invoking the external native image
// generator on a single assembly.
//
//go:generate mockgen -source=generator.go -destination=mocks/mock_generator.go -package=mocks
type ImageGenerator interface {
	// Generate compiles the assembly at assemblyPath into a native image in
	// outputDir. The call blocks until the external tool exits.
	//
	// On success it returns the absolute paths of every file the tool
	// produced (the image and, if configured, a companion symbol file).
	// On failure the returned error carries the tool's diagnostic output.
	Generate(ctx context.Context, assemblyPath, outputDir string) ([]string, error)
}
