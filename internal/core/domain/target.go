// Package domain contains the core value types for native image generation.
package domain

import "strings"

// SupportedFramework is the only target framework moniker generation supports.
const SupportedFramework = ".NETCoreApp,Version=v2.0"

// GenerationTarget describes what to generate native images for.
// It is created once by the target resolver and read-only afterward.
type GenerationTarget struct {
	// Framework is the target framework moniker, e.g. ".NETCoreApp,Version=v2.0".
	Framework string

	// RuntimeID identifies the OS/architecture pair the images are generated
	// for, e.g. "linux-x64".
	RuntimeID string

	// SharedFrameworkDir is the shared framework installation directory used
	// by portable applications. Empty for self-contained applications.
	SharedFrameworkDir string
}

// Architecture returns the architecture segment of the runtime identifier,
// the part after the last dash (e.g. "x64" for "linux-x64").
func (t GenerationTarget) Architecture() string {
	if i := strings.LastIndex(t.RuntimeID, "-"); i >= 0 {
		return t.RuntimeID[i+1:]
	}

	return t.RuntimeID
}

// Portable reports whether the application runs on a shared framework.
func (t GenerationTarget) Portable() bool {
	return t.SharedFrameworkDir != ""
}
