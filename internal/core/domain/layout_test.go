package domain_test

import (
	"path/filepath"
	"testing"

	"go.trai.ch/aot/internal/core/domain"
)

func TestLayoutPaths(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "DepsManifestName",
			got:      domain.DepsManifestName("App"),
			expected: "App.deps.json",
		},
		{
			name:     "RuntimeConfigName",
			got:      domain.RuntimeConfigName("App"),
			expected: "App.runtimeconfig.json",
		},
		{
			name:     "StampFileName",
			got:      domain.StampFileName("Foo", "1.0.0"),
			expected: "Foo.1.0.0.nupkg.sha512",
		},
		{
			name:     "CacheLibraryRoot",
			got:      domain.CacheLibraryRoot("out", "x64", "Foo", "1.0.0"),
			expected: filepath.Join("out", "x64", "Foo", "1.0.0"),
		},
		{
			name:     "RuntimeNativeDir",
			got:      domain.RuntimeNativeDir("linux-x64"),
			expected: filepath.Join("runtimes", "linux-x64", "native"),
		},
		{
			name:     "SharedFrameworkDir",
			got:      domain.SharedFrameworkDir("/usr/share/dotnet", "Microsoft.NETCore.App", "2.0.3"),
			expected: filepath.Join("/usr/share/dotnet", "shared", "Microsoft.NETCore.App", "2.0.3"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s() = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}
