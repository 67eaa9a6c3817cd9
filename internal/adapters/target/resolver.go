// Package target resolves the generation target for an application.
package target

import (
	"fmt"
	"os"
	"runtime"

	"go.trai.ch/aot/internal/core/domain"
	"go.trai.ch/aot/internal/core/ports"
	"go.trai.ch/zerr"
)

// DotnetRootEnv is the environment variable naming the dotnet installation
// root, consulted when no root is given explicitly.
const DotnetRootEnv = "DOTNET_ROOT"

// Resolver implements ports.TargetResolver on top of the manifest loader.
type Resolver struct {
	loader ports.ManifestLoader
	logger ports.Logger
}

// NewResolver creates a new Resolver with the given manifest loader and logger.
func NewResolver(loader ports.ManifestLoader, logger ports.Logger) *Resolver {
	return &Resolver{loader: loader, logger: logger}
}

var _ ports.TargetResolver = (*Resolver)(nil)

// Resolve determines the generation target for the application in appDir.
// The presence of a framework reference in the runtime configuration decides
// between portable and self-contained resolution. The resolved framework must
// be the supported moniker.
func (r *Resolver) Resolve(appDir, appName, dotnetRoot string) (domain.GenerationTarget, error) {
	cfg, err := r.loader.LoadRuntimeConfig(appDir, appName)
	if err != nil {
		return domain.GenerationTarget{}, err
	}

	deps, err := r.loader.LoadDeps(appDir, appName)
	if err != nil {
		return domain.GenerationTarget{}, err
	}

	var target domain.GenerationTarget
	if cfg.Portable() {
		target = r.resolvePortable(deps, cfg, dotnetRoot)
	} else {
		target, err = resolveSelfContained(deps)
		if err != nil {
			return domain.GenerationTarget{}, err
		}
	}

	if target.Framework != domain.SupportedFramework {
		wrapped := zerr.With(domain.ErrUnsupportedFramework, "framework", target.Framework)
		return domain.GenerationTarget{}, zerr.With(wrapped, "supported", domain.SupportedFramework)
	}

	r.logger.Info(fmt.Sprintf("resolved target %s for runtime %s", target.Framework, target.RuntimeID))

	return target, nil
}

// resolvePortable builds the target for an application running on a shared
// framework. The runtime identifier comes from the host, not the manifest,
// because portable applications run under whatever host launches them.
func (r *Resolver) resolvePortable(
	deps *domain.DependencyManifest,
	cfg domain.RuntimeConfig,
	dotnetRoot string,
) domain.GenerationTarget {
	root := dotnetRoot
	if root == "" {
		root = os.Getenv(DotnetRootEnv)
	}
	if root == "" {
		root = defaultDotnetRoot()
	}

	return domain.GenerationTarget{
		Framework:          deps.Framework,
		RuntimeID:          HostRID(),
		SharedFrameworkDir: domain.SharedFrameworkDir(root, cfg.FrameworkName, cfg.FrameworkVersion),
	}
}

// resolveSelfContained builds the target from the manifest's runtime target
// alone. The manifest must carry a runtime identifier.
func resolveSelfContained(deps *domain.DependencyManifest) (domain.GenerationTarget, error) {
	if deps.RuntimeID == "" {
		return domain.GenerationTarget{}, zerr.With(domain.ErrRuntimeIdentifierMissing, "framework", deps.Framework)
	}

	return domain.GenerationTarget{
		Framework: deps.Framework,
		RuntimeID: deps.RuntimeID,
	}, nil
}

// HostRID returns the runtime identifier of the host environment, built from
// the portable OS and architecture names (e.g. "linux-x64").
func HostRID() string {
	return hostOS(runtime.GOOS) + "-" + hostArch(runtime.GOARCH)
}

func hostOS(goos string) string {
	switch goos {
	case "darwin":
		return "osx"
	case "windows":
		return "win"
	default:
		return goos
	}
}

func hostArch(goarch string) string {
	switch goarch {
	case "amd64":
		return "x64"
	case "386":
		return "x86"
	default:
		return goarch
	}
}

// defaultDotnetRoot returns the conventional dotnet installation root for the
// host operating system.
func defaultDotnetRoot() string {
	switch runtime.GOOS {
	case "windows":
		return `C:\Program Files\dotnet`
	case "darwin":
		return "/usr/local/share/dotnet"
	default:
		return "/usr/share/dotnet"
	}
}
