package target_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/aot/internal/adapters/target"
	"go.trai.ch/aot/internal/core/domain"
	"go.trai.ch/aot/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type resolverTestMocks struct {
	loader *mocks.MockManifestLoader
	logger *mocks.MockLogger
}

func setupResolverTest(t *testing.T) (*target.Resolver, resolverTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := resolverTestMocks{
		loader: mocks.NewMockManifestLoader(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	return target.NewResolver(m.loader, m.logger), m
}

func TestResolver_Resolve_SelfContained(t *testing.T) {
	r, m := setupResolverTest(t)

	m.loader.EXPECT().LoadRuntimeConfig("/app", "App").Return(domain.RuntimeConfig{}, nil)
	m.loader.EXPECT().LoadDeps("/app", "App").Return(&domain.DependencyManifest{
		Framework: domain.SupportedFramework,
		RuntimeID: "linux-x64",
	}, nil)

	got, err := r.Resolve("/app", "App", "")
	require.NoError(t, err)

	assert.Equal(t, domain.SupportedFramework, got.Framework)
	assert.Equal(t, "linux-x64", got.RuntimeID)
	assert.False(t, got.Portable())
}

func TestResolver_Resolve_Portable(t *testing.T) {
	r, m := setupResolverTest(t)

	m.loader.EXPECT().LoadRuntimeConfig("/app", "App").Return(domain.RuntimeConfig{
		FrameworkName:    "Microsoft.NETCore.App",
		FrameworkVersion: "2.0.3",
	}, nil)
	m.loader.EXPECT().LoadDeps("/app", "App").Return(&domain.DependencyManifest{
		Framework: domain.SupportedFramework,
	}, nil)

	got, err := r.Resolve("/app", "App", "/opt/dotnet")
	require.NoError(t, err)

	assert.Equal(t, target.HostRID(), got.RuntimeID)
	assert.True(t, got.Portable())
	assert.Equal(t, filepath.Join("/opt/dotnet", "shared", "Microsoft.NETCore.App", "2.0.3"), got.SharedFrameworkDir)
}

func TestResolver_Resolve_PortableDotnetRootEnv(t *testing.T) {
	r, m := setupResolverTest(t)

	t.Setenv(target.DotnetRootEnv, "/env/dotnet")

	m.loader.EXPECT().LoadRuntimeConfig("/app", "App").Return(domain.RuntimeConfig{
		FrameworkName:    "Microsoft.NETCore.App",
		FrameworkVersion: "2.0.3",
	}, nil)
	m.loader.EXPECT().LoadDeps("/app", "App").Return(&domain.DependencyManifest{
		Framework: domain.SupportedFramework,
	}, nil)

	got, err := r.Resolve("/app", "App", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/env/dotnet", "shared", "Microsoft.NETCore.App", "2.0.3"), got.SharedFrameworkDir)
}

func TestResolver_Resolve_UnsupportedFramework(t *testing.T) {
	r, m := setupResolverTest(t)

	m.loader.EXPECT().LoadRuntimeConfig("/app", "App").Return(domain.RuntimeConfig{}, nil)
	m.loader.EXPECT().LoadDeps("/app", "App").Return(&domain.DependencyManifest{
		Framework: ".NETCoreApp,Version=v1.1",
		RuntimeID: "linux-x64",
	}, nil)

	_, err := r.Resolve("/app", "App", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFramework)
}

func TestResolver_Resolve_MissingRuntimeIdentifier(t *testing.T) {
	r, m := setupResolverTest(t)

	// No runtime configuration and no runtime identifier in the manifest:
	// the application is neither portable nor a complete self-contained
	// deployment.
	m.loader.EXPECT().LoadRuntimeConfig("/app", "App").Return(domain.RuntimeConfig{}, nil)
	m.loader.EXPECT().LoadDeps("/app", "App").Return(&domain.DependencyManifest{
		Framework: domain.SupportedFramework,
	}, nil)

	_, err := r.Resolve("/app", "App", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRuntimeIdentifierMissing)
}

func TestResolver_Resolve_MissingManifest(t *testing.T) {
	r, m := setupResolverTest(t)

	m.loader.EXPECT().LoadRuntimeConfig("/app", "App").Return(domain.RuntimeConfig{}, nil)
	m.loader.EXPECT().LoadDeps("/app", "App").Return(nil, domain.ErrManifestNotFound)

	_, err := r.Resolve("/app", "App", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrManifestNotFound)
}

func TestHostRID(t *testing.T) {
	rid := target.HostRID()
	require.NotEmpty(t, rid)
	assert.Contains(t, rid, "-")

	if runtime.GOARCH == "amd64" {
		assert.Equal(t, "x64", domain.GenerationTarget{RuntimeID: rid}.Architecture())
	}
}
