package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/aot/internal/app"
	"go.trai.ch/aot/internal/core/domain"
	"go.trai.ch/aot/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// 1. Setup Mocks
	mockConfig := mocks.NewMockConfigLoader(ctrl)
	mockManifest := mocks.NewMockManifestLoader(ctrl)
	mockResolver := mocks.NewMockTargetResolver(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	// 2. Create Real App with Mocks
	application := app.New(mockConfig, mockManifest, mockResolver, mockLogger)

	// 3. Define Provider
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}

	// 4. Capture Stderr
	stderr := new(bytes.Buffer)

	// 5. Run with "version" command
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConfig := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	// Stub Logger Error
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	application := app.New(
		mockConfig,
		mocks.NewMockManifestLoader(ctrl),
		mocks.NewMockTargetResolver(ctrl),
		mockLogger,
	)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}

	// Mock Load failing to simulate execution failure
	mockConfig.EXPECT().Load(domain.ConfigFileName).Return(nil, errors.New("load failed"))

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"generate", "app", "--output", "out"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
}

// TestRun_StampConflict verifies that a failure carrying the stamp conflict
// identity maps to exit code 2.
func TestRun_StampConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConfig := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	application := app.New(
		mockConfig,
		mocks.NewMockManifestLoader(ctrl),
		mocks.NewMockTargetResolver(ctrl),
		mockLogger,
	)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}

	mockConfig.EXPECT().
		Load(domain.ConfigFileName).
		Return(nil, zerr.With(domain.ErrHashMismatch, "package", "Foo@1.0.0"))

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"generate", "app", "--output", "out"}, stderr, provider)

	assert.Equal(t, 2, exitCode)
}
