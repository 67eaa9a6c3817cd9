package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/aot/internal/adapters/telemetry"
	"go.trai.ch/aot/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func endedSpan(t *testing.T, decorate func(span sdktrace.ReadWriteSpan)) sdktrace.ReadOnlySpan {
	t.Helper()

	tp := sdktrace.NewTracerProvider()
	_, span := tp.Tracer("test").Start(context.Background(), "asset System.Runtime.dll")

	rwSpan, ok := span.(sdktrace.ReadWriteSpan)
	require.True(t, ok)
	if decorate != nil {
		decorate(rwSpan)
	}
	span.End()

	roSpan, ok := span.(sdktrace.ReadOnlySpan)
	require.True(t, ok)

	return roSpan
}

func TestBridge_OnEndLogsDuration(t *testing.T) {
	lg := mocks.NewMockLogger(gomock.NewController(t))

	var logged string
	lg.EXPECT().Info(gomock.Any()).Do(func(msg string) { logged = msg }).Times(1)

	bridge := telemetry.NewBridge(lg)
	bridge.OnEnd(endedSpan(t, nil))

	assert.Contains(t, logged, "asset System.Runtime.dll")
	assert.Contains(t, logged, "finished in")
}

func TestBridge_OnEndSkipsFailedSpans(t *testing.T) {
	lg := mocks.NewMockLogger(gomock.NewController(t))

	bridge := telemetry.NewBridge(lg)
	bridge.OnEnd(endedSpan(t, func(span sdktrace.ReadWriteSpan) {
		span.SetStatus(codes.Error, "generation failed")
	}))
}

func TestBridge_OnEndWithNilLogger(t *testing.T) {
	bridge := telemetry.NewBridge(nil)
	bridge.OnEnd(endedSpan(t, nil))
}

func TestBridge_OnStartIsQuiet(t *testing.T) {
	lg := mocks.NewMockLogger(gomock.NewController(t))
	bridge := telemetry.NewBridge(lg)

	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "test-span")
	defer span.End()

	rwSpan, ok := span.(sdktrace.ReadWriteSpan)
	require.True(t, ok)
	bridge.OnStart(ctx, rwSpan)
}

func TestBridge_ForceFlush(t *testing.T) {
	bridge := telemetry.NewBridge(mocks.NewMockLogger(gomock.NewController(t)))
	require.NoError(t, bridge.ForceFlush(context.Background()))
}

func TestBridge_Shutdown(t *testing.T) {
	bridge := telemetry.NewBridge(mocks.NewMockLogger(gomock.NewController(t)))
	require.NoError(t, bridge.Shutdown(context.Background()))
}
