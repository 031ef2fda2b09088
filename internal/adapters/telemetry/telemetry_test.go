package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stow/internal/adapters/telemetry"
)

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx, span := tracer.Start(context.Background(), "test")
	require.NotNil(t, ctx)
	require.NotNil(t, span)

	span.SetAttribute("key", "value")
	span.RecordError(assert.AnError)
	n, err := span.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	span.End()
}

func TestOTelTracer_StartEnd(t *testing.T) {
	// Without an sdk provider installed the global tracer is a no-op, so
	// spans are safe to create and end.
	tracer := telemetry.NewOTelTracer("stow-test")

	ctx, span := tracer.Start(context.Background(), "reconcile")
	require.NotNil(t, ctx)
	require.NotNil(t, span)

	span.SetAttribute("packed", 3)
	span.SetAttribute("project_dir", "/proj")
	span.RecordError(assert.AnError)
	span.End()
}

func TestSetup_DisabledByDefault(t *testing.T) {
	shutdown := telemetry.Setup()
	require.NotNil(t, shutdown)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetup_Enabled(t *testing.T) {
	t.Setenv(telemetry.EnableEnvVar, "1")

	shutdown := telemetry.Setup()
	require.NotNil(t, shutdown)
	require.NoError(t, shutdown(context.Background()))
}
