package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.parcel.ch/parcel/internal/adapters/telemetry"
	"go.parcel.ch/parcel/internal/core/ports"
)

func TestOTelTracer(t *testing.T) {
	t.Run("starts and ends spans", func(t *testing.T) {
		tracer := telemetry.NewOTelTracer("test")

		ctx, span := tracer.Start(context.Background(), "operation",
			ports.WithAttribute("count", 3),
			ports.WithAttribute("name", "mytool"),
		)
		require.NotNil(t, ctx)
		require.NotNil(t, span)

		span.SetAttribute("done", true)
		span.RecordError(errors.New("simulated"))
		span.End()

		require.NoError(t, tracer.Shutdown(context.Background()))
	})

	t.Run("recording nil error is a no-op", func(t *testing.T) {
		tracer := telemetry.NewOTelTracer("test")
		_, span := tracer.Start(context.Background(), "operation")
		span.RecordError(nil)
		span.End()

		require.NoError(t, tracer.Shutdown(context.Background()))
	})
}

func TestNoopTracer(t *testing.T) {
	tracer := telemetry.NewNoopTracer()

	ctx := context.Background()
	spanCtx, span := tracer.Start(ctx, "operation", ports.WithAttribute("key", "value"))
	assert.Equal(t, ctx, spanCtx)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()

	assert.NoError(t, tracer.Shutdown(ctx))
}
