package telemetry

import (
	"context"

	"go.parcel.ch/parcel/internal/core/ports"
)

// NoopTracer is a Tracer that records nothing. It is the default when no
// tracing backend is configured.
type NoopTracer struct{}

// NewNoopTracer creates a tracer that discards all spans.
func NewNoopTracer() *NoopTracer {
	return &NoopTracer{}
}

// Start returns the context unchanged and a span that does nothing.
func (t *NoopTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

// Shutdown does nothing.
func (t *NoopTracer) Shutdown(_ context.Context) error {
	return nil
}

type noopSpan struct{}

func (noopSpan) End()                     {}
func (noopSpan) RecordError(error)        {}
func (noopSpan) SetAttribute(string, any) {}
