package ports

import "context"

// SpanConfig holds configuration applied by SpanOptions.
type SpanConfig struct {
	// Attributes set at span start.
	Attributes map[string]any
}

// SpanOption configures a span at creation time.
type SpanOption func(*SpanConfig)

// WithAttribute sets an attribute when the span starts.
func WithAttribute(key string, value any) SpanOption {
	return func(cfg *SpanConfig) {
		if cfg.Attributes == nil {
			cfg.Attributes = make(map[string]any)
		}
		cfg.Attributes[key] = value
	}
}

// Span is a single traced operation.
//
//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Span interface {
	// End completes the span.
	End()

	// RecordError records an error on the span.
	RecordError(err error)

	// SetAttribute sets an attribute on the span.
	SetAttribute(key string, value any)
}

// Tracer creates spans for traced operations.
type Tracer interface {
	// Start creates a new span as a child of the span in ctx, if any.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)

	// Shutdown flushes and stops the tracer.
	Shutdown(ctx context.Context) error
}
