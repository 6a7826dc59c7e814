package ports

import "context"

// SpanConfig holds options applied when starting a span.
type SpanConfig struct{}

// SpanOption mutates a SpanConfig.
type SpanOption func(*SpanConfig)

// Span is a single traced operation, typically one pipeline stage.
type Span interface {
	// End completes the span.
	End()

	// RecordError records err on the span and marks it failed.
	RecordError(err error)

	// SetAttribute attaches a key/value attribute to the span.
	SetAttribute(key string, value any)
}

// Tracer creates spans around pipeline stages.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Start begins a span with the given name.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
}
