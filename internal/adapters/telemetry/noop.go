package telemetry

import (
	"context"

	"go.trai.ch/clank/internal/core/ports"
)

var _ ports.Tracer = NoopTracer{}

// NoopTracer is a Tracer that records nothing. Used in tests and when
// tracing is disabled.
type NoopTracer struct{}

// NewNoop creates a no-op tracer.
func NewNoop() NoopTracer { return NoopTracer{} }

// Start returns the context unchanged and a span that does nothing.
func (NoopTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End()                     {}
func (noopSpan) RecordError(error)        {}
func (noopSpan) SetAttribute(string, any) {}
