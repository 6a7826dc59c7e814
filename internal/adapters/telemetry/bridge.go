package telemetry

import (
	"context"
	"fmt"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/clank/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// Bridge implements sdktrace.SpanProcessor to surface pipeline spans in the
// debug log: one line per stage with its duration. Completion runs are
// short-lived, so there is no batching.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if b.logger == nil {
		return
	}
	b.logger.Debug(s.Name() + " started")
}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil {
		return
	}
	elapsed := s.EndTime().Sub(s.StartTime())
	b.logger.Debug(fmt.Sprintf("%s finished in %s", s.Name(), elapsed.Round(elapsedPrecision)))
}

// ForceFlush does nothing; the bridge writes synchronously.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
