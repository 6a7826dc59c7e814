package telemetry

import (
	"context"
	"time"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/clank/internal/adapters/logger"
	"go.trai.ch/clank/internal/core/ports"
)

// elapsedPrecision is the rounding applied to stage durations in the log.
const elapsedPrecision = time.Millisecond

// NodeID is the unique identifier for the tracer Graft node.
const NodeID graft.ID = "adapter.tracer"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			provider := sdktrace.NewTracerProvider(
				sdktrace.WithSpanProcessor(NewBridge(log)),
			)
			otel.SetTracerProvider(provider)

			return NewOTelTracer(InstrumentationName), nil
		},
	})
}
