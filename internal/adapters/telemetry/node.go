package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.parcel.ch/parcel/internal/core/ports"
)

// NodeID is the unique identifier for the tracer Graft node.
const NodeID graft.ID = "adapter.tracer"

// traceEnvVar enables the OpenTelemetry tracer when set to a non-empty value.
const traceEnvVar = "PARCEL_TRACE"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			if os.Getenv(traceEnvVar) == "" {
				return NewNoopTracer(), nil
			}
			return NewOTelTracer("parcel"), nil
		},
	})
}
