package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.parcel.ch/parcel/internal/core/ports"
)

// NodeID is the unique identifier for the manifest loader Graft node.
const NodeID graft.ID = "adapter.manifest"

func init() {
	graft.Register(graft.Node[ports.ManifestLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ManifestLoader, error) {
			return NewLoader(), nil
		},
	})
}
