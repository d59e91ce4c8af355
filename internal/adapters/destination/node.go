package destination

import (
	"context"

	"github.com/grindlemire/graft"
	"go.parcel.ch/parcel/internal/adapters/config"
	"go.parcel.ch/parcel/internal/adapters/logger"
	"go.parcel.ch/parcel/internal/core/domain"
	"go.parcel.ch/parcel/internal/core/ports"
)

// NodeID is the unique identifier for the destination store Graft node.
const NodeID graft.ID = "adapter.destination"

func init() {
	graft.Register(graft.Node[ports.Destination]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Destination, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cfg, log), nil
		},
	})
}
