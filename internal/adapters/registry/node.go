package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.parcel.ch/parcel/internal/adapters/config"
	"go.parcel.ch/parcel/internal/adapters/logger"
	"go.parcel.ch/parcel/internal/adapters/manifest"
	"go.parcel.ch/parcel/internal/core/domain"
	"go.parcel.ch/parcel/internal/core/ports"
)

// NodeID is the unique identifier for the remote registry Graft node.
const NodeID graft.ID = "adapter.registry"

func init() {
	graft.Register(graft.Node[ports.RemoteRegistry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, manifest.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.RemoteRegistry, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[ports.ManifestLoader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRegistry(cfg, loader, log), nil
		},
	})
}
