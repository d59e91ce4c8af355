package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.parcel.ch/parcel/internal/adapters/config"      //nolint:depguard // Wired in app layer
	"go.parcel.ch/parcel/internal/adapters/destination" //nolint:depguard // Wired in app layer
	"go.parcel.ch/parcel/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"go.parcel.ch/parcel/internal/adapters/manifest"    //nolint:depguard // Wired in app layer
	"go.parcel.ch/parcel/internal/adapters/registry"    //nolint:depguard // Wired in app layer
	"go.parcel.ch/parcel/internal/adapters/telemetry"   //nolint:depguard // Wired in app layer
	"go.parcel.ch/parcel/internal/core/domain"
	"go.parcel.ch/parcel/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			destination.NodeID,
			manifest.NodeID,
			registry.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			config.SettingsNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	dest, err := graft.Dep[ports.Destination](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ManifestLoader](ctx)
	if err != nil {
		return nil, err
	}

	remotes, err := graft.Dep[ports.RemoteRegistry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(cfg, dest, loader, remotes, log, tracer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Config: cfg,
		Logger: log,
		Tracer: tracer,
	}, nil
}
