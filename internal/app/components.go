package app

import (
	"go.parcel.ch/parcel/internal/core/domain"
	"go.parcel.ch/parcel/internal/core/ports"
)

// Components bundles the wired application parts handed to the CLI layer.
type Components struct {
	App    *App
	Config *domain.Config
	Logger ports.Logger
	Tracer ports.Tracer
}
