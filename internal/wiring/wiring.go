// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.parcel.ch/parcel/internal/adapters/config"
	_ "go.parcel.ch/parcel/internal/adapters/destination"
	_ "go.parcel.ch/parcel/internal/adapters/logger"
	_ "go.parcel.ch/parcel/internal/adapters/manifest"
	_ "go.parcel.ch/parcel/internal/adapters/registry"
	_ "go.parcel.ch/parcel/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.parcel.ch/parcel/internal/app"
)
