package ports

import (
	"context"

	"go.parcel.ch/parcel/internal/core/domain"
)

// Destination is the install target that materializes a loaded package into
// its final location.
//
//go:generate mockgen -source=destination.go -destination=mocks/mock_destination.go -package=mocks
type Destination interface {
	// Accepts reports whether this destination can receive installs.
	Accepts() bool

	// Install materializes the loaded package into the destination.
	Install(ctx context.Context, pkg *domain.Manifest) error
}
