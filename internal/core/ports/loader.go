package ports

import "go.parcel.ch/parcel/internal/core/domain"

// ManifestLoader turns a package directory into a structured manifest.
//
//go:generate mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest of the package rooted at path.
	Load(path string) (*domain.Manifest, error)
}
