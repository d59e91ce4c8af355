package ports

import "go.parcel.ch/parcel/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration starting from the given working directory.
	// A missing config file yields the default configuration, not an error.
	Load(cwd string) (*domain.Config, error)
}
