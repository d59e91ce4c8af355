package domain

import "path/filepath"

// Config is the resolved project configuration.
type Config struct {
	// Destination is the install root packages are materialized into.
	Destination string

	// Staging is the directory remote artifacts are fetched into.
	Staging string

	// Remotes are the configured remote URLs in priority order.
	Remotes []string
}

// ReceiptsPath returns the receipt directory belonging to this
// configuration's destination.
func (c *Config) ReceiptsPath() string {
	return filepath.Join(filepath.Dir(c.Destination), ReceiptsDirName)
}

// DefaultConfig returns the configuration used when no parcel.yaml is found.
func DefaultConfig() *Config {
	return &Config{
		Destination: DefaultDestinationPath(),
		Staging:     DefaultStagingPath(),
	}
}
