package config

// File represents the structure of the parcel.yaml configuration file.
type File struct {
	Version     string      `yaml:"version"`
	Destination string      `yaml:"destination"`
	Staging     string      `yaml:"staging"`
	Remotes     []RemoteDTO `yaml:"remotes"`
}

// RemoteDTO represents one configured remote. Order in the file is priority
// order.
type RemoteDTO struct {
	URL string `yaml:"url"`
}
