package manifest

// File represents the structure of the parcel.pkg.yaml manifest file.
type File struct {
	Name         string            `yaml:"name"`
	Version      string            `yaml:"version"`
	Dependencies map[string]string `yaml:"dependencies"`
}
