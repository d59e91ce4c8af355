package httpremote

// packageIndex is the JSON document a remote serves per package name under
// /packages/<name>.json.
type packageIndex struct {
	Name     string         `json:"name"`
	Versions []versionEntry `json:"versions"`
}

// versionEntry describes one published version of a package.
type versionEntry struct {
	Version      string            `json:"version"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
	Archive      string            `json:"archive"`
}
