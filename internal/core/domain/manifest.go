// Package domain contains the core data model for parcel.
package domain

// Manifest represents a loaded package: the structured contents of a
// parcel.pkg.yaml plus the directory it was loaded from.
type Manifest struct {
	// Name is the package identifier (e.g., "http-kit").
	Name string

	// Version is the normalized semantic version string (e.g., "1.2.0").
	Version string

	// Dependencies maps dependency identifiers to version-constraint strings.
	Dependencies map[string]string

	// Path is the directory containing the package content.
	Path string
}
