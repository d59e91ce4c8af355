// Package install implements the package resolution and install engine.
package install

import (
	"sync"

	"go.parcel.ch/parcel/internal/core/ports"
)

// Origin indicates where a descriptor came from.
type Origin string

const (
	// OriginLocal marks a descriptor loaded from a local filesystem package.
	OriginLocal Origin = "local"

	// OriginRemote marks a descriptor produced by a remote listing.
	OriginRemote Origin = "remote"
)

// Descriptor identifies one resolvable version of a package together with the
// metadata needed to stage and install it. Descriptors are immutable except
// for the staged local path, which is assigned once by the Preparer.
type Descriptor struct {
	// Name is the package identifier.
	Name string

	// Version is the normalized semantic version string.
	Version string

	// Dependencies maps dependency identifiers to version-constraint strings.
	Dependencies map[string]string

	// Origin records whether the descriptor is local or remote.
	Origin Origin

	// Remote is the remote that produced this descriptor. Set iff Origin is
	// OriginRemote.
	Remote ports.Remote

	// RemoteInfo is the listing entry needed to fetch the artifact. Set iff
	// Origin is OriginRemote.
	RemoteInfo ports.PackageInfo

	mu        sync.Mutex
	localPath string
}

// Key returns the cache and job key for this descriptor, unique per
// (name, version) pair.
func (d *Descriptor) Key() string {
	return d.Name + "@" + d.Version
}

// LocalPath returns the staged filesystem path, or "" if the descriptor has
// not been prepared yet.
func (d *Descriptor) LocalPath() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.localPath
}

// SetLocalPath records the staged filesystem path.
func (d *Descriptor) SetLocalPath(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.localPath = path
}
