// Package ports defines the core interfaces for the application.
package ports

import "context"

// ListQuery describes a package listing request sent to a remote.
type ListQuery struct {
	// Name is the package identifier to search for.
	Name string

	// Constraint is an optional version constraint. Empty means any version.
	Constraint string

	// Exact requires the version string to match Constraint verbatim.
	Exact bool

	// IncludeDependencies asks the remote to populate dependency information
	// in the returned candidates.
	IncludeDependencies bool
}

// PackageInfo is one candidate returned by a remote listing.
type PackageInfo struct {
	// Name is the package identifier.
	Name string

	// Version is the candidate's semantic version string.
	Version string

	// Dependencies maps dependency identifiers to version-constraint strings.
	// May be nil if the query did not ask for dependency information.
	Dependencies map[string]string

	// Ref is remote-specific metadata needed to fetch the artifact
	// (a download URL for HTTP remotes, a directory path for dir remotes).
	Ref string
}

// Remote is an external source capable of listing, fetching, and cleaning up
// package artifacts.
//
//go:generate mockgen -source=remote.go -destination=mocks/mock_remote.go -package=mocks
type Remote interface {
	// URL returns the normalized location this remote was opened from.
	URL() string

	// List returns the candidates matching the query, in no particular order.
	List(ctx context.Context, query ListQuery) ([]PackageInfo, error)

	// Fetch stages the artifact described by info and returns the local
	// directory it was staged to.
	Fetch(ctx context.Context, info PackageInfo) (string, error)

	// Cleanup removes a previously staged artifact.
	Cleanup(ctx context.Context, path string) error
}

// RemoteRegistry opens remotes from URLs and lists the configured ones.
type RemoteRegistry interface {
	// Normalize canonicalizes a remote URL.
	Normalize(raw string) string

	// Open returns a remote for the URL, or nil if no remote type recognizes it.
	Open(ctx context.Context, url string) (Remote, error)

	// OpenDefault opens the URL as the default remote type without probing.
	OpenDefault(ctx context.Context, url string) (Remote, error)

	// ListConfigured returns the configured remotes in priority order.
	ListConfigured(ctx context.Context) ([]Remote, error)
}
