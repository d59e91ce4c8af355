package domain

import "go.trai.ch/zerr"

var (
	// ErrNoPackagesSpecified is returned when the install command is invoked without package arguments.
	ErrNoPackagesSpecified = zerr.New("no packages specified")

	// ErrVersionRequiresSinglePackage is returned when --version is combined with more than one package.
	ErrVersionRequiresSinglePackage = zerr.New("--version can only be used with a single package")

	// ErrNoInstallTarget is returned when no configured destination accepts installs.
	ErrNoInstallTarget = zerr.New("no install location available")

	// ErrPackageNotFound is returned when resolution exhausts the cache and all remotes.
	ErrPackageNotFound = zerr.New("package not found")

	// ErrFetchFailed is returned when a remote fetch fails or yields no staged path.
	ErrFetchFailed = zerr.New("failed to fetch package")

	// ErrMissingRemote is returned when a remote-origin descriptor carries no remote reference.
	// This indicates a resolver defect and should never surface during normal operation.
	ErrMissingRemote = zerr.New("remote-origin descriptor has no remote reference")

	// ErrInvalidPackage is returned when a staged artifact cannot be loaded as a package.
	ErrInvalidPackage = zerr.New("invalid package")

	// ErrInstallFailed is returned when the destination rejects a package.
	ErrInstallFailed = zerr.New("failed to install package")

	// ErrCleanupFailed is returned when a remote cannot reclaim a staged artifact.
	// The package is installed at this point; callers must still report the failure.
	ErrCleanupFailed = zerr.New("failed to clean up staged package")

	// ErrInvalidVersion is returned when a version string cannot be parsed as a semantic version.
	ErrInvalidVersion = zerr.New("invalid semantic version")

	// ErrManifestReadFailed is returned when a package manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read package manifest")

	// ErrManifestParseFailed is returned when a package manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse package manifest")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrRemoteListFailed is returned when a remote listing request fails.
	// The resolver treats this as "no results" and logs it as a warning.
	ErrRemoteListFailed = zerr.New("failed to list packages from remote")

	// ErrRemoteNotRecognized is returned when a remote URL cannot be opened by any known remote type.
	ErrRemoteNotRecognized = zerr.New("remote not recognized")

	// ErrStagingCreateFailed is returned when the staging directory cannot be created.
	ErrStagingCreateFailed = zerr.New("failed to create staging directory")

	// ErrReceiptWriteFailed is returned when an install receipt cannot be written.
	ErrReceiptWriteFailed = zerr.New("failed to write install receipt")

	// ErrInstallExecutionFailed is returned when the install command fails overall.
	ErrInstallExecutionFailed = zerr.New("install failed")
)
