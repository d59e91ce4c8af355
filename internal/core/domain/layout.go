package domain

import "path/filepath"

const (
	// ParcelDirName is the name of the internal metadata directory.
	ParcelDirName = ".parcel"

	// StagingDirName is the name of the staging directory for fetched artifacts.
	StagingDirName = "staging"

	// PackagesDirName is the name of the default install destination directory.
	PackagesDirName = "packages"

	// ReceiptsDirName is the name of the install receipt directory.
	ReceiptsDirName = "receipts"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "parcel.yaml"

	// ManifestFileName is the name of the package manifest file.
	ManifestFileName = "parcel.pkg.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultParcelPath returns the default root directory for parcel metadata.
func DefaultParcelPath() string {
	return ParcelDirName
}

// DefaultStagingPath returns the default path for staged artifacts.
func DefaultStagingPath() string {
	return filepath.Join(ParcelDirName, StagingDirName)
}

// DefaultDestinationPath returns the default install destination.
func DefaultDestinationPath() string {
	return filepath.Join(ParcelDirName, PackagesDirName)
}

// DefaultReceiptsPath returns the default path for install receipts.
func DefaultReceiptsPath() string {
	return filepath.Join(ParcelDirName, ReceiptsDirName)
}
