// Package manifest provides the package manifest loader.
package manifest

import (
	"os"
	"path/filepath"
	"strings"

	"go.parcel.ch/parcel/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ManifestLoader using a YAML manifest file.
type Loader struct{}

// NewLoader creates a new manifest Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the manifest at the given path. The path may point at a package
// directory containing parcel.pkg.yaml or directly at the manifest file. The
// returned manifest's Path is always the package directory.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	manifestPath, packageDir, err := locate(path)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- manifestPath is derived from a path the caller controls
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", manifestPath)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", manifestPath)
	}

	if strings.TrimSpace(file.Name) == "" {
		err := zerr.Wrap(domain.ErrManifestParseFailed, "manifest is missing a package name")
		return nil, zerr.With(err, "path", manifestPath)
	}

	version, err := domain.NormalizeVersion(file.Version)
	if err != nil {
		return nil, zerr.With(zerr.With(err, "package", file.Name), "path", manifestPath)
	}

	return &domain.Manifest{
		Name:         file.Name,
		Version:      version,
		Dependencies: file.Dependencies,
		Path:         packageDir,
	}, nil
}

// locate resolves path to the manifest file and its package directory.
func locate(path string) (manifestPath, packageDir string, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", "", zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	if info.IsDir() {
		return filepath.Join(path, domain.ManifestFileName), path, nil
	}
	return path, filepath.Dir(path), nil
}
