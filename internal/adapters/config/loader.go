// Package config provides the configuration loader for parcel.
package config

import (
	"os"
	"path/filepath"

	"go.parcel.ch/parcel/internal/core/domain"
	"go.parcel.ch/parcel/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load walks up from cwd looking for parcel.yaml and returns the parsed
// configuration. When no config file exists, the defaults apply: no remotes
// and the standard destination and staging paths.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, ok := findConfiguration(cwd)
	if !ok {
		return domain.DefaultConfig(), nil
	}

	// #nosec G304 -- configPath is discovered relative to the caller's cwd
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	return resolve(configPath, &file), nil
}

// findConfiguration walks parent directories until it finds parcel.yaml or
// reaches the filesystem root.
func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

// resolve turns the parsed DTO into a domain config, making relative paths
// relative to the config file's directory.
func resolve(configPath string, file *File) *domain.Config {
	configDir := filepath.Dir(configPath)

	cfg := domain.DefaultConfig()
	if file.Destination != "" {
		cfg.Destination = resolvePath(configDir, file.Destination)
	}
	if file.Staging != "" {
		cfg.Staging = resolvePath(configDir, file.Staging)
	}

	for _, remote := range file.Remotes {
		if remote.URL == "" {
			continue
		}
		cfg.Remotes = append(cfg.Remotes, remote.URL)
	}

	return cfg
}

func resolvePath(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(base, path))
}
