package destination

import "time"

// Receipt records a completed install. One receipt file is written per
// installed package version.
type Receipt struct {
	Name        string    `json:"name"`
	Version     string    `json:"version"`
	Digest      string    `json:"digest"`
	Path        string    `json:"path"`
	InstalledAt time.Time `json:"installedAt"`
}
