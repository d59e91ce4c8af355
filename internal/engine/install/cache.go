package install

import (
	"sync"

	"go.parcel.ch/parcel/internal/core/domain"
)

// Cache is the per-session descriptor cache: one ordered collection of
// descriptors per package identifier, at most one descriptor per distinct
// version. It is owned exclusively by one Session.
type Cache struct {
	mu      sync.Mutex
	entries map[string][]*Descriptor
}

// NewCache creates an empty descriptor cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string][]*Descriptor)}
}

// Select returns the cached descriptor for name that best satisfies
// constraint, or nil if none qualifies.
//
// With an empty constraint the highest cached version wins. With exact set,
// only a descriptor whose version string equals constraint verbatim is
// returned. Otherwise the highest version compatible with constraint wins
// (same major, equal or greater).
func (c *Cache) Select(name, constraint string, exact bool) *Descriptor {
	c.mu.Lock()
	defer c.mu.Unlock()

	var best *Descriptor
	for _, d := range c.entries[name] {
		if exact {
			if d.Version == constraint {
				return d
			}
			continue
		}
		if constraint != "" && !domain.VersionCompatible(d.Version, constraint) {
			continue
		}
		if best == nil || domain.VersionLess(best.Version, d.Version) {
			best = d
		}
	}
	return best
}

// Insert adds d to the cache and reports whether the cache changed.
//
// If no descriptor with the same name and version exists, d is appended.
// If one exists, overlay decides: true replaces it, false leaves the cache
// untouched. The resolver inserts local descriptors with overlay so they stay
// authoritative, and remote candidates without it so the first remote offering
// a version wins over later remotes.
func (c *Cache) Insert(d *Descriptor, overlay bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	list := c.entries[d.Name]
	for i, existing := range list {
		if existing.Version != d.Version {
			continue
		}
		if overlay {
			list[i] = d
			return true
		}
		return false
	}

	c.entries[d.Name] = append(list, d)
	return true
}

// Versions returns the cached version strings for name in insertion order.
func (c *Cache) Versions(name string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	list := c.entries[name]
	versions := make([]string, len(list))
	for i, d := range list {
		versions[i] = d.Version
	}
	return versions
}
