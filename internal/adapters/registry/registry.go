// Package registry implements the RemoteRegistry port. It recognizes HTTP
// remotes and local package directories and memoizes opened remotes by URL.
package registry

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"go.parcel.ch/parcel/internal/adapters/dirremote"
	"go.parcel.ch/parcel/internal/adapters/httpremote"
	"go.parcel.ch/parcel/internal/core/domain"
	"go.parcel.ch/parcel/internal/core/ports"
)

var _ ports.RemoteRegistry = (*Registry)(nil)

// Registry opens remotes from URLs. The same normalized URL always yields
// the same remote instance.
type Registry struct {
	cfg    *domain.Config
	loader ports.ManifestLoader
	logger ports.Logger

	mu     sync.Mutex
	opened map[string]ports.Remote
}

// NewRegistry creates a Registry backed by the given configuration.
func NewRegistry(cfg *domain.Config, loader ports.ManifestLoader, logger ports.Logger) *Registry {
	return &Registry{
		cfg:    cfg,
		loader: loader,
		logger: logger,
		opened: make(map[string]ports.Remote),
	}
}

// Normalize canonicalizes a remote URL by trimming whitespace and trailing
// slashes.
func (r *Registry) Normalize(raw string) string {
	normalized := strings.TrimSpace(raw)
	for len(normalized) > 1 && strings.HasSuffix(normalized, "/") {
		normalized = strings.TrimSuffix(normalized, "/")
	}
	return normalized
}

// Open returns a remote for the URL. HTTP URLs open as HTTP remotes and
// existing directories open as directory remotes. Unrecognized URLs return
// nil without an error.
func (r *Registry) Open(ctx context.Context, url string) (ports.Remote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	normalized := r.Normalize(url)
	if normalized == "" {
		return nil, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if remote, ok := r.opened[normalized]; ok {
		return remote, nil
	}

	remote := r.open(normalized)
	if remote == nil {
		return nil, nil
	}

	r.opened[normalized] = remote
	return remote, nil
}

// OpenDefault opens the URL as an HTTP remote without probing. Unlike Open it
// fails when the URL cannot be treated as a remote.
func (r *Registry) OpenDefault(ctx context.Context, url string) (ports.Remote, error) {
	remote, err := r.Open(ctx, url)
	if err != nil {
		return nil, err
	}
	if remote != nil {
		return remote, nil
	}

	normalized := r.Normalize(url)
	if normalized == "" || strings.Contains(normalized, "://") {
		return nil, domain.ErrRemoteNotRecognized
	}

	// Bare host names default to HTTPS
	return r.Open(ctx, "https://"+normalized)
}

// ListConfigured opens the configured remotes in priority order. Remotes that
// fail to open are skipped with a warning so one bad entry does not block the
// rest.
func (r *Registry) ListConfigured(ctx context.Context) ([]ports.Remote, error) {
	remotes := make([]ports.Remote, 0, len(r.cfg.Remotes))
	for _, url := range r.cfg.Remotes {
		remote, err := r.Open(ctx, url)
		if err != nil {
			return nil, err
		}
		if remote == nil {
			r.logger.Warn(fmt.Sprintf("skipping unrecognized remote %q", url))
			continue
		}
		remotes = append(remotes, remote)
	}
	return remotes, nil
}

// open decides the remote type for an already-normalized URL. The caller
// holds the mutex.
func (r *Registry) open(normalized string) ports.Remote {
	if strings.HasPrefix(normalized, "http://") || strings.HasPrefix(normalized, "https://") {
		return httpremote.New(normalized, r.cfg.Staging)
	}

	if info, err := os.Stat(normalized); err == nil && info.IsDir() {
		return dirremote.New(normalized, r.cfg.Staging, r.loader)
	}

	return nil
}
