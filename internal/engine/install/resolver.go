package install

import (
	"context"
	"fmt"

	"go.parcel.ch/parcel/internal/core/domain"
	"go.parcel.ch/parcel/internal/core/ports"
	"go.parcel.ch/parcel/internal/engine/flow"
	"go.trai.ch/zerr"
)

// Resolver turns a package identifier and version constraint into a cached
// descriptor, querying remotes in priority order when the cache has no match.
type Resolver struct {
	cache    *Cache
	remotes  []ports.Remote
	preparer *Preparer
	logger   ports.Logger
	tracer   ports.Tracer
}

// NewResolver creates a Resolver over the session's cache and remote list.
func NewResolver(
	cache *Cache,
	remotes []ports.Remote,
	preparer *Preparer,
	logger ports.Logger,
	tracer ports.Tracer,
) *Resolver {
	return &Resolver{
		cache:    cache,
		remotes:  remotes,
		preparer: preparer,
		logger:   logger,
		tracer:   tracer,
	}
}

// Resolve returns a descriptor satisfying the constraint. The cache is
// consulted first; on a miss the configured remotes are scanned strictly in
// priority order, and the scan stops at the first remote that satisfies the
// request. A remote whose listing fails is logged as a warning and treated as
// offering no results.
func (r *Resolver) Resolve(ctx context.Context, name, constraint string, exact bool) (*Descriptor, error) {
	if d := r.cache.Select(name, constraint, exact); d != nil {
		return d, nil
	}

	ctx, span := r.tracer.Start(ctx, "resolve "+name)
	defer span.End()

	for _, remote := range r.remotes {
		infos, err := remote.List(ctx, ports.ListQuery{
			Name:                name,
			Constraint:          constraint,
			Exact:               exact,
			IncludeDependencies: true,
		})
		if err != nil {
			r.logger.Warn(fmt.Sprintf("remote %s: listing %s failed: %v", remote.URL(), name, err))
			continue
		}

		for _, info := range infos {
			d := &Descriptor{
				Name:         info.Name,
				Version:      info.Version,
				Dependencies: info.Dependencies,
				Origin:       OriginRemote,
				Remote:       remote,
				RemoteInfo:   info,
			}
			if !r.cache.Insert(d, false) {
				continue
			}
			r.prefetch(ctx, d)
		}

		if d := r.cache.Select(name, constraint, exact); d != nil {
			span.SetAttribute("parcel.remote", remote.URL())
			return d, nil
		}
	}

	notFound := zerr.With(domain.ErrPackageNotFound, "package", name)
	if constraint != "" {
		notFound = zerr.With(notFound, "constraint", constraint)
	}
	span.RecordError(notFound)
	return nil, notFound
}

// prefetch begins staging a freshly listed candidate in the background. Its
// outcome is discarded; if the candidate is actually installed later, the
// memoized prepare job delivers the same result to the real caller.
func (r *Resolver) prefetch(ctx context.Context, d *Descriptor) {
	ctx = context.WithoutCancel(ctx)
	go func() {
		_ = flow.Safe(func(ctx context.Context) error {
			return r.preparer.Prepare(ctx, d)
		})(ctx)
	}()
}
