package install

import (
	"context"

	"go.parcel.ch/parcel/internal/core/domain"
	"go.parcel.ch/parcel/internal/core/ports"
	"go.parcel.ch/parcel/internal/engine/flow"
	"go.trai.ch/zerr"
)

// Preparer ensures a descriptor has a usable local filesystem path, fetching
// the artifact from its remote if necessary. Staging is memoized per
// descriptor: concurrent and repeated demands share one fetch and its outcome.
type Preparer struct {
	jobs   *flow.JobGroup
	tracer ports.Tracer
}

// NewPreparer creates a Preparer sharing the session's job group.
func NewPreparer(jobs *flow.JobGroup, tracer ports.Tracer) *Preparer {
	return &Preparer{jobs: jobs, tracer: tracer}
}

// Prepare stages the descriptor's artifact. It completes immediately if the
// descriptor already has a local path.
func (p *Preparer) Prepare(ctx context.Context, d *Descriptor) error {
	return p.jobs.Do(ctx, d.Key()+"#prepare", func(ctx context.Context) error {
		return p.stage(ctx, d)
	})
}

func (p *Preparer) stage(ctx context.Context, d *Descriptor) error {
	if d.LocalPath() != "" {
		return nil
	}

	if d.Remote == nil {
		return zerr.With(domain.ErrMissingRemote, "package", d.Key())
	}

	ctx, span := p.tracer.Start(ctx, "fetch "+d.Key())
	defer span.End()

	path, err := d.Remote.Fetch(ctx, d.RemoteInfo)
	if err != nil {
		fetchErr := zerr.Wrap(err, domain.ErrFetchFailed.Error())
		fetchErr = zerr.With(fetchErr, "package", d.Name)
		fetchErr = zerr.With(fetchErr, "version", d.Version)
		span.RecordError(fetchErr)
		return fetchErr
	}
	if path == "" {
		fetchErr := zerr.With(domain.ErrFetchFailed, "package", d.Name)
		fetchErr = zerr.With(fetchErr, "version", d.Version)
		fetchErr = zerr.With(fetchErr, "reason", "remote returned no staged path")
		span.RecordError(fetchErr)
		return fetchErr
	}

	d.SetLocalPath(path)
	return nil
}
