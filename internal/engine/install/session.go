package install

import (
	"context"
	"strings"
	"sync"

	"go.parcel.ch/parcel/internal/core/domain"
	"go.parcel.ch/parcel/internal/core/ports"
	"go.parcel.ch/parcel/internal/engine/flow"
	"go.trai.ch/zerr"
)

// Session is the orchestration context for one install invocation. It owns
// the descriptor cache and the memoized job state, and is discarded when the
// invocation completes. Sessions must not be shared across invocations.
type Session struct {
	cache    *Cache
	jobs     *flow.JobGroup
	preparer *Preparer
	resolver *Resolver
	dest     ports.Destination
	loader   ports.ManifestLoader
	logger   ports.Logger
	tracer   ports.Tracer

	mu          sync.Mutex
	installDeps *bool
}

// Config carries the collaborators and settings for a Session.
type Config struct {
	// Destination receives loaded packages.
	Destination ports.Destination

	// Loader turns staged package directories into manifests.
	Loader ports.ManifestLoader

	// Remotes is the ordered list of remotes to search, highest priority first.
	Remotes []ports.Remote

	// Logger receives warnings and progress messages.
	Logger ports.Logger

	// Tracer wraps resolve/fetch/install operations in spans.
	Tracer ports.Tracer

	// InstallDependencies forces the dependency preference. Nil leaves it
	// unset: the first resolved descriptor's origin decides (remote installs
	// pull their tree, local installs do not), and the decision then applies
	// for the rest of the session.
	InstallDependencies *bool
}

// NewSession creates the orchestration context for one invocation.
func NewSession(cfg Config) *Session {
	cache := NewCache()
	jobs := flow.NewJobGroup()
	preparer := NewPreparer(jobs, cfg.Tracer)

	s := &Session{
		cache:    cache,
		jobs:     jobs,
		preparer: preparer,
		resolver: NewResolver(cache, cfg.Remotes, preparer, cfg.Logger, cfg.Tracer),
		dest:     cfg.Destination,
		loader:   cfg.Loader,
		logger:   cfg.Logger,
		tracer:   cfg.Tracer,
	}
	if cfg.InstallDependencies != nil {
		v := *cfg.InstallDependencies
		s.installDeps = &v
	}
	return s
}

// Install resolves, stages, and installs one package, recursively installing
// its dependency graph. The argument is either a package identifier or a
// filesystem path (recognized by a leading "." or a path separator).
//
// Installation is memoized per (name, version): concurrent install demands
// for the same descriptor, whether top-level requests or shared transitive
// dependencies, collapse to a single execution whose outcome every caller
// receives.
func (s *Session) Install(ctx context.Context, arg, constraint string, exact bool) error {
	d, err := s.describe(ctx, arg, constraint, exact)
	if err != nil {
		return err
	}

	return s.jobs.Do(ctx, d.Key()+"#install", func(ctx context.Context) error {
		return s.installDescriptor(ctx, d)
	})
}

// isPath reports whether the install argument names a filesystem path rather
// than a package identifier.
func isPath(arg string) bool {
	return strings.HasPrefix(arg, ".") || strings.ContainsAny(arg, `/\`)
}

func (s *Session) describe(ctx context.Context, arg, constraint string, exact bool) (*Descriptor, error) {
	if isPath(arg) {
		return s.describeLocal(arg)
	}
	return s.resolver.Resolve(ctx, arg, constraint, exact)
}

// describeLocal loads a descriptor straight from a package directory,
// bypassing remote resolution. Local descriptors are authoritative: they
// overlay any cached remote descriptor for the same version.
func (s *Session) describeLocal(path string) (*Descriptor, error) {
	m, err := s.loader.Load(path)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, zerr.With(domain.ErrInvalidPackage, "path", path)
	}

	d := &Descriptor{
		Name:         m.Name,
		Version:      m.Version,
		Dependencies: m.Dependencies,
		Origin:       OriginLocal,
	}
	d.SetLocalPath(m.Path)
	s.cache.Insert(d, true)
	return d, nil
}

func (s *Session) installDescriptor(ctx context.Context, d *Descriptor) error {
	ctx, span := s.tracer.Start(ctx, "install "+d.Key())
	defer span.End()

	err := flow.Chain(ctx,
		func(ctx context.Context) error { return s.preparer.Prepare(ctx, d) },
		func(ctx context.Context) error { return s.installDependencies(ctx, d) },
		func(ctx context.Context) error { return s.delegate(ctx, d) },
	)
	if err != nil {
		span.RecordError(err)
	}
	return err
}

// delegate loads the staged package and hands it to the destination. For
// remote-origin descriptors the staged artifact is cleaned up afterwards; a
// cleanup failure becomes the job's outcome even though the package is
// already installed.
func (s *Session) delegate(ctx context.Context, d *Descriptor) error {
	pkg, err := s.loader.Load(d.LocalPath())
	if err != nil {
		loadErr := zerr.Wrap(err, domain.ErrInvalidPackage.Error())
		return zerr.With(loadErr, "package", d.Key())
	}
	if pkg == nil {
		invalidErr := zerr.With(domain.ErrInvalidPackage, "package", d.Key())
		return zerr.With(invalidErr, "path", d.LocalPath())
	}

	if err := s.dest.Install(ctx, pkg); err != nil {
		installErr := zerr.Wrap(err, domain.ErrInstallFailed.Error())
		return zerr.With(installErr, "package", d.Key())
	}

	if d.Origin == OriginRemote {
		if err := d.Remote.Cleanup(ctx, d.LocalPath()); err != nil {
			cleanupErr := zerr.Wrap(err, domain.ErrCleanupFailed.Error())
			return zerr.With(cleanupErr, "package", d.Key())
		}
	}

	return nil
}

type dependency struct {
	name       string
	constraint string
}

// installDependencies installs every dependency of d in parallel. Dependency
// constraints always use compatibility matching, never exact matching.
func (s *Session) installDependencies(ctx context.Context, d *Descriptor) error {
	if !s.dependencyPreference(d.Origin) {
		return nil
	}

	deps := make([]dependency, 0, len(d.Dependencies))
	for name, constraint := range d.Dependencies {
		deps = append(deps, dependency{name: name, constraint: constraint})
	}

	return flow.Parallel(ctx, deps, func(ctx context.Context, dep dependency) error {
		return s.Install(ctx, dep.name, dep.constraint, false)
	})
}

// dependencyPreference resolves the tri-state dependency setting, defaulting
// it from the first triggering descriptor's origin.
func (s *Session) dependencyPreference(origin Origin) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.installDeps == nil {
		v := origin == OriginRemote
		s.installDeps = &v
	}
	return *s.installDeps
}
