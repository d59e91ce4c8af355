// Package app implements the application layer for parcel.
package app

import (
	"context"
	"fmt"
	"os"

	"go.parcel.ch/parcel/internal/core/domain"
	"go.parcel.ch/parcel/internal/core/ports"
	"go.parcel.ch/parcel/internal/engine/flow"
	"go.parcel.ch/parcel/internal/engine/install"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	cfg     *domain.Config
	dest    ports.Destination
	loader  ports.ManifestLoader
	remotes ports.RemoteRegistry
	logger  ports.Logger
	tracer  ports.Tracer
}

// New creates a new App instance.
func New(
	cfg *domain.Config,
	dest ports.Destination,
	loader ports.ManifestLoader,
	remotes ports.RemoteRegistry,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		cfg:     cfg,
		dest:    dest,
		loader:  loader,
		remotes: remotes,
		logger:  log,
		tracer:  tracer,
	}
}

// InstallOptions configuration for the Install method.
type InstallOptions struct {
	// Version pins the requested version exactly. Only valid with a single
	// package argument.
	Version string

	// Remote is an extra remote to search before the configured ones.
	Remote string

	// Dependencies forces dependency installation on or off. Nil leaves the
	// decision to the package origin.
	Dependencies *bool
}

// Install validates the invocation and installs every requested package in
// parallel. All packages share one session, so overlapping dependency trees
// are resolved and installed once.
func (a *App) Install(ctx context.Context, packages []string, opts InstallOptions) error {
	if len(packages) == 0 {
		return domain.ErrNoPackagesSpecified
	}
	if opts.Version != "" && len(packages) > 1 {
		return zerr.With(domain.ErrVersionRequiresSinglePackage, "packages", len(packages))
	}

	version := opts.Version
	if version != "" {
		normalized, err := domain.NormalizeVersion(version)
		if err != nil {
			return err
		}
		version = normalized
	}

	if !a.dest.Accepts() {
		return zerr.With(domain.ErrNoInstallTarget, "destination", a.cfg.Destination)
	}

	remotes, err := a.selectRemotes(ctx, opts.Remote)
	if err != nil {
		return err
	}

	session := install.NewSession(install.Config{
		Destination:         a.dest,
		Loader:              a.loader,
		Remotes:             remotes,
		Logger:              a.logger,
		Tracer:              a.tracer,
		InstallDependencies: opts.Dependencies,
	})

	ctx, span := a.tracer.Start(ctx, "install",
		ports.WithAttribute("parcel.packages", len(packages)))
	defer span.End()

	exact := version != ""
	err = flow.Parallel(ctx, packages, func(ctx context.Context, pkg string) error {
		return session.Install(ctx, pkg, version, exact)
	})
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

// selectRemotes builds the ordered remote search list. An explicitly
// requested remote goes first, followed by the configured remotes with
// duplicates removed.
func (a *App) selectRemotes(ctx context.Context, preferred string) ([]ports.Remote, error) {
	configured, err := a.remotes.ListConfigured(ctx)
	if err != nil {
		return nil, err
	}

	if preferred == "" {
		return configured, nil
	}

	remote, err := a.remotes.OpenDefault(ctx, preferred)
	if err != nil {
		return nil, zerr.With(err, "remote", preferred)
	}

	remotes := []ports.Remote{remote}
	for _, candidate := range configured {
		if candidate.URL() == remote.URL() {
			continue
		}
		remotes = append(remotes, candidate)
	}
	return remotes, nil
}

// Clean removes the staging and receipt directories. Installed packages are
// left in place.
func (a *App) Clean(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, dir := range []string{a.cfg.Staging, a.cfg.ReceiptsPath()} {
		if dir == "" {
			continue
		}
		if err := os.RemoveAll(dir); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrCleanupFailed.Error()), "path", dir)
		}
		a.logger.Info(fmt.Sprintf("removed %s", dir))
	}

	return nil
}
