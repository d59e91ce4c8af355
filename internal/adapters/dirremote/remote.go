// Package dirremote implements the Remote port over a local package directory.
package dirremote

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.parcel.ch/parcel/internal/core/domain"
	"go.parcel.ch/parcel/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Remote = (*Remote)(nil)

// Remote implements ports.Remote over a directory tree laid out as
// <root>/<name>/<version>/ with a manifest in each version directory.
type Remote struct {
	root    string
	staging string
	loader  ports.ManifestLoader
}

// New creates a Remote for the given package directory. Fetched packages are
// copied under the staging directory so cleanup never touches the source tree.
func New(root, staging string, loader ports.ManifestLoader) *Remote {
	return &Remote{
		root:    filepath.Clean(root),
		staging: staging,
		loader:  loader,
	}
}

// URL returns the remote's root directory.
func (r *Remote) URL() string {
	return r.root
}

// List enumerates the published versions of the requested package name. A
// missing package directory yields an empty result, not an error.
func (r *Remote) List(ctx context.Context, query ports.ListQuery) ([]ports.PackageInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	packageDir := filepath.Join(r.root, query.Name)
	entries, err := os.ReadDir(packageDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRemoteListFailed.Error()), "path", packageDir)
	}

	var infos []ports.PackageInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		version, err := domain.NormalizeVersion(entry.Name())
		if err != nil {
			continue
		}

		versionDir := filepath.Join(packageDir, entry.Name())
		info := ports.PackageInfo{
			Name:    query.Name,
			Version: version,
			Ref:     versionDir,
		}

		if query.IncludeDependencies {
			pkg, err := r.loader.Load(versionDir)
			if err != nil {
				continue
			}
			info.Dependencies = pkg.Dependencies
		}

		infos = append(infos, info)
	}

	return infos, nil
}

// Fetch copies the package version directory into a fresh staging directory
// and returns the copy's path.
func (r *Remote) Fetch(ctx context.Context, info ports.PackageInfo) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(r.staging, domain.DirPerm); err != nil {
		return "", zerr.Wrap(err, domain.ErrStagingCreateFailed.Error())
	}

	prefix := strings.ReplaceAll(info.Name, "/", "_") + "-" + info.Version + "-"
	stagingDir, err := os.MkdirTemp(r.staging, prefix)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrStagingCreateFailed.Error())
	}

	if err := copyTree(info.Ref, stagingDir); err != nil {
		_ = os.RemoveAll(stagingDir)
		return "", zerr.With(err, "package", info.Name)
	}

	return stagingDir, nil
}

// Cleanup removes a previously staged package copy. Paths outside the staging
// area are refused so the source tree cannot be deleted.
func (r *Remote) Cleanup(ctx context.Context, stagedPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rel, err := filepath.Rel(r.staging, stagedPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return zerr.With(zerr.Wrap(domain.ErrCleanupFailed, "path is outside the staging area"), "path", stagedPath)
	}

	if err := os.RemoveAll(stagedPath); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCleanupFailed.Error()), "path", stagedPath)
	}
	return nil
}

// copyTree copies the directory tree at src into dst.
func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "path", path)
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return zerr.Wrap(err, domain.ErrFetchFailed.Error())
		}

		if entry.IsDir() {
			return os.MkdirAll(filepath.Join(dst, rel), domain.DirPerm)
		}
		return copyFile(path, filepath.Join(dst, rel))
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Path comes from walking the source package
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "path", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm) //nolint:gosec // Destination derives from the staging directory
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "path", dst)
	}

	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "path", dst)
	}
	return nil
}
