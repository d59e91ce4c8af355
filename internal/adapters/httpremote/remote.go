// Package httpremote implements the Remote port against an HTTP package index.
package httpremote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.parcel.ch/parcel/internal/core/domain"
	"go.parcel.ch/parcel/internal/core/ports"
	"go.trai.ch/zerr"
)

const httpClientTimeout = 30 * time.Second

var _ ports.Remote = (*Remote)(nil)

// Remote implements ports.Remote against an HTTP index. The remote serves one
// JSON index per package name and gzipped tar archives for the payloads.
type Remote struct {
	baseURL    string
	staging    string
	httpClient *http.Client
}

// New creates a Remote for the given base URL. Fetched archives are unpacked
// under the staging directory.
func New(baseURL, staging string) *Remote {
	return newWithClient(baseURL, staging, &http.Client{Timeout: httpClientTimeout})
}

// newWithClient creates a Remote with a custom http client (used for testing).
func newWithClient(baseURL, staging string, client *http.Client) *Remote {
	return &Remote{
		baseURL:    strings.TrimRight(baseURL, "/"),
		staging:    staging,
		httpClient: client,
	}
}

// URL returns the remote's base URL.
func (r *Remote) URL() string {
	return r.baseURL
}

// List queries the remote's package index for all published versions of the
// requested name. A remote that does not carry the package returns an empty
// result, not an error.
func (r *Remote) List(ctx context.Context, query ports.ListQuery) ([]ports.PackageInfo, error) {
	index, err := r.fetchIndex(ctx, query.Name)
	if err != nil {
		return nil, err
	}
	if index == nil {
		return nil, nil
	}

	infos := make([]ports.PackageInfo, 0, len(index.Versions))
	for _, entry := range index.Versions {
		version, err := domain.NormalizeVersion(entry.Version)
		if err != nil {
			continue
		}

		info := ports.PackageInfo{
			Name:    index.Name,
			Version: version,
			Ref:     r.archiveURL(entry.Archive),
		}
		if query.IncludeDependencies {
			info.Dependencies = entry.Dependencies
		}
		infos = append(infos, info)
	}

	return infos, nil
}

// Fetch downloads the package archive and unpacks it into a fresh staging
// directory. The returned path is the unpacked package root.
func (r *Remote) Fetch(ctx context.Context, info ports.PackageInfo) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, info.Ref, http.NoBody)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrFetchFailed.Error())
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "ref", info.Ref)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		fetchErr := zerr.With(domain.ErrFetchFailed, "status_code", resp.StatusCode)
		return "", zerr.With(fetchErr, "ref", info.Ref)
	}

	if err := os.MkdirAll(r.staging, domain.DirPerm); err != nil {
		return "", zerr.Wrap(err, domain.ErrStagingCreateFailed.Error())
	}

	stagingDir, err := os.MkdirTemp(r.staging, stagingPrefix(info))
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrStagingCreateFailed.Error())
	}

	if err := extractArchive(resp.Body, stagingDir); err != nil {
		_ = os.RemoveAll(stagingDir)
		return "", zerr.With(err, "ref", info.Ref)
	}

	return stagingDir, nil
}

// Cleanup removes a previously staged package directory. Paths outside the
// staging area are refused.
func (r *Remote) Cleanup(ctx context.Context, stagedPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !within(r.staging, stagedPath) {
		return zerr.With(zerr.Wrap(domain.ErrCleanupFailed, "path is outside the staging area"), "path", stagedPath)
	}

	if err := os.RemoveAll(stagedPath); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCleanupFailed.Error()), "path", stagedPath)
	}
	return nil
}

// fetchIndex retrieves the per-package index. A 404 means the remote does not
// carry the package and yields a nil index.
func (r *Remote) fetchIndex(ctx context.Context, name string) (*packageIndex, error) {
	indexURL := fmt.Sprintf("%s/packages/%s.json", r.baseURL, url.PathEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, indexURL, http.NoBody)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRemoteListFailed.Error())
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRemoteListFailed.Error()), "remote", r.baseURL)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		listErr := zerr.With(domain.ErrRemoteListFailed, "status_code", resp.StatusCode)
		return nil, zerr.With(listErr, "remote", r.baseURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRemoteListFailed.Error())
	}

	var index packageIndex
	if err := json.Unmarshal(body, &index); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRemoteListFailed.Error()), "remote", r.baseURL)
	}
	if index.Name == "" {
		index.Name = name
	}

	return &index, nil
}

// archiveURL resolves a possibly relative archive reference against the base
// URL.
func (r *Remote) archiveURL(archive string) string {
	if strings.Contains(archive, "://") {
		return archive
	}
	return r.baseURL + "/" + strings.TrimLeft(archive, "/")
}

// stagingPrefix builds a readable prefix for the staging temp directory.
func stagingPrefix(info ports.PackageInfo) string {
	flat := strings.ReplaceAll(info.Name, "/", "_")
	return flat + "-" + info.Version + "-"
}

// within reports whether path is inside root.
func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
