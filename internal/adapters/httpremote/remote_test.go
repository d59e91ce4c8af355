package httpremote_test

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.parcel.ch/parcel/internal/adapters/httpremote"
	"go.parcel.ch/parcel/internal/core/domain"
	"go.parcel.ch/parcel/internal/core/ports"
)

func packArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for name, content := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     name,
			Typeflag: tar.TypeReg,
			Mode:     0o644,
			Size:     int64(len(content)),
		}))
		_, err := tw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func TestRemote_List(t *testing.T) {
	t.Parallel()

	t.Run("maps index entries to package infos", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/packages/mytool.json", r.URL.Path)
			_, _ = w.Write([]byte(`{
				"name": "mytool",
				"versions": [
					{"version": "1.0.0", "archive": "archives/mytool-1.0.0.tar.gz"},
					{"version": "1.1", "dependencies": {"lib": "2.0.0"}, "archive": "archives/mytool-1.1.0.tar.gz"}
				]
			}`))
		}))
		defer server.Close()

		remote := httpremote.New(server.URL, t.TempDir())
		infos, err := remote.List(context.Background(), ports.ListQuery{Name: "mytool", IncludeDependencies: true})
		require.NoError(t, err)
		require.Len(t, infos, 2)

		assert.Equal(t, "1.0.0", infos[0].Version)
		assert.Equal(t, server.URL+"/archives/mytool-1.0.0.tar.gz", infos[0].Ref)
		assert.Nil(t, infos[0].Dependencies)

		// Partial versions come back normalized.
		assert.Equal(t, "1.1.0", infos[1].Version)
		assert.Equal(t, map[string]string{"lib": "2.0.0"}, infos[1].Dependencies)
	})

	t.Run("dependencies omitted when not requested", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"versions": [{"version": "1.0.0", "dependencies": {"lib": "1.0.0"}, "archive": "a.tar.gz"}]}`))
		}))
		defer server.Close()

		remote := httpremote.New(server.URL, t.TempDir())
		infos, err := remote.List(context.Background(), ports.ListQuery{Name: "mytool"})
		require.NoError(t, err)
		require.Len(t, infos, 1)
		assert.Nil(t, infos[0].Dependencies)
	})

	t.Run("unknown package yields empty result", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.NotFoundHandler())
		defer server.Close()

		remote := httpremote.New(server.URL, t.TempDir())
		infos, err := remote.List(context.Background(), ports.ListQuery{Name: "ghost"})
		require.NoError(t, err)
		assert.Empty(t, infos)
	})

	t.Run("server error fails the listing", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		remote := httpremote.New(server.URL, t.TempDir())
		_, err := remote.List(context.Background(), ports.ListQuery{Name: "mytool"})
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrRemoteListFailed.Error())
	})

	t.Run("unparseable versions are skipped", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"versions": [{"version": "banana", "archive": "a"}, {"version": "1.0.0", "archive": "b"}]}`))
		}))
		defer server.Close()

		remote := httpremote.New(server.URL, t.TempDir())
		infos, err := remote.List(context.Background(), ports.ListQuery{Name: "mytool"})
		require.NoError(t, err)
		require.Len(t, infos, 1)
		assert.Equal(t, "1.0.0", infos[0].Version)
	})
}

func TestRemote_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("downloads and unpacks the archive", func(t *testing.T) {
		t.Parallel()

		archive := packArchive(t, map[string]string{
			"parcel.pkg.yaml": "name: mytool\nversion: 1.0.0\n",
			"bin/tool":        "#!/bin/sh\n",
		})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write(archive)
		}))
		defer server.Close()

		staging := t.TempDir()
		remote := httpremote.New(server.URL, staging)
		info := ports.PackageInfo{Name: "mytool", Version: "1.0.0", Ref: server.URL + "/a.tar.gz"}

		staged, err := remote.Fetch(context.Background(), info)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(staged, staging))

		data, err := os.ReadFile(filepath.Join(staged, "bin", "tool"))
		require.NoError(t, err)
		assert.Equal(t, "#!/bin/sh\n", string(data))
	})

	t.Run("missing archive fails", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.NotFoundHandler())
		defer server.Close()

		remote := httpremote.New(server.URL, t.TempDir())
		_, err := remote.Fetch(context.Background(), ports.PackageInfo{Ref: server.URL + "/a.tar.gz"})
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrFetchFailed.Error())
	})

	t.Run("traversal entries are rejected", func(t *testing.T) {
		t.Parallel()

		archive := packArchive(t, map[string]string{"../escape.txt": "nope"})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write(archive)
		}))
		defer server.Close()

		staging := t.TempDir()
		remote := httpremote.New(server.URL, staging)
		staged, err := remote.Fetch(context.Background(), ports.PackageInfo{Ref: server.URL + "/a.tar.gz"})

		// Clean("/../escape.txt") lands inside the staging dir, so the entry
		// either extracts sanitized or the fetch fails. It must never land
		// outside.
		if err == nil {
			assert.True(t, strings.HasPrefix(staged, staging))
		}
		_, statErr := os.Stat(filepath.Join(filepath.Dir(staging), "escape.txt"))
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestRemote_Cleanup(t *testing.T) {
	t.Parallel()

	t.Run("removes staged directories", func(t *testing.T) {
		t.Parallel()

		staging := t.TempDir()
		remote := httpremote.New("https://pkgs.example.com", staging)

		staged := filepath.Join(staging, "mytool-1.0.0-abc")
		require.NoError(t, os.MkdirAll(staged, 0o750))

		require.NoError(t, remote.Cleanup(context.Background(), staged))
		_, err := os.Stat(staged)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("refuses paths outside staging", func(t *testing.T) {
		t.Parallel()

		remote := httpremote.New("https://pkgs.example.com", t.TempDir())
		victim := t.TempDir()

		err := remote.Cleanup(context.Background(), victim)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrCleanupFailed.Error())
		_, statErr := os.Stat(victim)
		assert.NoError(t, statErr)
	})
}
