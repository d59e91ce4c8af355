package httpremote

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.parcel.ch/parcel/internal/core/domain"
	"go.trai.ch/zerr"
)

// maxArchiveEntrySize caps a single extracted file to guard against
// decompression bombs.
const maxArchiveEntrySize = 1 << 30

// extractArchive unpacks a gzipped tar stream into dir. Entries escaping the
// target directory are rejected.
func extractArchive(body io.Reader, dir string) error {
	gz, err := gzip.NewReader(body)
	if err != nil {
		return zerr.Wrap(err, domain.ErrFetchFailed.Error())
	}
	defer gz.Close() //nolint:errcheck // Best effort close in defer

	reader := tar.NewReader(gz)
	for {
		header, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return zerr.Wrap(err, domain.ErrFetchFailed.Error())
		}

		target, err := sanitizePath(dir, header.Name)
		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, domain.DirPerm); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "path", target)
			}
		case tar.TypeReg:
			if err := extractFile(reader, target); err != nil {
				return err
			}
		default:
			// Symlinks and special files are not part of the package format
			continue
		}
	}
}

func extractFile(reader io.Reader, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "path", target)
	}

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm) //nolint:gosec // Target is sanitized against the staging directory
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "path", target)
	}

	if _, err := io.Copy(out, io.LimitReader(reader, maxArchiveEntrySize)); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "path", target)
	}

	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "path", target)
	}
	return nil
}

// sanitizePath joins an archive entry name onto dir and rejects traversal.
func sanitizePath(dir, name string) (string, error) {
	target := filepath.Join(dir, filepath.Clean("/"+name))
	if target != dir && !strings.HasPrefix(target, dir+string(filepath.Separator)) {
		return "", zerr.With(zerr.Wrap(domain.ErrFetchFailed, "archive entry escapes staging directory"), "entry", name)
	}
	return target, nil
}
