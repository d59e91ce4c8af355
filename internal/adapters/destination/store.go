// Package destination implements the directory-backed install target.
package destination

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.parcel.ch/parcel/internal/core/domain"
	"go.parcel.ch/parcel/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Destination = (*Store)(nil)

// Store implements ports.Destination using a directory-per-version layout.
// A package lands at <root>/<name>/<version> and every install writes a
// receipt next to the package tree.
type Store struct {
	root     string
	receipts string
	logger   ports.Logger
}

// NewStore creates a Store rooted at the configured destination directory.
func NewStore(cfg *domain.Config, logger ports.Logger) *Store {
	return &Store{
		root:     cfg.Destination,
		receipts: cfg.ReceiptsPath(),
		logger:   logger,
	}
}

// Accepts reports whether the store can receive installs. The destination
// root must exist or be creatable.
func (s *Store) Accepts() bool {
	if s.root == "" {
		return false
	}
	if err := os.MkdirAll(s.root, domain.DirPerm); err != nil {
		return false
	}
	return true
}

// Install materializes the package tree into the destination and records a
// receipt. Reinstalling the same name and version overwrites the previous
// tree.
func (s *Store) Install(ctx context.Context, pkg *domain.Manifest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := filepath.Join(s.root, pkg.Name, pkg.Version)
	if err := os.RemoveAll(target); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInstallExecutionFailed.Error()), "path", target)
	}
	if err := copyTree(pkg.Path, target); err != nil {
		return zerr.With(err, "package", pkg.Name)
	}

	digest, err := computeTreeDigest(target)
	if err != nil {
		return zerr.With(err, "package", pkg.Name)
	}

	if err := s.writeReceipt(pkg, target, digest); err != nil {
		return err
	}

	s.logger.Info(fmt.Sprintf("installed %s@%s", pkg.Name, pkg.Version))
	return nil
}

// writeReceipt stores the install receipt as a JSON file named after the
// package and version.
func (s *Store) writeReceipt(pkg *domain.Manifest, target, digest string) error {
	receipt := Receipt{
		Name:        pkg.Name,
		Version:     pkg.Version,
		Digest:      digest,
		Path:        target,
		InstalledAt: time.Now().UTC(),
	}

	data, err := json.MarshalIndent(receipt, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrReceiptWriteFailed.Error())
	}

	if err := os.MkdirAll(s.receipts, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrReceiptWriteFailed.Error())
	}

	filename := filepath.Join(s.receipts, receiptName(pkg.Name, pkg.Version))
	//nolint:gosec // Path is constructed from the configured receipts directory
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReceiptWriteFailed.Error()), "path", filename)
	}

	return nil
}

// receiptName flattens the package coordinates into a single filename.
func receiptName(name, version string) string {
	flat := strings.ReplaceAll(name, string(filepath.Separator), "_")
	return flat + "@" + version + ".json"
}

// copyTree copies the directory tree at src into dst, skipping parcel
// metadata directories.
func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInstallExecutionFailed.Error()), "path", path)
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return zerr.Wrap(err, domain.ErrInstallExecutionFailed.Error())
		}

		if entry.IsDir() {
			if entry.Name() == domain.ParcelDirName {
				return filepath.SkipDir
			}
			return os.MkdirAll(filepath.Join(dst, rel), domain.DirPerm)
		}

		return copyFile(path, filepath.Join(dst, rel))
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Path comes from walking the staged package
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInstallExecutionFailed.Error()), "path", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm) //nolint:gosec // Destination path derives from the install root
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInstallExecutionFailed.Error()), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrInstallExecutionFailed.Error()), "path", dst)
	}

	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInstallExecutionFailed.Error()), "path", dst)
	}
	return nil
}

// computeTreeDigest hashes the installed tree's file paths and contents into
// a single content digest.
func computeTreeDigest(root string) (string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrInstallExecutionFailed.Error()), "path", root)
	}

	// Sort for determinism
	sort.Strings(files)

	hasher := xxhash.New()
	for _, file := range files {
		rel, err := filepath.Rel(root, file)
		if err != nil {
			return "", zerr.Wrap(err, domain.ErrInstallExecutionFailed.Error())
		}
		_, _ = hasher.WriteString(filepath.ToSlash(rel))
		_, _ = hasher.Write([]byte{0})

		fileHash, err := computeFileHash(file)
		if err != nil {
			return "", err
		}
		if err := binary.Write(hasher, binary.LittleEndian, fileHash); err != nil {
			return "", zerr.Wrap(err, "failed to write hash to digest")
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// computeFileHash computes the XXHash of a file's content.
func computeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from walking the installed tree
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}
