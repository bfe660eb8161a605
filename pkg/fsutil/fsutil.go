// Package fsutil provides the file primitives mdscan uses to read sources
// and write results: snapshot reads, atomic writes, concurrent-edit
// detection and sidecar backups for in-place rewrites.
package fsutil

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"time"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNilFileInfo is returned when a nil FileInfo is passed.
	ErrNilFileInfo = errors.New("nil FileInfo")

	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrModified indicates the file changed on disk after it was read.
	ErrModified = errors.New("file modified since read")
)

// FileInfo is a snapshot of a file taken when it was read.
type FileInfo struct {
	Path    string
	Mode    os.FileMode
	ModTime time.Time
	Size    int64

	// Hash is the SHA-256 of the content at read time.
	Hash [32]byte
}

// ReadFile reads path and returns its content with a snapshot for later
// modification checks.
func ReadFile(ctx context.Context, path string) ([]byte, *FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, classify(path, "stat", err)
	}
	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, classify(path, "read", err)
	}

	return content, &FileInfo{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
		Hash:    sha256.Sum256(content),
	}, nil
}

func classify(path, op string, err error) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("%s %s: %w", op, path, err)
	}
}

// CheckModified reports whether the file differs from the snapshot.
// Mod time and size are compared first; if they match the content is
// re-hashed. A deleted file counts as modified.
func CheckModified(ctx context.Context, info *FileInfo) (bool, error) {
	if info == nil {
		return false, ErrNilFileInfo
	}
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("check modified: %w", err)
	}

	stat, err := os.Stat(info.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return true, nil
		}
		return false, fmt.Errorf("stat %s: %w", info.Path, err)
	}

	if !stat.ModTime().Equal(info.ModTime) || stat.Size() != info.Size {
		return true, nil
	}

	content, err := os.ReadFile(info.Path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", info.Path, err)
	}

	return sha256.Sum256(content) != info.Hash, nil
}
