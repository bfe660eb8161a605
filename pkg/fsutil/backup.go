package fsutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
)

// BackupSuffix is appended to a file name to form its sidecar backup.
const BackupSuffix = ".mdscan.bak"

// BackupPath returns the sidecar backup path for path.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// CreateBackup copies content to the sidecar backup of path, keeping mode.
// An existing backup is never overwritten, so the first original survives
// repeated rewrites. It reports whether a backup was written.
func CreateBackup(ctx context.Context, path string, content []byte, mode os.FileMode) (bool, error) {
	backupPath := BackupPath(path)

	_, err := os.Stat(backupPath)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, os.ErrNotExist):
		return false, fmt.Errorf("stat backup path: %w", err)
	}

	if err := WriteAtomic(ctx, backupPath, content, mode); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}
	return true, nil
}

// RewriteOptions controls Rewrite.
type RewriteOptions struct {
	// Backup writes a sidecar copy of the original before replacing it.
	Backup bool
}

// Rewrite replaces the file described by info with content.
// It fails with ErrModified if the file changed since info was taken and
// skips the write when content is unchanged. The original mode is kept.
// It reports whether the file was written.
func Rewrite(ctx context.Context, info *FileInfo, original, content []byte, opts RewriteOptions) (bool, error) {
	modified, err := CheckModified(ctx, info)
	if err != nil {
		return false, err
	}
	if modified {
		return false, fmt.Errorf("%w: %s", ErrModified, info.Path)
	}

	if bytes.Equal(content, original) {
		return false, nil
	}

	if opts.Backup {
		if _, err := CreateBackup(ctx, info.Path, original, info.Mode.Perm()); err != nil {
			return false, err
		}
	}

	if err := WriteAtomic(ctx, info.Path, content, info.Mode.Perm()); err != nil {
		return false, err
	}
	return true, nil
}
