package fsutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileMode is the permission mode for newly created files.
const DefaultFileMode os.FileMode = 0644

// WriteAtomic writes content to a temp file next to path, syncs it and
// renames it over path. A zero mode means DefaultFileMode.
// On failure path is left untouched and the temp file is removed.
func WriteAtomic(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("write atomic: %w", err)
	}

	if mode == 0 {
		mode = DefaultFileMode
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	committed = true
	return nil
}

// WriteAtomicIfChanged is WriteAtomic that skips the write when path
// already holds content. It reports whether the file was written.
func WriteAtomicIfChanged(ctx context.Context, path string, content []byte, mode os.FileMode) (bool, error) {
	existing, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return false, fmt.Errorf("read existing: %w", err)
	case bytes.Equal(existing, content):
		return false, nil
	}

	if err := WriteAtomic(ctx, path, content, mode); err != nil {
		return false, err
	}
	return true, nil
}
