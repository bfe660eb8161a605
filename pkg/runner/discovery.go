package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yaklabco/mdscan/pkg/fsutil"
)

// discoverer holds the resolved state for one Discover call.
type discoverer struct {
	workDir    string
	extensions []string
	include    *matcher
	exclude    *matcher
	follow     bool
	seen       map[string]struct{}
	walked     map[string]struct{}
	files      []string
}

// Discover resolves opts.Paths to a sorted, deduplicated list of absolute
// file paths. Directories are walked recursively, skipping hidden entries
// and files without a Markdown extension.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	include, err := compileGlobs(opts.IncludeGlobs)
	if err != nil {
		return nil, err
	}
	exclude, err := compileGlobs(opts.ExcludeGlobs)
	if err != nil {
		return nil, err
	}

	d := &discoverer{
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		include:    include,
		exclude:    exclude,
		follow:     opts.FollowSymlinks,
		seen:       make(map[string]struct{}),
		walked:     make(map[string]struct{}),
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(absPath) {
			absPath = filepath.Join(workDir, absPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", fsutil.ErrNotFound, inputPath)
			}
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			if d.selected(absPath, workDir) {
				d.add(absPath)
			}
			continue
		}

		if err := d.walk(ctx, absPath); err != nil {
			return nil, err
		}
	}

	slices.Sort(d.files)
	return d.files, nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		return os.Getwd()
	}
	return filepath.Abs(workDir)
}

func (d *discoverer) walk(ctx context.Context, root string) error {
	if _, ok := d.walked[root]; ok {
		return nil
	}
	d.walked[root] = struct{}{}

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		hidden := path != root && strings.HasPrefix(entry.Name(), ".")

		if entry.IsDir() {
			if hidden || (path != root && d.excludedDir(path, root)) {
				return filepath.SkipDir
			}
			return nil
		}

		if hidden {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			return d.symlink(ctx, path, root)
		}

		if d.hasExtension(path) && d.selected(path, root) {
			d.add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

// symlink handles a link found while walking. Broken links are skipped;
// directory links are walked at their target only with FollowSymlinks.
func (d *discoverer) symlink(ctx context.Context, path, root string) error {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil //nolint:nilerr // broken symlinks are skipped
	}
	info, err := os.Stat(target)
	if err != nil {
		return nil //nolint:nilerr // unreadable targets are skipped
	}

	if info.IsDir() {
		if !d.follow {
			return nil
		}
		return d.walk(ctx, target)
	}

	if d.hasExtension(path) && d.selected(path, root) {
		d.add(path)
	}
	return nil
}

// selected applies the include and exclude globs. Patterns are matched
// against the path relative to the working directory and relative to the
// input path being walked.
func (d *discoverer) selected(path, root string) bool {
	candidates := d.relPaths(path, root)
	if slices.ContainsFunc(candidates, d.exclude.match) {
		return false
	}
	return d.include.empty() || slices.ContainsFunc(candidates, d.include.match)
}

func (d *discoverer) excludedDir(path, root string) bool {
	return slices.ContainsFunc(d.relPaths(path, root), d.exclude.matchDir)
}

func (d *discoverer) hasExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.ContainsFunc(d.extensions, func(e string) bool {
		return strings.ToLower(e) == ext
	})
}

func (d *discoverer) relPaths(path, root string) []string {
	paths := make([]string, 0, 2)
	for _, base := range []string{d.workDir, root} {
		if rel, err := filepath.Rel(base, path); err == nil && !slices.Contains(paths, rel) {
			paths = append(paths, rel)
		}
	}
	if len(paths) == 0 {
		paths = append(paths, path)
	}
	return paths
}

func (d *discoverer) add(path string) {
	if _, ok := d.seen[path]; ok {
		return
	}
	d.seen[path] = struct{}{}
	d.files = append(d.files, path)
}
