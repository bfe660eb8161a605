// Package runner applies a per-file operation to many Markdown files
// concurrently.
package runner

// Options controls file discovery and concurrency.
type Options struct {
	// Paths are the files or directories to process.
	// If empty, defaults to the working directory.
	Paths []string

	// WorkingDir resolves relative Paths and anchors glob patterns.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions selects files found while walking directories
	// (lowercase, with leading dot). Defaults to DefaultExtensions().
	// Files named explicitly in Paths are processed regardless.
	Extensions []string

	// IncludeGlobs, when set, restricts processing to matching paths.
	IncludeGlobs []string

	// ExcludeGlobs skips matching files and directories.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs caps the number of concurrent workers.
	// 0 or negative means runtime.NumCPU().
	Jobs int
}

// DefaultExtensions returns the default set of Markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
