package runner

import (
	"fmt"
	"path/filepath"

	"github.com/gobwas/glob"
)

// matcher tests slash-separated relative paths against glob patterns.
// "**" crosses directory boundaries; "*" does not. Patterns without a
// slash also match the base name, so "*.bak" excludes backups anywhere.
type matcher struct {
	globs []glob.Glob
}

func compileGlobs(patterns []string) (*matcher, error) {
	m := &matcher{globs: make([]glob.Glob, 0, len(patterns))}
	for _, pattern := range patterns {
		g, err := glob.Compile(filepath.ToSlash(pattern), '/')
		if err != nil {
			return nil, fmt.Errorf("invalid glob %q: %w", pattern, err)
		}
		m.globs = append(m.globs, g)
	}
	return m, nil
}

func (m *matcher) empty() bool {
	return len(m.globs) == 0
}

func (m *matcher) match(relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	base := filepath.Base(relPath)
	for _, g := range m.globs {
		if g.Match(relPath) || g.Match(base) {
			return true
		}
	}
	return false
}

// matchDir reports whether a directory is matched, treating "dir/**"
// patterns as covering dir itself.
func (m *matcher) matchDir(relPath string) bool {
	return m.match(relPath) || m.match(filepath.ToSlash(relPath)+"/")
}
