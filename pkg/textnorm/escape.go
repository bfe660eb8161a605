package textnorm

import "strings"

//nolint:gochecknoglobals // Read-only replacer, safe for concurrent use.
var htmlEscaper = strings.NewReplacer(
	`&`, `&amp;`,
	`<`, `&lt;`,
	`>`, `&gt;`,
	`"`, `&quot;`,
)

// EscapeHTML replaces &, <, > and " with their HTML entities.
// Text containing none of them is returned without copying.
func EscapeHTML(s string) string {
	if strings.IndexAny(s, `&<>"`) < 0 {
		return s
	}
	return htmlEscaper.Replace(s)
}

// IsEscapable reports whether c may follow a backslash as a Markdown escape.
// The set is exactly ASCII punctuation.
func IsEscapable(c byte) bool {
	return '!' <= c && c <= '/' || ':' <= c && c <= '@' || '[' <= c && c <= '`' || '{' <= c && c <= '~'
}

// UnescapeMarkdown removes the backslash from every backslash escape.
// A backslash before anything other than ASCII punctuation is kept.
func UnescapeMarkdown(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s))

	last := 0
	for i := 0; i+1 < len(s); i++ {
		if s[i] != '\\' || !IsEscapable(s[i+1]) {
			continue
		}
		buf.WriteString(s[last:i])
		buf.WriteByte(s[i+1])
		i++
		last = i + 1
	}
	buf.WriteString(s[last:])

	return buf.String()
}
