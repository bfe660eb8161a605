package textnorm_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yuin/goldmark/util"

	"github.com/yaklabco/mdscan/pkg/textnorm"
)

// escapableSet lists every byte that may follow a backslash escape.
const escapableSet = "\\!\"#$%&'()*+,./:;<=>?@[]^_`{|}~-"

func TestEscapeHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "plain text", "plain text"},
		{"empty", "", ""},
		{"ampersand", "a & b", "a &amp; b"},
		{"tag with attribute", `<a href="x">`, `&lt;a href=&quot;x&quot;&gt;`},
		{"existing entity is escaped again", "&amp;", "&amp;amp;"},
		{"apostrophe untouched", "it's", "it's"},
		{"all four", `&<>"`, "&amp;&lt;&gt;&quot;"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, textnorm.EscapeHTML(testCase.input))
		})
	}
}

func TestEscapeHTML_Idempotent(t *testing.T) {
	t.Parallel()

	once := textnorm.EscapeHTML("plain text")
	assert.Equal(t, once, textnorm.EscapeHTML(once))
}

func TestFastPaths_DoNotAllocate(t *testing.T) {
	const plain = "plain text without specials"

	tests := []struct {
		name string
		fn   func(string) string
	}{
		{"EscapeHTML", textnorm.EscapeHTML},
		{"UnescapeMarkdown", textnorm.UnescapeMarkdown},
		{"ReplaceEntities", textnorm.ReplaceEntities},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			allocs := testing.AllocsPerRun(100, func() {
				_ = testCase.fn(plain)
			})
			assert.Zero(t, allocs)
		})
	}
}

func TestIsEscapable(t *testing.T) {
	t.Parallel()

	for c := range 256 {
		expected := strings.IndexByte(escapableSet, byte(c)) >= 0
		assert.Equal(t, expected, textnorm.IsEscapable(byte(c)), "byte %#x", c)
	}
}

func TestIsEscapable_MatchesGoldmarkPunctuation(t *testing.T) {
	t.Parallel()

	for c := range 128 {
		assert.Equal(t, util.IsPunct(byte(c)), textnorm.IsEscapable(byte(c)), "byte %q", rune(c))
	}
}

func TestUnescapeMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no backslash", "plain", "plain"},
		{"emphasis markers", `\*foo\*`, "*foo*"},
		{"escaped backslash", `\\`, `\`},
		{"escaped backslash then star", `\\*`, `\*`},
		{"letter is not escapable", `\a`, `\a`},
		{"trailing backslash", `foo\`, `foo\`},
		{"non-ASCII after backslash", `\é`, `\é`},
		{"backslash before space", `a\ b`, `a\ b`},
		{"link syntax", `\[text\]\(url\)`, "[text](url)"},
		{"entity stays an entity", `\&amp;`, "&amp;"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, textnorm.UnescapeMarkdown(testCase.input))
		})
	}
}

func TestUnescapeMarkdown_RoundTrip(t *testing.T) {
	t.Parallel()

	for i := range len(escapableSet) {
		c := escapableSet[i]
		assert.Equal(t, string(c), textnorm.UnescapeMarkdown(`\`+string(c)), "byte %q", c)
	}

	assert.Equal(t, escapableSet, textnorm.UnescapeMarkdown(backslashEscape(escapableSet)))
}

// backslashEscape puts a backslash before every ASCII punctuation byte.
func backslashEscape(s string) string {
	var buf strings.Builder
	for i := range len(s) {
		if textnorm.IsEscapable(s[i]) {
			buf.WriteByte('\\')
		}
		buf.WriteByte(s[i])
	}
	return buf.String()
}

func FuzzUnescapeMarkdown(f *testing.F) {
	f.Add("plain")
	f.Add(`\*already\* escaped`)
	f.Add(escapableSet)
	f.Add("mixed é & <tags>")

	f.Fuzz(func(t *testing.T, s string) {
		if got := textnorm.UnescapeMarkdown(backslashEscape(s)); got != s {
			t.Fatalf("round trip of %q gave %q", s, got)
		}
		if got := textnorm.UnescapeMarkdown(s); len(got) > len(s) {
			t.Fatalf("unescape grew %q to %q", s, got)
		}
	})
}

func BenchmarkEscapeHTML(b *testing.B) {
	plain := strings.Repeat("plain paragraph text ", 32)
	rich := strings.Repeat(`<a href="x">R&D</a> `, 32)

	b.Run("plain", func(b *testing.B) {
		b.ReportAllocs()
		for range b.N {
			_ = textnorm.EscapeHTML(plain)
		}
	})

	b.Run("rich", func(b *testing.B) {
		b.ReportAllocs()
		for range b.N {
			_ = textnorm.EscapeHTML(rich)
		}
	})
}
