package source_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdscan/pkg/source"
)

func TestIndex_Lines(t *testing.T) {
	t.Parallel()

	nested := source.Build("  foo\n  bar\n  baz\n")

	tests := []struct {
		name       string
		idx        *source.Index
		begin      int
		end        int
		indent     int
		keepLastLF bool
		expected   string
	}{
		{"dedent all lines", nested, 0, 3, 2, false, "foo\nbar\nbaz"},
		{"zero indent keeps spaces", nested, 0, 3, 0, false, "  foo\n  bar\n  baz"},
		{"partial dedent", nested, 0, 3, 1, false, " foo\n bar\n baz"},
		{"keep last terminator", nested, 0, 3, 2, true, "foo\nbar\nbaz\n"},
		{"single line", nested, 1, 2, 2, false, "bar"},
		{"single line keeps terminator", nested, 0, 1, 2, true, "foo\n"},
		{"single last line keeps terminator", nested, 2, 3, 2, true, "baz\n"},
		{"empty range", nested, 1, 1, 2, false, ""},
		{"inverted range", nested, 2, 1, 2, false, ""},
		{"range at line max", nested, 3, 3, 0, true, ""},
		{
			name:     "indent budget larger than line indent",
			idx:      source.Build("  foo\n    bar\n"),
			begin:    0,
			end:      2,
			indent:   3,
			expected: "foo\n bar",
		},
		{
			name:     "blank line inside range",
			idx:      source.Build("foo\n\nbar"),
			begin:    0,
			end:      3,
			expected: "foo\n\nbar",
		},
		{
			name:       "last line without terminator",
			idx:        source.Build("a\nb"),
			begin:      0,
			end:        2,
			keepLastLF: true,
			expected:   "a\nb",
		},
		{
			name:       "space-only line dedented to empty",
			idx:        source.Build("  a\n   \n  b\n"),
			begin:      0,
			end:        3,
			indent:     4,
			keepLastLF: true,
			expected:   "a\n\nb\n",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := testCase.idx.Lines(testCase.begin, testCase.end, testCase.indent, testCase.keepLastLF)
			assert.Equal(t, testCase.expected, got)
		})
	}
}

func TestIndex_Lines_WithoutSentinel(t *testing.T) {
	t.Parallel()

	// Hand-built index whose LineMax equals the table length.
	idx := &source.Index{
		Src:           "foo",
		LineStart:     []int{0},
		LineEnd:       []int{3},
		LeadingIndent: []int{0},
		LineMax:       1,
	}
	require.NoError(t, idx.Validate())

	assert.Equal(t, "foo", idx.Lines(0, 1, 0, true))
}

func TestIndex_Lines_OutOfRange(t *testing.T) {
	t.Parallel()

	idx := source.Build("foo\nbar\n")

	tests := []struct {
		name   string
		begin  int
		end    int
		indent int
	}{
		{"negative begin", -1, 1, 0},
		{"end past line max", 0, 3, 0},
		{"negative indent", 0, 1, -1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			defer func() {
				recovered := recover()
				require.NotNil(t, recovered, "expected panic")

				err, ok := recovered.(error)
				require.True(t, ok, "panic value should be an error, got %T", recovered)
				assert.True(t, errors.Is(err, source.ErrLineRange))
			}()

			idx.Lines(testCase.begin, testCase.end, testCase.indent, false)
		})
	}
}

func FuzzBuild(f *testing.F) {
	seeds := []string{
		"",
		"foo",
		"foo\n",
		"  foo\n  bar\n  baz\n",
		"\n\n\n",
		"a\r\nb\rc",
		"\tcode\n\t\tmore",
		"   \n",
		"# Heading\n\n- item\n  continued\n",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		for _, text := range []string{src, source.Normalize(src, source.DefaultTabWidth)} {
			idx := source.Build(text)

			if err := idx.Validate(); err != nil {
				t.Fatalf("Build(%q) produced invalid index: %v", text, err)
			}

			// The whole range with terminators reproduces the source.
			if got := idx.Lines(0, idx.LineMax, 0, true); got != text {
				t.Fatalf("Lines(0, %d) = %q, want %q", idx.LineMax, got, text)
			}

			for line := range idx.LineMax {
				content := idx.Lines(line, line+1, idx.LeadingIndent[line], false)
				if strings.Contains(content, "\n") {
					t.Fatalf("line %d content %q contains a terminator", line, content)
				}
			}
		}
	})
}

func BenchmarkIndex_Lines(b *testing.B) {
	src := strings.Repeat("    indented code line\n", 256)
	idx := source.Build(src)

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		_ = idx.Lines(0, idx.LineMax, 4, true)
	}
}
