package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdscan/internal/cli"
)

// execute runs the root command with args, feeding stdin, and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--color", "never"}, args...))

	err := cmd.Execute()
	return stdout.String(), err
}

// writeConfig writes a config file into a fresh directory and returns its path.
func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeDocument(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestIntegration_Version(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "version")
	require.NoError(t, err)

	assert.Contains(t, out, "test-version")
	assert.Contains(t, out, "test-commit")
	assert.Contains(t, out, "test-date")
}

func TestIntegration_InspectText(t *testing.T) {
	t.Parallel()

	doc := writeDocument(t, "# Title\n\n    code\n")

	out, err := execute(t, "", "inspect", doc)
	require.NoError(t, err)

	assert.Contains(t, out, "LINE")
	assert.Contains(t, out, "CONTENT")
	assert.Contains(t, out, "····code")
	assert.Contains(t, out, "3 lines (1 blank)")
	assert.Contains(t, out, "max indent 4")
}

func TestIntegration_InspectSummaryOnly(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "a\nb\n", "inspect", "--summary")
	require.NoError(t, err)

	assert.Equal(t, "<stdin>: 2 lines (0 blank), 4 bytes, max indent 0\n", out)
}

func TestIntegration_InspectJSON(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "a\r\n\tb", "inspect", "--format", "json")
	require.NoError(t, err)

	var doc struct {
		Version string `json:"version"`
		Summary struct {
			Lines     int `json:"lines"`
			MaxIndent int `json:"max_indent"`
		} `json:"summary"`
		Lines []struct {
			Line   int `json:"line"`
			Start  int `json:"start"`
			End    int `json:"end"`
			Indent int `json:"indent"`
		} `json:"lines"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "1.0.0", doc.Version)
	assert.Equal(t, 2, doc.Summary.Lines)
	assert.Equal(t, 4, doc.Summary.MaxIndent)
	require.Len(t, doc.Lines, 2)
	assert.Equal(t, 2, doc.Lines[1].Start)
	assert.Equal(t, 7, doc.Lines[1].End)
	assert.Equal(t, 4, doc.Lines[1].Indent)
}

func TestIntegration_InspectTabWidthFromConfig(t *testing.T) {
	t.Parallel()

	cfg := writeConfig(t, ".mdscan.yml", "tab_width: 2\n")

	out, err := execute(t, "\tx\n", "--config", cfg, "inspect", "--summary")
	require.NoError(t, err)
	assert.Contains(t, out, "max indent 2")

	out, err = execute(t, "\tx\n", "--config", cfg, "inspect", "--summary", "--tab-width", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "max indent 8")
}

func TestIntegration_Lines(t *testing.T) {
	t.Parallel()

	doc := "a\n    b\n      c\n\nd\n"

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "whole document", args: nil, want: "a\n    b\n      c\n\nd"},
		{name: "range with indent", args: []string{"--begin", "1", "--end", "3", "--indent", "4"}, want: "b\n  c"},
		{name: "keep eol", args: []string{"--begin", "1", "--end", "2", "--indent", "4", "--keep-eol"}, want: "b\n"},
		{name: "skip blank", args: []string{"--begin", "3", "--skip-blank"}, want: "d"},
		{name: "empty range", args: []string{"--begin", "2", "--end", "2"}, want: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			out, err := execute(t, doc, append([]string{"lines"}, testCase.args...)...)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, out)
		})
	}
}

func TestIntegration_LinesIndentZeroOverridesConfig(t *testing.T) {
	t.Parallel()

	cfg := writeConfig(t, ".mdscan.yml", "indent: 4\n")

	out, err := execute(t, "    x\n", "--config", cfg, "lines")
	require.NoError(t, err)
	assert.Equal(t, "x", out)

	out, err = execute(t, "    x\n", "--config", cfg, "lines", "--indent", "0")
	require.NoError(t, err)
	assert.Equal(t, "    x", out)
}

func TestIntegration_LinesJSON(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "a\nb\n", "lines", "--format", "json", "--keep-eol")
	require.NoError(t, err)

	var doc struct {
		Begin      int    `json:"begin"`
		End        int    `json:"end"`
		KeepLastLF bool   `json:"keep_last_lf"`
		Text       string `json:"text"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, 0, doc.Begin)
	assert.Equal(t, 2, doc.End)
	assert.True(t, doc.KeepLastLF)
	assert.Equal(t, "a\nb\n", doc.Text)
}

func TestIntegration_LinesOutputFile(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "excerpt.md")

	out, err := execute(t, "a\nb\n", "lines", "--begin", "1", "-o", target)
	require.NoError(t, err)
	assert.Empty(t, out)

	written, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "b", string(written))
}

func TestIntegration_LinesInvalidRange(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{
		{"lines", "--begin", "5"},
		{"lines", "--end", "9"},
		{"lines", "--begin", "-1"},
		{"lines", "--indent", "-2"},
	} {
		_, err := execute(t, "a\nb\n", args...)
		require.Error(t, err, args)
		assert.ErrorIs(t, err, cli.ErrInvalidUsage, args)
		assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeFromError(err), args)
	}
}

func TestIntegration_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		args  []string
		want  string
	}{
		{
			name:  "defaults",
			input: "\\*a\\* &amp; &#x41; <b>\n",
			want:  "*a* &amp; A &lt;b&gt;\n",
		},
		{
			name:  "no escape",
			input: "\\*a\\* &amp; &#x41;\n",
			args:  []string{"--escape=false"},
			want:  "*a* & A\n",
		},
		{
			name:  "escaped reference stays literal",
			input: "\\&amp;",
			args:  []string{"--escape=false"},
			want:  "&amp;",
		},
		{
			name:  "invalid reference replaced",
			input: "&#xD800;",
			args:  []string{"--escape=false"},
			want:  "\uFFFD",
		},
		{
			name:  "invalid reference kept",
			input: "&#xD800;",
			args:  []string{"--escape=false", "--invalid-code-points", "keep"},
			want:  "&#xD800;",
		},
		{
			name:  "entities disabled",
			input: "&copy; \\*",
			args:  []string{"--escape=false", "--entities=false"},
			want:  "&copy; *",
		},
		{
			name:  "source only",
			input: "a\tb\r\nc\x00",
			args:  []string{"--source-only"},
			want:  "a   b\nc\uFFFD",
		},
		{
			name:  "nfc",
			input: "e\u0301",
			args:  []string{"--nfc"},
			want:  "\u00e9",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			out, err := execute(t, testCase.input, append([]string{"normalize"}, testCase.args...)...)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, out)
		})
	}
}

func TestIntegration_NormalizeConfigFile(t *testing.T) {
	t.Parallel()

	cfg := writeConfig(t, ".mdscan.json", `{"escape_html": false, "unicode_form": "nfc"}`)

	out, err := execute(t, "a & e\u0301", "--config", cfg, "normalize")
	require.NoError(t, err)
	assert.Equal(t, "a & \u00e9", out)

	out, err = execute(t, "a & b", "--config", cfg, "normalize", "--escape")
	require.NoError(t, err)
	assert.Equal(t, "a &amp; b", out)
}

func TestIntegration_NormalizeWrite(t *testing.T) {
	t.Parallel()

	doc := writeDocument(t, "a\r\nb &amp; c\r\n")

	out, err := execute(t, "", "normalize", "--write", "--backup", "--escape=false", doc)
	require.NoError(t, err)
	assert.Empty(t, out)

	rewritten, err := os.ReadFile(doc)
	require.NoError(t, err)
	assert.Equal(t, "a\nb & c\n", string(rewritten))

	backup, err := os.ReadFile(doc + ".mdscan.bak")
	require.NoError(t, err)
	assert.Equal(t, "a\r\nb &amp; c\r\n", string(backup))
}

func TestIntegration_NormalizeWriteDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := map[string]string{
		"a.md":              "a\r\n",
		"docs/b.markdown":   "\tb\n",
		"docs/clean.md":     "clean\n",
		"notes.txt":         "c\r\n",
		"vendor/dep/d.md":   "d\r\n",
		".hidden/secret.md": "e\r\n",
	}
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	_, err := execute(t, "", "normalize", "--source-only", "--write", "-j", "2", "--exclude", "vendor/**", dir)
	require.NoError(t, err)

	want := map[string]string{
		"a.md":              "a\n",
		"docs/b.markdown":   "    b\n",
		"docs/clean.md":     "clean\n",
		"notes.txt":         "c\r\n",
		"vendor/dep/d.md":   "d\r\n",
		".hidden/secret.md": "e\r\n",
	}
	for rel, content := range want {
		got, err := os.ReadFile(filepath.Join(dir, rel))
		require.NoError(t, err)
		assert.Equal(t, content, string(got), rel)
	}
}

func TestIntegration_NormalizeUsageErrors(t *testing.T) {
	t.Parallel()

	doc := writeDocument(t, "x\n")

	tests := []struct {
		name  string
		args  []string
		stdin string
	}{
		{name: "write with output", args: []string{"normalize", "--write", "-o", "out.md", doc}},
		{name: "backup without write", args: []string{"normalize", "--backup", doc}},
		{name: "write to stdin", args: []string{"normalize", "--write"}, stdin: "x"},
		{name: "write with dash", args: []string{"normalize", "--write", "-"}, stdin: "x"},
		{name: "several files without write", args: []string{"normalize", doc, doc}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := execute(t, testCase.stdin, testCase.args...)
			require.Error(t, err)
			assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeFromError(err))
		})
	}
}

func TestIntegration_MissingInput(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "", "inspect", filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitIOError, cli.ExitCodeFromError(err))
}

func TestIntegration_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := writeConfig(t, ".mdscan.yml", "tab_width: 99\n")

	_, err := execute(t, "x", "--config", cfg, "inspect")
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "tab_width")
}

func TestIntegration_CodePointText(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "codepoint", "65", "0xD800", "U+1F600")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], "U+0041")
	assert.Contains(t, lines[0], "valid")
	assert.Contains(t, lines[1], "U+D800")
	assert.Contains(t, lines[1], "invalid")
	assert.Contains(t, lines[2], "U+1F600")
	assert.Contains(t, lines[2], "D83D DE00")
}

func TestIntegration_CodePointJSON(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "codepoint", "--format", "json", "&#x1F600;", "&#65;", "0x110000", "U+FFFE")
	require.NoError(t, err)

	var doc struct {
		CodePoints []struct {
			Input string   `json:"input"`
			Value int      `json:"value"`
			Valid bool     `json:"valid"`
			UTF16 []uint16 `json:"utf16"`
			Text  string   `json:"text"`
		} `json:"code_points"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.CodePoints, 4)

	emoji := doc.CodePoints[0]
	assert.Equal(t, 0x1F600, emoji.Value)
	assert.True(t, emoji.Valid)
	assert.Equal(t, []uint16{0xD83D, 0xDE00}, emoji.UTF16)
	assert.Equal(t, "\U0001F600", emoji.Text)

	assert.Equal(t, "A", doc.CodePoints[1].Text)

	tooLarge := doc.CodePoints[2]
	assert.False(t, tooLarge.Valid)
	assert.Empty(t, tooLarge.UTF16)
	assert.Equal(t, "\uFFFD", tooLarge.Text)

	assert.False(t, doc.CodePoints[3].Valid)
}

func TestIntegration_CodePointInvalidInput(t *testing.T) {
	t.Parallel()

	for _, arg := range []string{"zz", "U+", "&#x;", "&#65", "0x1G"} {
		_, err := execute(t, "", "codepoint", arg)
		require.Error(t, err, arg)
		assert.ErrorIs(t, err, cli.ErrInvalidUsage, arg)
	}
}

func TestIntegration_Init(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "mdscan.yml")

	_, err := execute(t, "", "init", "-o", target)
	require.NoError(t, err)

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(content), "tab_width: 4")
	assert.Contains(t, string(content), "# mdscan configuration")

	// The generated file loads cleanly.
	_, err = execute(t, "x", "--config", target, "inspect", "--summary")
	require.NoError(t, err)

	_, err = execute(t, "", "init", "-o", target)
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeFromError(err))

	_, err = execute(t, "", "init", "-o", target, "--force")
	require.NoError(t, err)
}

func TestIntegration_InitJSON(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "nested", "mdscan.json")

	_, err := execute(t, "", "init", "--format", "json", "-o", target)
	require.NoError(t, err)

	content, err := os.ReadFile(target)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(content, &decoded))
	assert.EqualValues(t, 4, decoded["tab_width"])
	assert.Equal(t, "replace", decoded["invalid_code_points"])
}

func TestIntegration_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "x", "inspect", "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeFromError(err))
}

func TestIntegration_Help(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "Available Commands:")
	for _, name := range []string{"inspect", "lines", "normalize", "codepoint", "init", "version"} {
		assert.Contains(t, out, name)
	}
}
