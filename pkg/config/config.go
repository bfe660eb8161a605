// Package config defines core configuration types for mdscan.
// These types are pure data structures; loading and merging live in
// internal/configloader.
package config

import (
	"fmt"

	"github.com/yaklabco/mdscan/pkg/source"
	"github.com/yaklabco/mdscan/pkg/textnorm"
)

// OutputFormat specifies the output format of inspection commands.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for mdscan.
type Config struct {
	// TabWidth is the tab stop used when normalizing source text.
	TabWidth int `yaml:"tab_width" json:"tab_width"`

	// Indent is the default indentation budget when materializing lines.
	Indent int `yaml:"indent" json:"indent"`

	// KeepTrailingNewline keeps the terminator of the last materialized line.
	KeepTrailingNewline *bool `yaml:"keep_trailing_newline,omitempty" json:"keep_trailing_newline,omitempty"`

	// EscapeHTML escapes normalized text for HTML output.
	EscapeHTML *bool `yaml:"escape_html,omitempty" json:"escape_html,omitempty"`

	// UnicodeForm is "none" or "nfc".
	UnicodeForm string `yaml:"unicode_form" json:"unicode_form"`

	// InvalidCodePoints is "replace" or "keep".
	InvalidCodePoints string `yaml:"invalid_code_points" json:"invalid_code_points"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-" json:"-"`

	// Output is a file to write results to instead of stdout.
	Output string `yaml:"-" json:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		TabWidth:            source.DefaultTabWidth,
		Indent:              0,
		KeepTrailingNewline: boolPtr(false),
		EscapeHTML:          boolPtr(true),
		UnicodeForm:         string(textnorm.FormNone),
		InvalidCodePoints:   string(textnorm.PolicyReplace),
		Format:              FormatText,
	}
}

// KeepTrailingNewlineEnabled reports the effective keep_trailing_newline value.
func (c *Config) KeepTrailingNewlineEnabled() bool {
	return c.KeepTrailingNewline != nil && *c.KeepTrailingNewline
}

// EscapeHTMLEnabled reports the effective escape_html value (default true).
func (c *Config) EscapeHTMLEnabled() bool {
	return c.EscapeHTML == nil || *c.EscapeHTML
}

// NormalizerOptions converts the text settings to textnorm options.
// Unescaping and reference resolution are always enabled.
func (c *Config) NormalizerOptions() (textnorm.Options, error) {
	policy, err := textnorm.ParseInvalidPolicy(c.InvalidCodePoints)
	if err != nil {
		return textnorm.Options{}, err
	}

	form := textnorm.UnicodeForm(c.UnicodeForm)
	if !form.IsValid() {
		return textnorm.Options{}, fmt.Errorf("unknown unicode form %q (expected none or nfc)", c.UnicodeForm)
	}

	return textnorm.Options{
		Unescape:          true,
		References:        true,
		InvalidCodePoints: policy,
		Form:              form,
		EscapeHTML:        c.EscapeHTMLEnabled(),
	}, nil
}

func boolPtr(b bool) *bool {
	return &b
}
