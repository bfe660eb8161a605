package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdscan/pkg/config"
	"github.com/yaklabco/mdscan/pkg/textnorm"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "tab_width").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Line is the line number in the config file (if known).
	Line int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.FilePath, e.Line))
		} else {
			parts = append(parts, e.FilePath)
		}
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown fields).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// maxTabWidth bounds tab_width; wider stops are almost certainly typos.
const maxTabWidth = 32

// Validate checks a configuration for errors and warnings.
// Zero values mean "unset" and are not errors.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	if cfg.TabWidth < 0 || cfg.TabWidth > maxTabWidth {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "tab_width",
			Value:   cfg.TabWidth,
			Message: fmt.Sprintf("tab_width must be between 1 and %d", maxTabWidth),
		})
	}

	if cfg.Indent < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "indent",
			Value:   cfg.Indent,
			Message: "indent must be >= 0",
		})
	}

	if !IsValidUnicodeForm(cfg.UnicodeForm) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "unicode_form",
			Value:   cfg.UnicodeForm,
			Message: fmt.Sprintf("invalid unicode form %q; must be one of: none, nfc", cfg.UnicodeForm),
		})
	}

	if !IsValidInvalidPolicy(cfg.InvalidCodePoints) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "invalid_code_points",
			Value:   cfg.InvalidCodePoints,
			Message: fmt.Sprintf("invalid policy %q; must be one of: replace, keep", cfg.InvalidCodePoints),
		})
	}

	if cfg.Format != "" && !IsValidFormat(cfg.Format) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, json", cfg.Format),
		})
	}

	return result
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// IsValidUnicodeForm returns true if the form is empty, none or nfc.
func IsValidUnicodeForm(form string) bool {
	return textnorm.UnicodeForm(form).IsValid()
}

// IsValidInvalidPolicy returns true if the policy is empty, replace or keep.
func IsValidInvalidPolicy(policy string) bool {
	return policy == "" || textnorm.InvalidPolicy(policy).IsValid()
}

// IsValidFormat returns true if the format is valid.
func IsValidFormat(f config.OutputFormat) bool {
	return f.IsValid()
}
