package configloader

import "github.com/yaklabco/mdscan/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Integers and strings: override overwrites base if non-zero
//   - Pointer booleans: override overwrites base if non-nil
//   - Nil/unset values in override do not override values in base
//
// A file cannot reset indent to 0 once a lower layer set it; pass --indent 0.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.TabWidth != 0 {
		result.TabWidth = override.TabWidth
	}
	if override.Indent != 0 {
		result.Indent = override.Indent
	}
	if override.UnicodeForm != "" {
		result.UnicodeForm = override.UnicodeForm
	}
	if override.InvalidCodePoints != "" {
		result.InvalidCodePoints = override.InvalidCodePoints
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Output != "" {
		result.Output = override.Output
	}

	if override.KeepTrailingNewline != nil {
		keep := *override.KeepTrailingNewline
		result.KeepTrailingNewline = &keep
	}
	if override.EscapeHTML != nil {
		escape := *override.EscapeHTML
		result.EscapeHTML = &escape
	}

	return result
}
