package config

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Format is the output format: "yaml" or "json".
	Format string
}

// templateHeader introduces generated YAML configuration files.
const templateHeader = `# mdscan configuration
#
# tab_width              tab stop used when normalizing source text
# indent                 default indentation budget for "mdscan lines"
# keep_trailing_newline  keep the last line terminator in "mdscan lines"
# escape_html            escape normalized text for HTML output
# unicode_form           none or nfc
# invalid_code_points    replace (U+FFFD) or keep numeric references as written`

// GenerateTemplate creates a configuration file holding the defaults.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	defaults := NewConfig()

	switch opts.Format {
	case "", "yaml":
		return defaults.ToYAMLWithHeader(templateHeader)
	case "json":
		var buf bytes.Buffer
		encoder := json.NewEncoder(&buf)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(defaults); err != nil {
			return nil, fmt.Errorf("encode config: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("invalid template format %q: must be yaml or json", opts.Format)
	}
}
