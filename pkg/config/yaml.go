package config

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlIndent is the indentation of generated YAML.
const yamlIndent = 2

// ToYAML serializes the configuration as YAML.
func (c *Config) ToYAML() ([]byte, error) {
	return c.ToYAMLWithHeader("")
}

// ToYAMLWithHeader serializes the configuration after a comment header,
// separated from the settings by a blank line.
func (c *Config) ToYAMLWithHeader(header string) ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	if header = strings.TrimRight(header, "\n"); header != "" {
		buf.WriteString(header)
		buf.WriteString("\n\n")
	}

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(yamlIndent)
	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes. JSON is accepted too.
// Fields absent from data keep their zero values.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c
	if c.KeepTrailingNewline != nil {
		clone.KeepTrailingNewline = boolPtr(*c.KeepTrailingNewline)
	}
	if c.EscapeHTML != nil {
		clone.EscapeHTML = boolPtr(*c.EscapeHTML)
	}

	return &clone
}
