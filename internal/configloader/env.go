package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/yaklabco/mdscan/pkg/config"
)

// envVarPrefix is the prefix for all mdscan environment variables.
const envVarPrefix = "MDSCAN_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
)

// envMapping defines an environment variable to config field mapping.
type envMapping struct {
	field       string
	typ         envFieldType
	description string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"TAB_WIDTH":             {field: "tab_width", typ: envTypeInt, description: "Tab stop used when normalizing source"},
	"INDENT":                {field: "indent", typ: envTypeInt, description: "Default indentation budget for lines"},
	"KEEP_TRAILING_NEWLINE": {field: "keep_trailing_newline", typ: envTypeBool, description: "Keep the last line terminator: true or false"},
	"ESCAPE_HTML":           {field: "escape_html", typ: envTypeBool, description: "Escape normalized text for HTML: true or false"},
	"UNICODE_FORM":          {field: "unicode_form", typ: envTypeString, description: "Unicode normalization form: none or nfc"},
	"INVALID_CODE_POINTS":   {field: "invalid_code_points", typ: envTypeString, description: "Invalid numeric references: replace or keep"},
	"FORMAT":                {field: "format", typ: envTypeString, description: "Output format: text or json"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with MDSCAN_ (e.g., MDSCAN_TAB_WIDTH).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "unicode_form":
		cfg.UnicodeForm = value
	case "invalid_code_points":
		cfg.InvalidCodePoints = value
	case "format":
		cfg.Format = config.OutputFormat(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "keep_trailing_newline":
		cfg.KeepTrailingNewline = &value
	case "escape_html":
		cfg.EscapeHTML = &value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "tab_width":
		cfg.TabWidth = value
	case "indent":
		cfg.Indent = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns the supported environment variables, sorted by name,
// paired with their descriptions.
func ListEnvVars() [][2]string {
	vars := make([][2]string, 0, len(envMappings))
	for suffix, mapping := range envMappings {
		vars = append(vars, [2]string{envVarPrefix + suffix, mapping.description})
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i][0] < vars[j][0] })
	return vars
}
