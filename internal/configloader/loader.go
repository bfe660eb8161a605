// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical merging,
// environment variable support and validation.
package configloader

import (
	"context"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/mdscan/pkg/config"
	"github.com/yaklabco/mdscan/pkg/fsutil"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (MDSCAN_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.mdscan.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/mdscan/config.yaml)
//  6. System config (/etc/mdscan/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	cfg := config.NewConfig()

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}

	layers := []struct {
		name   string
		path   string
		ignore bool
	}{
		{"system", paths.System, opts.IgnoreSystemConfig},
		{"user", paths.User, opts.IgnoreUserConfig},
		{"project", paths.Project, opts.IgnoreProjectConfig},
		{"explicit", paths.Explicit, false},
	}

	for _, layer := range layers {
		if layer.ignore || layer.path == "" {
			continue
		}

		layerCfg, unknown, err := loadConfigFile(ctx, layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}

		validation := ValidateWithFile(layerCfg, layer.path)
		if !validation.Valid() {
			return nil, &validation.Errors[0]
		}
		for _, key := range unknown {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s: unknown key %q; it will be ignored", layer.path, key))
		}
		for _, w := range validation.Warnings {
			result.Warnings = append(result.Warnings, w.Error())
		}

		cfg = merge(cfg, layerCfg)
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}

	result.Config = cfg
	return result, nil
}

// knownKeys are the top-level keys a config file may set.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownKeys = map[string]bool{
	"tab_width":             true,
	"indent":                true,
	"keep_trailing_newline": true,
	"escape_html":           true,
	"unicode_form":          true,
	"invalid_code_points":   true,
}

// loadConfigFile loads a configuration from a YAML (or JSON) file and
// reports any top-level keys it does not recognize.
func loadConfigFile(ctx context.Context, path string) (*config.Config, []string, error) {
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, nil, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, nil, fmt.Errorf("parse yaml: %w", err)
	}

	var unknown []string
	for key := range raw {
		if !knownKeys[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)

	return cfg, unknown, nil
}
