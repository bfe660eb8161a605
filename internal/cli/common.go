package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdscan/internal/configloader"
	"github.com/yaklabco/mdscan/internal/logging"
	"github.com/yaklabco/mdscan/pkg/config"
	"github.com/yaklabco/mdscan/pkg/fsutil"
	"github.com/yaklabco/mdscan/pkg/reporter"
)

// stdinName is the argument that selects standard input.
const stdinName = "-"

// input is a document read from a file or standard input.
type input struct {
	// Path is the file path, or "" for standard input.
	Path    string
	Content []byte

	// Info is the read snapshot; nil for standard input.
	Info *fsutil.FileInfo
}

// loadConfig resolves the effective configuration for cmd, with cliCfg
// holding the values of flags the user set explicitly.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, error) {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	if cliCfg.Format != "" && !configloader.IsValidFormat(cliCfg.Format) {
		return nil, usageError("invalid format %q: must be text or json", cliCfg.Format)
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(ErrConfig, err)
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldConfigFiles, result.LoadedFrom)
	}

	cfg := result.Config
	logger.Debug("configuration resolved",
		logging.FieldTabWidth, cfg.TabWidth,
		logging.FieldIndent, cfg.Indent,
		logging.FieldForm, cfg.UnicodeForm,
		logging.FieldPolicy, cfg.InvalidCodePoints,
	)

	return cfg, nil
}

// readInput reads the named file, or standard input for "" and "-".
func readInput(cmd *cobra.Command, name string) (*input, error) {
	ctx := commandContext(cmd)

	if name == "" || name == stdinName {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return &input{Content: content}, nil
	}

	content, info, err := fsutil.ReadFile(ctx, name)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug("read input", logging.FieldPath, name, logging.FieldBytes, len(content))
	return &input{Path: name, Content: content, Info: info}, nil
}

// writeOutput writes content atomically to outputPath, or to the command's
// stdout when outputPath is empty.
func writeOutput(cmd *cobra.Command, outputPath string, content []byte) error {
	if outputPath == "" {
		if _, err := cmd.OutOrStdout().Write(content); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}

	ctx := commandContext(cmd)
	if err := fsutil.WriteAtomic(ctx, outputPath, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	logging.FromContext(ctx).Debug("wrote output", logging.FieldOutput, outputPath, logging.FieldBytes, len(content))
	return nil
}

// newReporter builds a reporter writing to the command's stdout.
func newReporter(cmd *cobra.Command, format config.OutputFormat, opts reporter.Options) (reporter.Reporter, error) {
	parsed, err := reporter.ParseFormat(string(format))
	if err != nil {
		return nil, errors.Join(ErrInvalidUsage, err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	opts.Writer = cmd.OutOrStdout()
	opts.Format = parsed
	opts.Color = colorMode

	return reporter.New(opts)
}

// cliFormat returns the --format flag value when the user set it.
func cliFormat(cmd *cobra.Command, value string) config.OutputFormat {
	if cmd.Flags().Changed("format") {
		return config.OutputFormat(value)
	}
	return ""
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// usageError wraps a message as an invalid-usage error.
func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidUsage, fmt.Sprintf(format, args...))
}

