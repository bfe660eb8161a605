package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdscan/internal/logging"
	"github.com/yaklabco/mdscan/pkg/config"
	"github.com/yaklabco/mdscan/pkg/fsutil"
)

type initFlags struct {
	force  bool
	format string
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an mdscan configuration file",
		Long: `Write a configuration file holding the default settings, with a short
description of each key, to the current directory.`,
		Example: `  mdscan init
  mdscan init --format json
  mdscan init -o config/mdscan.yml --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing file")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "file format: yaml, json")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "file path (default .mdscan.yml or .mdscan.json)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()
	logger.SetOutput(cmd.ErrOrStderr())

	if flags.format != "yaml" && flags.format != "json" {
		return usageError("invalid format %q: must be yaml or json", flags.format)
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".mdscan.yml"
		if flags.format == "json" {
			outputPath = ".mdscan.json"
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return usageError("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{Format: flags.format})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	if err := fsutil.WriteAtomic(commandContext(cmd), absPath, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'mdscan normalize --help' to see which settings apply where")

	return nil
}
