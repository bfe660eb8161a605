// Package cli provides the Cobra command structure for mdscan.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdscan/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdscan command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdscan",
		Short: "Inspect and normalize Markdown source at the line level",
		Long: `mdscan exposes the low-level layer a Markdown tokenizer is built on.

It builds the per-line index of a document (line offsets and leading
indentation), materializes line ranges with indentation stripped, and runs
the text normalization steps used on inline content: backslash unescaping,
named and numeric character references, Unicode normalization and HTML
escaping.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newLinesCommand())
	rootCmd.AddCommand(newNormalizeCommand())
	rootCmd.AddCommand(newCodePointCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	applyHelpStyles(rootCmd, color, os.Stdout)

	return rootCmd
}
