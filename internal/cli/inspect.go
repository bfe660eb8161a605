package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdscan/internal/logging"
	"github.com/yaklabco/mdscan/internal/ui/pretty"
	"github.com/yaklabco/mdscan/pkg/config"
	"github.com/yaklabco/mdscan/pkg/reporter"
	"github.com/yaklabco/mdscan/pkg/source"
)

type inspectFlags struct {
	format      string
	tabWidth    int
	raw         bool
	summaryOnly bool
	compact     bool
}

func newInspectCommand() *cobra.Command {
	flags := &inspectFlags{}

	cmd := &cobra.Command{
		Use:   "inspect [FILE|-]",
		Short: "Show the line index of a document",
		Long: `Build the line index of a document and print one row per line: its
start and end offsets, the leading indentation already consumed, whether it
is blank, and a preview of its content.

The document is normalized first (CRLF and CR become LF, NUL becomes U+FFFD,
tabs are expanded) unless --raw is given. Reads standard input when FILE is
omitted or "-".`,
		Example: `  mdscan inspect README.md
  mdscan inspect --format json docs/guide.md
  cat notes.md | mdscan inspect --summary`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().IntVar(&flags.tabWidth, "tab-width", source.DefaultTabWidth, "tab stop for normalization")
	cmd.Flags().BoolVar(&flags.raw, "raw", false, "index the input without normalizing it")
	cmd.Flags().BoolVar(&flags.summaryOnly, "summary", false, "print only the one-line summary")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "compact JSON output")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string, flags *inspectFlags) error {
	cliCfg := &config.Config{Format: cliFormat(cmd, flags.format)}
	if cmd.Flags().Changed("tab-width") {
		cliCfg.TabWidth = flags.tabWidth
	}

	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	in, err := readInput(cmd, firstArg(args))
	if err != nil {
		return err
	}

	src := string(in.Content)
	if !flags.raw {
		src = source.Normalize(src, cfg.TabWidth)
	}

	idx := source.Build(src)
	if err := idx.Validate(); err != nil {
		return fmt.Errorf("build line index: %w", err)
	}

	logging.FromContext(commandContext(cmd)).Debug("built line index",
		logging.FieldPath, in.Path,
		logging.FieldLines, idx.LineCount(),
	)

	rows := pretty.RowsFromIndex(idx)
	report := &reporter.IndexReport{
		Path:    in.Path,
		Summary: pretty.SummarizeRows(in.Path, len(src), rows),
		Lines:   rows,
	}

	rep, err := newReporter(cmd, cfg.Format, reporter.Options{
		ShowTable:   !flags.summaryOnly,
		ShowSummary: true,
		Compact:     flags.compact,
	})
	if err != nil {
		return err
	}

	return rep.ReportIndex(commandContext(cmd), report)
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
