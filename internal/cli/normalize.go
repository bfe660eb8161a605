package cli

import (
	"context"
	"errors"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdscan/internal/logging"
	"github.com/yaklabco/mdscan/pkg/config"
	"github.com/yaklabco/mdscan/pkg/fsutil"
	"github.com/yaklabco/mdscan/pkg/runner"
	"github.com/yaklabco/mdscan/pkg/source"
	"github.com/yaklabco/mdscan/pkg/textnorm"
)

type normalizeFlags struct {
	sourceOnly        bool
	escape            bool
	unescape          bool
	entities          bool
	nfc               bool
	invalidCodePoints string
	tabWidth          int
	output            string
	write             bool
	backup            bool
	jobs              int
	exclude           []string
}

func newNormalizeCommand() *cobra.Command {
	flags := &normalizeFlags{}

	cmd := &cobra.Command{
		Use:   "normalize [FILE|-] | --write PATH...",
		Short: "Run the text normalization pipeline",
		Long: `Normalize a document and print the result.

Source normalization always runs first: CRLF and CR become LF, NUL becomes
U+FFFD and tabs are expanded. The text pipeline then removes backslash
escapes and resolves named and numeric character references in a single
pass, optionally applies Unicode NFC, and finally escapes &, <, > and " for
HTML. Each step can be switched off; --source-only skips the text pipeline.

With --write, files are rewritten in place. Directories are searched for
.md and .markdown files, which are processed concurrently. Each write is
atomic, skipped when nothing changed, and refused if the file changed while
mdscan ran.`,
		Example: `  echo '\*a\* &amp; &#x1F600;' | mdscan normalize
  mdscan normalize --escape=false --nfc notes.md -o notes.txt
  mdscan normalize --source-only --write --backup docs/ --exclude 'vendor/**'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNormalize(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.sourceOnly, "source-only", false, "only normalize line endings, NUL and tabs")
	cmd.Flags().BoolVar(&flags.escape, "escape", true, "escape HTML special characters")
	cmd.Flags().BoolVar(&flags.unescape, "unescape", true, "remove Markdown backslash escapes")
	cmd.Flags().BoolVar(&flags.entities, "entities", true, "resolve named and numeric character references")
	cmd.Flags().BoolVar(&flags.nfc, "nfc", false, "apply Unicode normalization form C")
	cmd.Flags().StringVar(&flags.invalidCodePoints, "invalid-code-points", "replace",
		"invalid numeric references: replace, keep")
	cmd.Flags().IntVar(&flags.tabWidth, "tab-width", source.DefaultTabWidth, "tab stop for normalization")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the result to a file instead of stdout")
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "rewrite files in place")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "keep a "+fsutil.BackupSuffix+" copy when rewriting")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "concurrent files with --write (0 = number of CPUs)")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob of paths to skip with --write (repeatable)")

	return cmd
}

func runNormalize(cmd *cobra.Command, args []string, flags *normalizeFlags) error {
	cliCfg := &config.Config{Output: flags.output}
	if cmd.Flags().Changed("escape") {
		cliCfg.EscapeHTML = &flags.escape
	}
	if flags.nfc {
		cliCfg.UnicodeForm = string(textnorm.FormNFC)
	}
	if cmd.Flags().Changed("invalid-code-points") {
		cliCfg.InvalidCodePoints = flags.invalidCodePoints
	}
	if cmd.Flags().Changed("tab-width") {
		cliCfg.TabWidth = flags.tabWidth
	}

	switch {
	case flags.write && cliCfg.Output != "":
		return usageError("--write and --output are mutually exclusive")
	case flags.backup && !flags.write:
		return usageError("--backup requires --write")
	case flags.write && (len(args) == 0 || slices.Contains(args, stdinName)):
		return usageError("--write needs FILE or DIR arguments")
	case !flags.write && len(args) > 1:
		return usageError("normalizing more than one file requires --write")
	}

	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	opts, err := cfg.NormalizerOptions()
	if err != nil {
		return errors.Join(ErrConfig, err)
	}
	opts.Unescape = flags.unescape
	opts.References = flags.entities

	pipeline := &normalizePipeline{
		tabWidth:   cfg.TabWidth,
		sourceOnly: flags.sourceOnly,
		text:       textnorm.New(opts),
	}

	if flags.write {
		return normalizeInPlace(cmd, args, flags, pipeline)
	}

	in, err := readInput(cmd, firstArg(args))
	if err != nil {
		return err
	}

	return writeOutput(cmd, cfg.Output, pipeline.apply(in.Content))
}

// normalizePipeline is source normalization followed by the text steps.
type normalizePipeline struct {
	tabWidth   int
	sourceOnly bool
	text       *textnorm.Normalizer
}

func (p *normalizePipeline) apply(content []byte) []byte {
	text := source.Normalize(string(content), p.tabWidth)
	if !p.sourceOnly {
		text = p.text.Normalize(text)
	}
	return []byte(text)
}

func normalizeInPlace(cmd *cobra.Command, paths []string, flags *normalizeFlags, pipeline *normalizePipeline) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)
	rewriteOpts := fsutil.RewriteOptions{Backup: flags.backup}

	batch := runner.New(func(ctx context.Context, path string) (bool, error) {
		ctx = logging.WithFields(ctx, logging.FieldPath, path)

		content, info, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			return false, err
		}

		changed, err := fsutil.Rewrite(ctx, info, content, pipeline.apply(content), rewriteOpts)
		logging.FromContext(ctx).Debug("processed file", logging.FieldBytes, len(content), logging.FieldChanged, changed)
		return changed, err
	})

	result, err := batch.Run(ctx, runner.Options{
		Paths:        paths,
		ExcludeGlobs: flags.exclude,
		Jobs:         flags.jobs,
	})
	if err != nil {
		return err
	}

	for _, outcome := range result.Files {
		switch {
		case outcome.Skipped():
			logger.Warn("file changed during normalization; skipped", logging.FieldPath, outcome.Path)
		case outcome.Error != nil:
			logger.Error("normalize failed", logging.FieldPath, outcome.Path, logging.FieldError, outcome.Error)
		case outcome.Changed:
			logger.Info("normalized file", logging.FieldPath, outcome.Path, logging.FieldBackup, flags.backup)
		default:
			logger.Debug("already normalized", logging.FieldPath, outcome.Path)
		}
	}

	stats := result.Stats
	logger.Info("normalize complete",
		logging.FieldFiles, stats.FilesDiscovered,
		logging.FieldModified, stats.FilesModified,
		logging.FieldSkipped, stats.FilesSkipped,
		logging.FieldErrored, stats.FilesErrored,
	)

	return result.Err()
}
