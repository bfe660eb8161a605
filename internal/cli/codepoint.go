package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdscan/internal/ui/pretty"
	"github.com/yaklabco/mdscan/pkg/config"
	"github.com/yaklabco/mdscan/pkg/reporter"
	"github.com/yaklabco/mdscan/pkg/textnorm"
)

func newCodePointCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "codepoint VALUE...",
		Aliases: []string{"cp"},
		Short:   "Check code points against the numeric reference rules",
		Long: `Report, for each value, whether a numeric character reference to it may be
emitted, its UTF-16 code units and the text a reference resolves to.

Values may be decimal (65), hexadecimal (0x41), U+ notation (U+0041) or a
numeric character reference (&#65; or &#x41;).`,
		Example: `  mdscan codepoint U+1F600 0xD800 65
  mdscan codepoint '&#x110000;' --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCodePoint(cmd, args, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

func runCodePoint(cmd *cobra.Command, args []string, format string) error {
	cfg, err := loadConfig(cmd, &config.Config{Format: cliFormat(cmd, format)})
	if err != nil {
		return err
	}

	rows := make([]pretty.CodePointRow, 0, len(args))
	for _, arg := range args {
		value, err := parseCodePoint(arg)
		if err != nil {
			return err
		}
		rows = append(rows, describeCodePoint(arg, value))
	}

	rep, err := newReporter(cmd, cfg.Format, reporter.Options{})
	if err != nil {
		return err
	}

	return rep.ReportCodePoints(commandContext(cmd), rows)
}

// parseCodePoint accepts decimal, 0x hex, U+ hex and &#...; references.
func parseCodePoint(arg string) (int, error) {
	var (
		digits string
		base   = 10
	)

	switch {
	case strings.HasPrefix(arg, "&#"):
		value, n, ok := textnorm.DecodeNumericReference(arg)
		if !ok || n != len(arg) {
			return 0, usageError("malformed character reference %q", arg)
		}
		return value, nil
	case strings.HasPrefix(arg, "U+"), strings.HasPrefix(arg, "u+"):
		digits, base = arg[2:], 16
	case strings.HasPrefix(arg, "0x"), strings.HasPrefix(arg, "0X"):
		digits, base = arg[2:], 16
	default:
		digits = arg
	}

	value, err := strconv.ParseInt(digits, base, 32)
	if err != nil || digits == "" || digits[0] == '+' {
		return 0, usageError("invalid code point %q", arg)
	}

	return int(value), nil
}

func describeCodePoint(input string, value int) pretty.CodePointRow {
	row := pretty.CodePointRow{
		Input: input,
		Value: value,
		Valid: textnorm.IsValidCodePoint(value),
		Text:  "\uFFFD",
	}

	if value >= 0 && value <= textnorm.MaxCodePoint {
		row.UTF16 = textnorm.EncodeUTF16(value)
	}
	if row.Valid {
		row.Text = textnorm.FromCodePoint(value)
	}

	return row
}
