package cli

import (
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdscan/internal/ui/pretty"
)

// helpHeadings are the section titles of Cobra's default usage template.
//
//nolint:gochecknoglobals // Read-only lookup table.
var helpHeadings = []string{
	"Usage:",
	"Aliases:",
	"Examples:",
	"Available Commands:",
	"Additional Commands:",
	"Global Flags:",
	"Flags:",
	"Additional help topics:",
}

// registerHelpFuncs guards cobra's process-wide template function map.
//
//nolint:gochecknoglobals // cobra template functions are global
var registerHelpFuncs sync.Once

// applyHelpStyles colors section headings and the command path in help
// output. The color decision is made once per process, for the first writer.
func applyHelpStyles(cmd *cobra.Command, colorMode string, writer io.Writer) {
	registerHelpFuncs.Do(func() {
		styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, writer))

		cobra.AddTemplateFunc("styleHeading", func(s string) string { return styles.Heading.Render(s) })
		cobra.AddTemplateFunc("styleCommand", func(s string) string { return styles.Command.Render(s) })
	})

	cmd.SetUsageTemplate(styleUsageTemplate(cmd.UsageTemplate()))
}

// styleUsageTemplate wraps the headings and use line of a usage template in
// style calls.
func styleUsageTemplate(tmpl string) string {
	pairs := make([]string, 0, 2*len(helpHeadings)+2)
	for _, heading := range helpHeadings {
		pairs = append(pairs, "\n"+heading, "\n{{styleHeading \""+heading+"\"}}")
	}
	pairs = append(pairs, "{{.UseLine}}", "{{styleCommand .UseLine}}")

	// The first heading opens the template without a preceding newline.
	tmpl = strings.Replace(tmpl, "Usage:", "\nUsage:", 1)
	styled := strings.NewReplacer(pairs...).Replace(tmpl)
	return strings.TrimPrefix(styled, "\n")
}
