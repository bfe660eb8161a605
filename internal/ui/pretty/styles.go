// Package pretty renders mdscan's human-readable output with Lipgloss:
// the line index table, its summary and code point reports.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Table styles
	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style
	TableLegend    lipgloss.Style
	LineNumber     lipgloss.Style
	Offset         lipgloss.Style
	Indent         lipgloss.Style
	BlankRow       lipgloss.Style
	Whitespace     lipgloss.Style

	// Code point styles
	Valid   lipgloss.Style
	Invalid lipgloss.Style
	Units   lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Help styles
	Heading lipgloss.Style
	Command lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

func newColorStyles() *Styles {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	return &Styles{
		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableSeparator: dim,
		TableLegend:    dim.Italic(true),
		LineNumber:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Offset:         dim,
		Indent:         lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		BlankRow:       dim,
		Whitespace:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true),

		Valid:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Invalid: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Units:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Heading: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Command: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),

		Dim:  dim,
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		TableHeader:    plain,
		TableSeparator: plain,
		TableLegend:    plain,
		LineNumber:     plain,
		Offset:         plain,
		Indent:         plain,
		BlankRow:       plain,
		Whitespace:     plain,
		Valid:          plain,
		Invalid:        plain,
		Units:          plain,
		SummaryTitle:   plain,
		SummaryValue:   plain,
		Success:        plain,
		Failure:        plain,
		Heading:        plain,
		Command:        plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
