package pretty

import (
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// DefaultTermWidth is used when the output width cannot be determined.
const DefaultTermWidth = 100

// TerminalWidth returns the column width of writer when it is a terminal,
// else $COLUMNS, else DefaultTermWidth.
func TerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if width, _, err := term.GetSize(fd); err == nil && width > 0 {
				return width
			}
		}
	}

	if value := os.Getenv("COLUMNS"); value != "" {
		if width, err := strconv.Atoi(value); err == nil && width > 0 {
			return width
		}
	}

	return DefaultTermWidth
}
