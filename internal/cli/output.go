package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	successStyle = color.New(color.FgGreen)
	infoStyle    = color.New(color.FgCyan)
)

// successf prints a styled status line unless --quiet is set.
func successf(format string, a ...any) {
	if rootQuiet {
		return
	}
	fmt.Println(successStyle.Sprintf(format, a...))
}

// infof prints a styled informational line unless --quiet is set.
func infof(format string, a ...any) {
	if rootQuiet {
		return
	}
	fmt.Println(infoStyle.Sprintf(format, a...))
}

// stdoutIsTerminal reports whether stdout is attached to a terminal.
// Swatch previews are suppressed when output is piped.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
