package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsInteractive returns true if both stdin and stdout are connected to a
// terminal. Use this to gate the mode picker and name prompt so piped
// usage keeps working.
func IsInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// IsStdoutInteractive returns true if stdout is connected to a terminal.
// Styled output is only emitted when this holds.
func IsStdoutInteractive() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}
