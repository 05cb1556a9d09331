package utils

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal returns true if f is connected to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// IsStderrTerminal returns true if stderr is a terminal. Progress output is
// only worth drawing when someone is watching.
func IsStderrTerminal() bool {
	return IsTerminal(os.Stderr)
}
