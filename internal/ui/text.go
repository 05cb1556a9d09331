package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
)

// Formatter colors text for a terminal, or decorates it with plain
// characters when colors are disabled.
type Formatter struct {
	color  *color.Color
	before string
	after  string
}

func (f Formatter) Sprint(a ...interface{}) string {
	return f.render(fmt.Sprint(a...))
}

func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.render(fmt.Sprintf(format, a...))
}

func (f Formatter) render(text string) string {
	if noColor() {
		return f.before + text + f.after
	}
	return f.color.Sprint(text)
}

var (
	// Flag formats command-line flags such as -k. `backticks` without color.
	Flag = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path formats file paths and stream names.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Success formats success markers.
	Success = Formatter{color.New(color.FgGreen), "", ""}

	// Error formats failure markers.
	Error = Formatter{color.New(color.FgRed), "", ""}

	// Info formats hints.
	Info = Formatter{color.New(color.FgCyan), "", ""}

	// Muted formats secondary details. (parentheses) without color.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)

// SuccessLine renders "✓ msg".
func SuccessLine(msg string) string {
	return Success.Sprint("✓") + " " + msg
}

// FailureLine renders "✗ msg".
func FailureLine(msg string) string {
	return Error.Sprint("✗") + " " + msg
}

// HintLine renders "→ msg".
func HintLine(msg string) string {
	return Info.Sprint("→") + " " + msg
}

// Banner returns the ASCII-art title shown above the help text.
func Banner() string {
	return figure.NewFigure("caesar", "", true).String()
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if !strings.HasSuffix(s, "\n") {
		return s + "\n"
	}
	return s
}

// noColor honors NO_COLOR (https://no-color.org/) and fatih/color's own
// terminal detection.
func noColor() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}
