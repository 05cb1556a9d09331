// Package ui provides semantic text formatting for CLI output.
//
// Formatters render with colors when the terminal supports them. When
// NO_COLOR is set or the terminal has no color support, some formatters fall
// back to text decorations instead:
//   - Flag: `backticks`
//   - Muted: (parentheses)
//   - Others: no decoration
//
// Line helpers prefix a message with a status marker:
//
//	ui.SuccessLine("Wrote " + ui.Path.Sprint("out.txt")) // ✓ Wrote out.txt
//	ui.FailureLine(err.Error())                          // ✗ key 7 is ...
package ui
