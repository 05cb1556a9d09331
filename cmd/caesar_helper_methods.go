package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/PolarWolf314/caesar/internal/ui"
	"github.com/briandowns/spinner"
)

// startSpinner creates a spinner writing to w and starts it when enabled.
// Returns the spinner and a function that should be deferred to clean up.
//
// spinner.FinalMSG values do not need trailing newlines; the cleanup function
// adds one. The final message is only printed when the spinner was running,
// so piped or scripted runs stay silent on stderr.
func startSpinner(w io.Writer, message string, enabled bool) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if enabled {
		Logger.Debugf("Starting spinner with message: %s", message)
		s.Start()
	}

	cleanup := func() {
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Cleared so s.Stop() doesn't print it a second time.
			s.FinalMSG = ""
		}

		if !enabled {
			return
		}
		s.Stop()
		if finalMsg != "" {
			fmt.Fprint(w, finalMsg)
		}
	}

	return s, cleanup
}
