// Package workflows orchestrates a caesar run.
//
// A run parses the command line, resolves where the text comes from and
// where it goes, and calls the cipher in between. The cmd package stays a
// thin layer around it that:
//   - builds the logger and spinner
//   - calls Execute
//   - renders errors and picks the exit code
//
// # Outcomes
//
// Help and version requests are not errors. Run reports them through the
// Outcome field of RunResult:
//
//	result, err := workflows.Run(ctx, os.Args[1:], opts)
//	switch {
//	case err != nil:
//	    // result.Outcome == workflows.Failure
//	case result.Outcome == workflows.HelpRequested:
//	    // help text already written to opts.Stdout
//	}
//
// # Error Handling
//
// Errors wrap sentinels from the internal/errors package, so callers can
// use errors.Is() to tell argument, key and I/O failures apart.
package workflows
