package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/PolarWolf314/caesar/internal/args"
	kerrors "github.com/PolarWolf314/caesar/internal/errors"
	logger "github.com/PolarWolf314/caesar/internal/logging"
	"github.com/PolarWolf314/caesar/internal/ui"
	"github.com/PolarWolf314/caesar/internal/utils"
	"github.com/PolarWolf314/caesar/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	Logger logger.Logger

	// isInteractive decides whether the spinner is drawn. Tests replace it.
	isInteractive = utils.IsStderrTerminal

	CaesarCmd = &cobra.Command{
		Use:   "caesar -k <int> [-i <path>] [-o <path>] [-e | -d]",
		Short: "Encrypt and decrypt text with the Caesar cipher",
		Long: `caesar shifts every ASCII letter of its input by a fixed key.

It reads stdin or a file, and writes stdout or a file. Run 'caesar -h' for
the full list of arguments.`,
		// The argument contract is handled by the args package, which accepts
		// and ignores tokens cobra would reject.
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		Args:               cobra.ArbitraryArgs,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE:               runCaesar,
	}
)

func runCaesar(cmd *cobra.Command, tokens []string) error {
	cfg, err := args.Parse(tokens)
	if err != nil {
		return err
	}

	Logger = logger.Logger{
		Verbose: cfg.Verbose,
		Debug:   cfg.Debug,
		Out:     cmd.ErrOrStderr(),
	}
	Logger.Debugf("Parsed arguments: key=%d mode=%s input=%q output=%q report=%q",
		cfg.Key, cfg.Mode, cfg.InputPath, cfg.OutputPath, cfg.ReportPath)

	showSpinner := cfg.OutputPath != "" && !cfg.Help && !cfg.Version &&
		!cfg.Verbose && !cfg.Debug && isInteractive()
	spinner, cleanup := startSpinner(cmd.ErrOrStderr(), fmt.Sprintf("Running %s...", cfg.Mode), showSpinner)
	defer cleanup()

	result, err := workflows.Execute(cmd.Context(), cfg, workflows.RunOptions{
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Logger: Logger,
	})
	if err != nil {
		return err
	}

	if result.Outcome == workflows.Success && cfg.OutputPath != "" {
		spinner.FinalMSG = successMessage(result)
	}
	return nil
}

// successMessage summarizes a run that wrote to a file.
func successMessage(result *workflows.RunResult) string {
	return ui.SuccessLine(fmt.Sprintf("Wrote %d characters to %s %s",
		result.Characters,
		ui.Path.Sprint(result.Output),
		ui.Muted.Sprintf("%s with key %d from %s", result.Mode, result.Key, result.Input)))
}

// PrintError renders err for the user. Argument errors are followed by the
// help text.
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, ui.FailureLine(err.Error()))

	switch {
	case errors.Is(err, kerrors.ErrInvalidArgs):
		fmt.Fprintln(w)
		fmt.Fprint(w, args.HelpText())
	case errors.Is(err, kerrors.ErrKeyOutOfRange):
		fmt.Fprintln(w, ui.HintLine("Pick a key between 0 and 999999 with "+ui.Flag.Sprint("-k")))
	}
}

// Execute runs CaesarCmd and returns the process exit code.
func Execute() int {
	if err := CaesarCmd.Execute(); err != nil {
		PrintError(CaesarCmd.ErrOrStderr(), err)
		return 1
	}
	return 0
}

// Helper functions for testing

// GetCaesarCmd returns the CaesarCmd for testing.
func GetCaesarCmd() *cobra.Command {
	return CaesarCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	Logger = logger.Logger{}
	isInteractive = utils.IsStderrTerminal
	CaesarCmd.SetArgs(nil)
	CaesarCmd.SetIn(nil)
	CaesarCmd.SetOut(nil)
	CaesarCmd.SetErr(nil)
}
