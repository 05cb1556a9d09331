package workflows

import (
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/PolarWolf314/caesar/internal/args"
	"github.com/PolarWolf314/caesar/internal/caesar"
	kerrors "github.com/PolarWolf314/caesar/internal/errors"
	logger "github.com/PolarWolf314/caesar/internal/logging"
	"github.com/PolarWolf314/caesar/internal/report"
	"github.com/PolarWolf314/caesar/internal/ui"
	"github.com/PolarWolf314/caesar/internal/utils"
)

const (
	stdinName  = "stdin"
	stdoutName = "stdout"
)

// Outcome tells the caller how a run ended.
type Outcome int

const (
	// Success means the transformed text was written.
	Success Outcome = iota
	// HelpRequested means -h was given and the help text was written.
	HelpRequested
	// VersionRequested means -v was given and the version was written.
	VersionRequested
	// Failure means the run stopped with an error.
	Failure
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case HelpRequested:
		return "help"
	case VersionRequested:
		return "version"
	case Failure:
		return "failure"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// RunOptions holds the streams and logger a run works with.
type RunOptions struct {
	// Stdin is read when no input path is configured.
	Stdin io.Reader

	// Stdout receives the result when no output path is configured, as well
	// as the help and version text.
	Stdout io.Writer

	// Logger receives progress messages. The zero value logs to stderr.
	Logger logger.Logger
}

// RunResult describes a finished run.
type RunResult struct {
	Outcome Outcome

	Mode caesar.Mode
	Key  int

	// Input and Output name the file paths used, or "stdin"/"stdout".
	Input  string
	Output string

	// Characters counts the characters read. Letters counts the ones rotated.
	Characters int
	Letters    int

	// ReportPath is set when a report was saved.
	ReportPath string
}

// Run parses tokens and executes the resulting configuration.
//
// The returned result is never nil. When err is non-nil its Outcome is
// Failure. Parse errors match ErrInvalidArgs, key errors ErrKeyOutOfRange,
// and file or stream errors ErrInputRead or ErrOutputWrite.
func Run(ctx context.Context, tokens []string, opts RunOptions) (*RunResult, error) {
	cfg, err := args.Parse(tokens)
	if err != nil {
		return &RunResult{Outcome: Failure}, err
	}
	return Execute(ctx, cfg, opts)
}

// Execute runs an already parsed configuration: it resolves the input,
// applies the cipher and writes the output. Nothing is written to the output
// sink unless the transform succeeded.
func Execute(ctx context.Context, cfg args.Config, opts RunOptions) (*RunResult, error) {
	log := opts.Logger

	if cfg.Help {
		log.Debugf("Help requested")
		if err := writeStdout(log, opts.Stdout, ui.Banner()+"\n"+args.HelpText()); err != nil {
			return &RunResult{Outcome: Failure}, err
		}
		return &RunResult{Outcome: HelpRequested}, nil
	}

	if cfg.Version {
		log.Debugf("Version requested")
		if err := writeStdout(log, opts.Stdout, args.VersionText()); err != nil {
			return &RunResult{Outcome: Failure}, err
		}
		return &RunResult{Outcome: VersionRequested}, nil
	}

	if err := ctx.Err(); err != nil {
		return &RunResult{Outcome: Failure}, err
	}

	result := &RunResult{
		Outcome: Failure,
		Mode:    cfg.Mode,
		Key:     cfg.Key,
		Input:   utils.SourceName(cfg.InputPath, stdinName),
		Output:  utils.SourceName(cfg.OutputPath, stdoutName),
	}

	log.Debugf("Reading input from %s", result.Input)
	input, err := readInput(cfg.InputPath, opts.Stdin)
	if err != nil {
		log.Errorf("Reading %s failed: %v", result.Input, err)
		return result, err
	}
	result.Characters = utf8.RuneCountInString(input)
	result.Letters = caesar.CountLetters(input)
	log.Infof("Read %d characters from %s", result.Characters, result.Input)

	log.Debugf("Running %s with key %d", cfg.Mode, cfg.Key)
	output, err := caesar.Transform(input, cfg.Key, cfg.Mode)
	if err != nil {
		log.Errorf("Transform failed: %v", err)
		return result, err
	}

	log.Debugf("Writing output to %s", result.Output)
	if err := writeOutput(log, cfg.OutputPath, output, opts.Stdout); err != nil {
		return result, err
	}
	log.Infof("Wrote %d characters to %s", result.Characters, result.Output)
	result.Outcome = Success

	if cfg.ReportPath != "" {
		if err := saveReport(cfg.ReportPath, result); err != nil {
			log.WarnfAlways("Could not save report to %s: %v", cfg.ReportPath, err)
		} else {
			result.ReportPath = cfg.ReportPath
			log.Infof("Saved report to %s", cfg.ReportPath)
		}
	}

	return result, nil
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" {
		input, err := utils.ReadAllString(stdin)
		if err != nil {
			return "", fmt.Errorf("%w from %s: %w", kerrors.ErrInputRead, stdinName, err)
		}
		return input, nil
	}

	input, err := utils.ReadFileString(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", kerrors.ErrInputRead, err)
	}
	return input, nil
}

func writeOutput(log logger.Logger, path, output string, stdout io.Writer) error {
	if path == "" {
		return writeStdout(log, stdout, output)
	}

	if err := utils.WriteFileString(path, output); err != nil {
		return log.ErrorfAndReturn("%w: %w", kerrors.ErrOutputWrite, err)
	}
	return nil
}

// writeStdout writes text to the stdout sink of a run. A nil sink is
// reported as an error.
func writeStdout(log logger.Logger, stdout io.Writer, text string) error {
	if stdout == nil {
		return log.ErrorfAndReturn("%w to %s: no writer provided", kerrors.ErrOutputWrite, stdoutName)
	}
	if _, err := io.WriteString(stdout, text); err != nil {
		return log.ErrorfAndReturn("%w to %s: %w", kerrors.ErrOutputWrite, stdoutName, err)
	}
	return nil
}

func saveReport(path string, result *RunResult) error {
	r := report.New()
	r.Version = args.Version
	r.Mode = result.Mode.String()
	r.Key = result.Key
	r.Input = result.Input
	r.Output = result.Output
	r.Characters = result.Characters
	r.Letters = result.Letters
	return report.Save(path, r)
}
