package args

import (
	"fmt"
	"strconv"

	"github.com/PolarWolf314/caesar/internal/caesar"
	kerrors "github.com/PolarWolf314/caesar/internal/errors"
)

// Version is the build version shown by -v. Release builds override it with
// -ldflags "-X github.com/PolarWolf314/caesar/internal/args.Version=x.y.z".
var Version = "1.0.0"

// Config is the result of parsing the command line. It is not modified after
// Parse returns.
type Config struct {
	Key        int
	Mode       caesar.Mode
	InputPath  string
	OutputPath string
	ReportPath string

	Help    bool
	Version bool
	Verbose bool
	Debug   bool
}

// ParseError describes why a token list was rejected.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return e.Reason
}

// Unwrap lets errors.Is match ErrInvalidArgs.
func (e *ParseError) Unwrap() error {
	return kerrors.ErrInvalidArgs
}

// Parse builds a Config from raw command-line tokens.
//
// -h and -v stop parsing as soon as they are seen. Flags that take a value
// consume the token right after them, whatever it looks like, and that token
// is never read as a flag itself: "-i -k 5" sets the input path to "-k" and
// leaves the key at 0. Unknown tokens are ignored.
func Parse(tokens []string) (Config, error) {
	if len(tokens) == 0 {
		return Config{}, &ParseError{Reason: "no arguments provided"}
	}

	cfg := Config{Mode: caesar.Encrypt}
	var encrypt, decrypt bool

	for i := 0; i < len(tokens); i++ {
		switch tokens[i] {
		case "-h":
			cfg.Help = true
			return cfg, nil
		case "-v":
			cfg.Version = true
			return cfg, nil
		case "-k":
			value, err := valueAfter(tokens, i)
			if err != nil {
				return Config{}, err
			}
			key, err := strconv.Atoi(value)
			if err != nil {
				return Config{}, &ParseError{Reason: fmt.Sprintf("key %q is not a valid integer", value)}
			}
			cfg.Key = key
			i++
		case "-i":
			value, err := valueAfter(tokens, i)
			if err != nil {
				return Config{}, err
			}
			cfg.InputPath = value
			i++
		case "-o":
			value, err := valueAfter(tokens, i)
			if err != nil {
				return Config{}, err
			}
			cfg.OutputPath = value
			i++
		case "--report":
			value, err := valueAfter(tokens, i)
			if err != nil {
				return Config{}, err
			}
			cfg.ReportPath = value
			i++
		case "-e":
			encrypt = true
		case "-d":
			decrypt = true
		case "--verbose":
			cfg.Verbose = true
		case "--debug":
			cfg.Debug = true
		}
	}

	if encrypt && decrypt {
		return Config{}, &ParseError{Reason: "-e and -d cannot be used together"}
	}
	if decrypt {
		cfg.Mode = caesar.Decrypt
	}

	return cfg, nil
}

func valueAfter(tokens []string, i int) (string, error) {
	if i+1 >= len(tokens) {
		return "", &ParseError{Reason: fmt.Sprintf("%s requires a value", tokens[i])}
	}
	return tokens[i+1], nil
}
