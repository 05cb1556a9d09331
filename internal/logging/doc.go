// Package logger provides leveled logging for the caesar CLI.
//
// Output is formatted with colored prefixes from fatih/color and always goes
// to the logger's Out writer (stderr by default), leaving stdout for the
// transformed text.
//
// # Verbosity Levels
//
//   - --verbose: shows info and warning messages
//   - --debug: shows all messages including debug details and errors
//
// Without flags, only WarnfAlways messages are shown.
//
// # Usage
//
//	log := logger.Logger{Verbose: cfg.Verbose, Debug: cfg.Debug}
//	log.Infof("Read %d characters from %s", n, source)
package logger
