package errors

import "errors"

// Argument errors indicate a malformed, incomplete, or contradictory command line.
var (
	// ErrInvalidArgs indicates the argument list could not be turned into a configuration.
	ErrInvalidArgs = errors.New("invalid arguments")
)

// Cipher errors indicate the transformation could not run.
var (
	// ErrKeyOutOfRange indicates the shift key is negative or larger than six digits.
	ErrKeyOutOfRange = errors.New("key out of range")
)

// I/O errors indicate a source or sink could not be used.
var (
	// ErrInputRead indicates the input file or standard input could not be read.
	ErrInputRead = errors.New("failed to read input")

	// ErrOutputWrite indicates the output file or standard output could not be written.
	ErrOutputWrite = errors.New("failed to write output")

	// ErrReportWrite indicates the run report could not be saved.
	ErrReportWrite = errors.New("failed to write report")
)
