// Package errors provides typed error values for the caesar CLI.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Argument errors: the command line is malformed (ErrInvalidArgs)
//   - Cipher errors: the key cannot be used (ErrKeyOutOfRange)
//   - I/O errors: a file or stream failed (ErrInputRead, ErrOutputWrite, ErrReportWrite)
//
// # Usage
//
// Typed errors in other packages unwrap to these sentinels:
//
//	_, err := caesar.Transform(text, -1, caesar.Encrypt)
//	if errors.Is(err, kerrors.ErrKeyOutOfRange) {
//	    // Ask for a different key
//	}
//
// I/O failures wrap both the sentinel and the underlying error:
//
//	return fmt.Errorf("%w: %w", kerrors.ErrInputRead, err)
package errors
