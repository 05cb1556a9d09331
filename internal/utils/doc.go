// Package utils provides shared helpers for the caesar CLI.
//
// # I/O Utilities
//
//   - ReadAllString: reads a stream to EOF
//   - ReadFileString, WriteFileString: whole-file reads and overwrites
//
// # Terminal Utilities
//
//   - IsTerminal, IsStderrTerminal: decide whether progress output is shown
//
// # String Utilities
//
//   - SourceName: labels a path, falling back to a stream name
package utils
