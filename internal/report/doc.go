// Package report records a summary of a caesar run in TOML.
//
// Reports are opt-in (--report <path>) and written only after the output
// was produced. A report looks like:
//
//	run_id = "5f0c5b8e-8c1e-4a47-9d43-2f0f8e9b1c7a"
//	timestamp = 2026-10-19T09:30:00Z
//	version = "1.0.0"
//	mode = "encrypt"
//	key = 3
//	input = "stdin"
//	output = "secret.txt"
//	characters = 15
//	letters_rotated = 14
//
// Note that the key is stored in clear text.
package report
