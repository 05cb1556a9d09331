package args

const helpText = `Caesar cipher

WARNING: this tool is for learning only. Use modern cryptography to protect data.

Only -k is required. Without -i, -o, -e or -d the text is read from stdin,
written to stdout, and encrypted.

Usage:
  caesar -k <int> [-i <path>] [-o <path>] [-e | -d] [-h] [-v]

Arguments:
  -h           Show this help.
  -v           Show the version.
  -k <int>     Shift key, between 0 and 999999.
  -i <path>    Read input from a file instead of stdin.
  -o <path>    Write output to a file instead of stdout. Existing files are overwritten.
  -e           Encrypt (default).
  -d           Decrypt.

Extra options:
  --verbose        Log progress to stderr.
  --debug          Log debug details to stderr.
  --report <path>  Save a TOML summary of the run.

Example:
  caesar -k 10 -i input.txt -o output.txt -e
`

// HelpText returns the usage message printed for -h and after argument errors.
func HelpText() string {
	return helpText
}

// VersionText returns the line printed for -v.
func VersionText() string {
	return "v" + Version + "\n"
}
