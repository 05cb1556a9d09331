// Package args turns the caesar command line into a Config.
//
// The parser is deliberately small: it walks the tokens once, recognizes a
// fixed set of flags and ignores everything else. It only checks that the
// key is an integer; range checks belong to the caesar package.
//
//	cfg, err := args.Parse([]string{"-k", "3", "-d", "-i", "secret.txt"})
//	// cfg.Key == 3, cfg.Mode == caesar.Decrypt, cfg.InputPath == "secret.txt"
//
// Errors returned by Parse are *ParseError values and match
// errors.ErrInvalidArgs with errors.Is.
package args
