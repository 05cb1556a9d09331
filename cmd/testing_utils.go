// Package cmd contains testing utilities shared between command tests.
// This file provides helpers for running the command with in-memory streams.
package cmd

import (
	"bytes"
	"strings"
	"testing"
)

// commandOutput holds what a command run wrote to each stream.
type commandOutput struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// runCommand executes CaesarCmd with the given tokens and stdin, the same way
// main does, and restores global state afterwards.
func runCommand(t *testing.T, stdin string, tokens ...string) commandOutput {
	t.Helper()
	t.Cleanup(ResetGlobalState)

	var stdout, stderr bytes.Buffer
	if tokens == nil {
		tokens = []string{}
	}

	// The spinner is only drawn for terminals, never inside tests.
	isInteractive = func() bool { return false }
	cmd := GetCaesarCmd()
	cmd.SetArgs(tokens)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	code := Execute()
	return commandOutput{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: code,
	}
}
