package main

import (
	"io"
	"os"
	"time"
)

// Environment bundles the process-level dependencies of the CLI so tests
// can substitute clocks, streams, and terminal detection.
type Environment struct {
	Now             func() time.Time
	Stdin           io.Reader
	Stdout          io.Writer
	Stderr          io.Writer
	StdinIsTerminal func() bool
}

// DefaultEnv returns the production environment backed by the real
// process streams.
func DefaultEnv() *Environment {
	return &Environment{
		Now:             time.Now,
		Stdin:           os.Stdin,
		Stdout:          os.Stdout,
		Stderr:          os.Stderr,
		StdinIsTerminal: stdinIsTerminal,
	}
}

// stdinIsTerminal reports whether stdin is an interactive terminal rather
// than a pipe or a redirected file.
func stdinIsTerminal() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
