// Copyright 2026 The Minibasic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the configuration for a minibasic session: the
// output and error writers, the interactive prompt, debugging flags,
// and the optional RUN step limit. A zero Config is ready to use and
// writes to standard output and standard error.
package config // import "minibasic.io/minibasic/config"

import (
	"io"
	"os"
)

// A Config holds information about the configuration of a session.
// It is shared by the scanner, the parser, and the execution context,
// so the interpreter core never touches os.Stdout or os.Stderr directly.
type Config struct {
	prompt    string
	output    io.Writer
	errOutput io.Writer
	debug     map[string]bool
	maxSteps  uint64
}

// Output returns the writer to be used for program output.
func (c *Config) Output() io.Writer {
	if c.output == nil {
		return os.Stdout
	}
	return c.output
}

// SetOutput sets the writer to which program output is printed.
func (c *Config) SetOutput(output io.Writer) {
	c.output = output
}

// ErrOutput returns the writer to be used for error messages.
func (c *Config) ErrOutput() io.Writer {
	if c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

// SetErrOutput sets the writer to which error messages are printed.
func (c *Config) SetErrOutput(output io.Writer) {
	c.errOutput = output
}

// Prompt returns the interactive prompt.
func (c *Config) Prompt() string {
	return c.prompt
}

// SetPrompt sets the interactive prompt.
func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// Debug reports whether the named debugging flag is set.
func (c *Config) Debug(flag string) bool {
	return c.debug[flag]
}

// SetDebug sets the named debugging flag.
func (c *Config) SetDebug(flag string, state bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[flag] = state
}

// MaxSteps returns the maximum number of statements one RUN may execute.
// Zero means there is no limit.
func (c *Config) MaxSteps() uint64 {
	return c.maxSteps
}

// SetMaxSteps sets the RUN step limit. Zero disables the limit.
func (c *Config) SetMaxSteps(n uint64) {
	c.maxSteps = n
}
