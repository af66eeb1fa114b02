// Copyright 2026 The Minibasic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"io"

	"minibasic.io/minibasic/config"
)

// Context is the execution context for evaluation and execution: the
// variable environment, the stored program, and the RUN state machine.
// The only implementation is exec.Context, but since that package
// builds on the types defined here, this interface keeps the
// dependency pointing one way.
//
// Faults are reported by panicking with type Error.
type Context interface {
	// Config returns the configuration of the session.
	Config() *config.Config

	// Lookup returns the value bound to the variable, or nil if it
	// has never been assigned.
	Lookup(name string) Value

	// Assign binds the value to the variable.
	Assign(name string, val Value)

	// Store inserts the numbered line into the stored program,
	// replacing any previous statement at that number.
	Store(line int, stmt Stmt)

	// Run executes the stored program from its lowest line number
	// until END, a fault, or running past the last line.
	Run()

	// List writes the canonical rendering of the stored lines with
	// numbers in [start, end], in ascending order, one per line.
	List(w io.Writer, start, end int)

	// New discards the stored program and all variable bindings.
	New()
}
