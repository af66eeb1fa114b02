// Copyright 2026 The Minibasic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec implements the execution context for a minibasic
// session: the variable environment, the stored program, and the RUN
// control-flow machine.
package exec // import "minibasic.io/minibasic/exec"

import (
	"fmt"
	"io"

	"github.com/google/btree"

	"minibasic.io/minibasic/config"
	"minibasic.io/minibasic/value"
)

// Symtab is a symbol table, a map of variable names to values.
// Names are single uppercase letters; a missing entry reads as zero.
type Symtab map[string]value.Value

// ProgramLine is one stored line of the program: a line number and the
// statement stored under it. Lines order by number, which makes the
// btree traversal the basis of both LIST and RUN.
type ProgramLine struct {
	Number int
	Stmt   value.Stmt
}

// Less implements btree.Item.
func (l ProgramLine) Less(than btree.Item) bool {
	return l.Number < than.(ProgramLine).Number
}

// Context holds execution context: the variable bindings and the
// stored program. It is the only implementation of value.Context.
// A Context is owned by exactly one session and is not safe for
// concurrent use.
type Context struct {
	config  *config.Config
	vars    Symtab
	program *btree.BTree
	running bool
}

// NewContext returns a new execution context: empty variables, an
// empty program, and the given configuration.
func NewContext(conf *config.Config) value.Context {
	c := &Context{config: conf}
	c.New()
	return c
}

func (c *Context) Config() *config.Config {
	return c.config
}

// Lookup returns the value of a variable, or nil if it has never been
// assigned.
func (c *Context) Lookup(name string) value.Value {
	return c.vars[name]
}

// Assign binds the value to the variable.
func (c *Context) Assign(name string, val value.Value) {
	c.vars[name] = val
}

// Store inserts or replaces the numbered line.
func (c *Context) Store(line int, stmt value.Stmt) {
	c.program.ReplaceOrInsert(ProgramLine{line, stmt})
}

// stored returns the statement at the exact line number, if present.
func (c *Context) stored(n int) (value.Stmt, bool) {
	item := c.program.Get(ProgramLine{Number: n})
	if item == nil {
		return nil, false
	}
	return item.(ProgramLine).Stmt, true
}

// next returns the first stored line with number >= cursor.
func (c *Context) next(cursor int) (ProgramLine, bool) {
	var line ProgramLine
	found := false
	c.program.AscendGreaterOrEqual(ProgramLine{Number: cursor},
		func(item btree.Item) bool {
			line = item.(ProgramLine)
			found = true
			return false
		})
	return line, found
}

// New discards the stored program and all variable bindings.
func (c *Context) New() {
	if c.running {
		panic(value.Errorf("NEW while running"))
	}
	c.vars = make(Symtab)
	c.program = btree.New(4)
}

// Run executes the stored program from its lowest line number. The
// cursor advances to the next higher line after each statement, except
// that GOTO repositions it and END stops the run. A GOTO target that
// is not stored is a fault. Running past the last stored line without
// an END is reported as a fault too, but only after all the program's
// output has been produced; nothing is undone.
func (c *Context) Run() {
	if c.running {
		panic(value.Errorf("RUN while running"))
	}
	c.running = true
	defer func() { c.running = false }()

	maxSteps := c.config.MaxSteps()
	var steps uint64
	cursor := 0
	for {
		line, ok := c.next(cursor)
		if !ok {
			panic(value.Errorf("program fell off the end without END"))
		}
		if maxSteps > 0 {
			if steps++; steps > maxSteps {
				panic(value.Errorf("step limit exceeded at line %d", line.Number))
			}
		}
		flow, target := line.Stmt.Exec(c)
		switch flow {
		case value.FlowNext:
			cursor = line.Number + 1
		case value.FlowGoto:
			if _, ok := c.stored(target); !ok {
				panic(value.Errorf("undefined line %d", target))
			}
			cursor = target
		case value.FlowEnd:
			return
		}
	}
}

// List writes the canonical rendering of the stored lines with numbers
// in [start, end], ascending, one per output line.
func (c *Context) List(w io.Writer, start, end int) {
	c.program.AscendGreaterOrEqual(ProgramLine{Number: start},
		func(item btree.Item) bool {
			line := item.(ProgramLine)
			if line.Number > end {
				return false
			}
			fmt.Fprintf(w, "%d %s\n", line.Number, line.Stmt.ProgString())
			return true
		})
}
