// Copyright 2026 The Minibasic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the session loop for minibasic.
// It is factored out of main so it can be used for tests and for
// embedding the interpreter.
package run // import "minibasic.io/minibasic/run"

import (
	"fmt"
	"io"
	"strings"

	"github.com/goforj/godump"

	"minibasic.io/minibasic/parse"
	"minibasic.io/minibasic/scan"
	"minibasic.io/minibasic/value"
)

// Run runs the parser/executor until EOF or error. The return value
// says whether we completed without error; typical execution is
// therefore to loop calling Run until it succeeds. Each failure is
// reported once to the configured error output, and the input line
// that caused it has no effect on stored lines or variable bindings.
func Run(p *parse.Parser, context value.Context, interactive bool) (success bool) {
	conf := context.Config()
	defer func() {
		if conf.Debug("panic") {
			return
		}
		err := recover()
		if err == nil {
			return
		}
		if err, ok := err.(value.Error); ok {
			fmt.Fprintf(conf.ErrOutput(), "%s%s\n", p.Loc(), err)
			success = false
			return
		}
		panic(err)
	}()
	for {
		if interactive {
			fmt.Fprint(conf.Output(), conf.Prompt())
		}
		line, ok := p.Line()
		if line != nil {
			if conf.Debug("parse") {
				godump.Dump(line)
			}
			if line.Number > 0 {
				context.Store(line.Number, line.Stmt)
			} else {
				execute(context, line.Stmt)
			}
		}
		if !ok {
			return true
		}
	}
}

// execute runs one immediate statement. A jump makes no sense without
// a running program, so an immediate GOTO (or an IF that reaches one)
// is a fault.
func execute(context value.Context, stmt value.Stmt) {
	flow, target := stmt.Exec(context)
	if flow == value.FlowGoto {
		panic(value.Errorf("GOTO %d outside of RUN", target))
	}
}

// Basic runs the whole input against the context, sending program
// output to stdout and diagnostics to stderr. It is the entry point
// for tests and embedders.
func Basic(context value.Context, input string, stdout, stderr io.Writer) {
	conf := context.Config()
	conf.SetOutput(stdout)
	conf.SetErrOutput(stderr)
	scanner := scan.New(context, "<stdin>", strings.NewReader(input))
	p := parse.NewParser("<stdin>", scanner, context)
	for !Run(p, context, false) {
	}
}
