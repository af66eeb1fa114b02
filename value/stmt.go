// Copyright 2026 The Minibasic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"math"
	"strings"
)

// Flow tells the run machinery what to do after a statement executes.
type Flow int

const (
	FlowNext Flow = iota // fall through to the next stored line
	FlowGoto             // jump to the line number returned alongside
	FlowEnd              // the program is done
)

// Stmt is the interface for a parsed statement.
type Stmt interface {
	// ProgString returns the canonical representation of the
	// statement as it appears in a LIST.
	ProgString() string

	// Exec executes the statement. The returned Flow, with the jump
	// target accompanying FlowGoto, directs the RUN cursor; immediate
	// execution rejects FlowGoto and ignores FlowEnd.
	Exec(Context) (Flow, int)
}

// Compare is one of the six comparators legal between IF and THEN.
// Both spellings of not-equal parse to Ne and list as "<>".
type Compare int

const (
	Eq Compare = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

var compareText = [...]string{"=", "<>", "<", "<=", ">", ">="}

func (op Compare) String() string {
	return compareText[op]
}

// truth evaluates the comparator. Both sides must be the same kind;
// strings order lexically.
func (op Compare) truth(left, right Value) bool {
	switch l := left.(type) {
	case Int:
		r, ok := right.(Int)
		if !ok {
			panic(Errorf("cannot compare a number with a string"))
		}
		switch op {
		case Eq:
			return l == r
		case Ne:
			return l != r
		case Lt:
			return l < r
		case Le:
			return l <= r
		case Gt:
			return l > r
		case Ge:
			return l >= r
		}
	case String:
		r, ok := right.(String)
		if !ok {
			panic(Errorf("cannot compare a string with a number"))
		}
		switch op {
		case Eq:
			return l == r
		case Ne:
			return l != r
		case Lt:
			return l < r
		case Le:
			return l <= r
		case Gt:
			return l > r
		case Ge:
			return l >= r
		}
	}
	panic(Errorf("internal error: unknown comparator %s", op))
}

// PrintStmt prints one or more expressions, tab-separated, and a
// final newline.
type PrintStmt struct {
	Exprs []Expr
}

func (s *PrintStmt) ProgString() string {
	var b strings.Builder
	b.WriteString("PRINT ")
	for i, e := range s.Exprs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.ProgString())
	}
	return b.String()
}

func (s *PrintStmt) Exec(context Context) (Flow, int) {
	conf := context.Config()
	w := conf.Output()
	for i, e := range s.Exprs {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, e.Eval(context).Sprint(conf))
	}
	fmt.Fprintln(w)
	return FlowNext, 0
}

// LetStmt assigns the value of an expression to a variable.
type LetStmt struct {
	Name string
	Expr Expr
}

func (s *LetStmt) ProgString() string {
	return "LET " + s.Name + " = " + s.Expr.ProgString()
}

func (s *LetStmt) Exec(context Context) (Flow, int) {
	context.Assign(s.Name, s.Expr.Eval(context))
	return FlowNext, 0
}

// IfStmt executes its consequent, itself any statement, when the
// comparison holds; otherwise it falls through.
type IfStmt struct {
	Left  Expr
	Op    Compare
	Right Expr
	Then  Stmt
}

func (s *IfStmt) ProgString() string {
	return fmt.Sprintf("IF %s %s %s THEN %s",
		s.Left.ProgString(), s.Op, s.Right.ProgString(), s.Then.ProgString())
}

func (s *IfStmt) Exec(context Context) (Flow, int) {
	if s.Op.truth(s.Left.Eval(context), s.Right.Eval(context)) {
		return s.Then.Exec(context)
	}
	return FlowNext, 0
}

// GotoStmt repositions the RUN cursor. The target is an expression,
// evaluated at execution time.
type GotoStmt struct {
	Target Expr
}

func (s *GotoStmt) ProgString() string {
	return "GOTO " + s.Target.ProgString()
}

func (s *GotoStmt) Exec(context Context) (Flow, int) {
	n, ok := s.Target.Eval(context).(Int)
	if !ok {
		panic(Errorf("GOTO target must be a number"))
	}
	return FlowGoto, int(n)
}

// ListStmt prints the canonical form of the stored program, or of the
// given range of line numbers. Zero means the bound is absent.
type ListStmt struct {
	Start int
	End   int
}

func (s *ListStmt) ProgString() string {
	switch {
	case s.End != 0:
		return fmt.Sprintf("LIST %d - %d", s.Start, s.End)
	case s.Start != 0:
		return fmt.Sprintf("LIST %d", s.Start)
	}
	return "LIST"
}

func (s *ListStmt) Exec(context Context) (Flow, int) {
	end := s.End
	if end == 0 {
		end = math.MaxInt
	}
	context.List(context.Config().Output(), s.Start, end)
	return FlowNext, 0
}

// RunStmt executes the stored program.
type RunStmt struct{}

func (RunStmt) ProgString() string {
	return "RUN"
}

func (RunStmt) Exec(context Context) (Flow, int) {
	context.Run()
	return FlowNext, 0
}

// EndStmt terminates a RUN successfully. Immediate END does nothing.
type EndStmt struct{}

func (EndStmt) ProgString() string {
	return "END"
}

func (EndStmt) Exec(Context) (Flow, int) {
	return FlowEnd, 0
}

// RemStmt is a remark. It is stored and listed but executes as a no-op.
type RemStmt string

func (s RemStmt) ProgString() string {
	if s == "" {
		return "REM"
	}
	return "REM " + string(s)
}

func (RemStmt) Exec(Context) (Flow, int) {
	return FlowNext, 0
}

// NewStmt discards the stored program and every variable binding,
// returning the session to its initial state.
type NewStmt struct{}

func (NewStmt) ProgString() string {
	return "NEW"
}

func (NewStmt) Exec(context Context) (Flow, int) {
	context.New()
	return FlowNext, 0
}
