// Copyright 2026 The Minibasic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// Expr is the interface for a parsed expression.
// Also implemented by Value.
type Expr interface {
	// ProgString returns the canonical representation of the
	// expression as it appears in a LIST.
	ProgString() string

	Eval(Context) Value
}

// VarExpr is a reference to one of the 26 variables. The name is a
// single uppercase letter. An unassigned variable reads as zero.
type VarExpr string

func (e VarExpr) ProgString() string {
	return string(e)
}

func (e VarExpr) Eval(context Context) Value {
	if v := context.Lookup(string(e)); v != nil {
		return v
	}
	return Int(0)
}

// UnaryExpr is a signed operand: + or - applied to a primary.
type UnaryExpr struct {
	Op    string
	Right Expr
}

func (u *UnaryExpr) ProgString() string {
	return u.Op + u.Right.ProgString()
}

func (u *UnaryExpr) Eval(context Context) Value {
	n, ok := u.Right.Eval(context).(Int)
	if !ok {
		panic(Errorf("unary %s requires a number", u.Op))
	}
	if u.Op == "-" {
		return -n
	}
	return n
}

// BinaryExpr is an arithmetic operation: + - * /.
type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
}

func (b *BinaryExpr) ProgString() string {
	return b.Left.ProgString() + " " + b.Op + " " + b.Right.ProgString()
}

func (b *BinaryExpr) Eval(context Context) Value {
	left, ok1 := b.Left.Eval(context).(Int)
	right, ok2 := b.Right.Eval(context).(Int)
	if !ok1 || !ok2 {
		panic(Errorf("%s requires numbers", b.Op))
	}
	switch b.Op {
	case "+":
		return left + right
	case "-":
		return left - right
	case "*":
		return left * right
	case "/":
		if right == 0 {
			panic(Errorf("division by zero"))
		}
		return left / right
	}
	panic(Errorf("internal error: unknown operator %q", b.Op))
}

// ParenExpr records an explicit parenthesization. Evaluation passes
// through; its point is that LIST reproduces the parentheses exactly
// where they were written, redundant or not.
type ParenExpr struct {
	X Expr
}

func (p *ParenExpr) ProgString() string {
	return "(" + p.X.ProgString() + ")"
}

func (p *ParenExpr) Eval(context Context) Value {
	return p.X.Eval(context)
}
