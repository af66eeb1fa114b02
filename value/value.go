// Copyright 2026 The Minibasic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value defines the values, expressions, and statements of the
// minibasic language, plus the Context interface through which they are
// evaluated. The single implementation of Context is in the exec
// package; defining the interface here breaks the cycle that would
// otherwise tie exec to the syntax tree.
package value // import "minibasic.io/minibasic/value"

import (
	"fmt"
	"strconv"

	"minibasic.io/minibasic/config"
)

// Value is the result of evaluating an expression: an integer or a
// string. Values are themselves expressions, which makes them serve
// as the literal nodes of the syntax tree.
type Value interface {
	Expr

	// Sprint returns the text of the value as PRINT displays it:
	// base-10 signed integer text, or string text without quotes.
	Sprint(conf *config.Config) string
}

// Error is the type of the panic raised for any lexical, parse, or
// runtime failure. It is recovered at the run loop, reported once, and
// never escapes the interpreter.
type Error string

func (err Error) Error() string {
	return string(err)
}

// Errorf formats an Error for the caller to panic with.
func Errorf(format string, args ...interface{}) Error {
	return Error(fmt.Sprintf(format, args...))
}

// Int is an integer value. All minibasic arithmetic is 64-bit.
type Int int64

func (i Int) Sprint(conf *config.Config) string {
	return strconv.FormatInt(int64(i), 10)
}

func (i Int) ProgString() string {
	return strconv.FormatInt(int64(i), 10)
}

func (i Int) Eval(Context) Value {
	return i
}

// String is a string value. The text holds no quotes; ProgString puts
// them back, and there are no escapes to worry about.
type String string

func (s String) Sprint(conf *config.Config) string {
	return string(s)
}

func (s String) ProgString() string {
	return `"` + string(s) + `"`
}

func (s String) Eval(Context) Value {
	return s
}
