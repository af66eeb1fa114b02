// Copyright 2026 The Minibasic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan tokenizes minibasic input one line at a time.
package scan // import "minibasic.io/minibasic/scan"

import (
	"fmt"
	"io"
	"strings"

	"minibasic.io/minibasic/value"
)

// Token represents a token or text string returned from the scanner.
type Token struct {
	Type Type   // The type of this item.
	Line int    // The line number on which this token appears.
	Text string // The text of this item.
}

// Type identifies the type of lex items.
type Type int

const (
	EOF   Type = iota // zero value so an exhausted token list delivers EOF
	Error             // error occurred; value is text of error
	Newline
	// Interesting things
	Comma      // ','
	Comment    // remark text following REM
	Identifier // keyword or variable name
	LeftParen  // '('
	Number     // unsigned decimal integer
	Operator   // single-character operator: + - * / = < >
	RightParen // ')'
	String     // quoted string (includes quotes)
)

func (i Token) String() string {
	switch i.Type {
	case EOF:
		return "end of line"
	case Error:
		return "error: " + i.Text
	case Newline:
		return "newline"
	}
	return fmt.Sprintf("%q", i.Text)
}

const eof = -1

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*Scanner) stateFn

// Scanner holds the state of the scanner. It pulls characters from the
// input one byte at a time and assembles them into one line of text,
// from which the tokens of that line are produced.
type Scanner struct {
	context   value.Context
	r         io.ByteReader
	done      bool
	name      string  // the name of the input; used only for error reports
	buf       []byte  // I/O buffer, re-used
	input     string  // the line of text being scanned
	lastWidth int     // size of the most recent return from next; 0 at EOF
	state     stateFn // the next lexing function to enter
	line      int     // line number in input
	pos       int     // current position in the input
	start     int     // start position of this item
	token     Token
}

// New creates and returns a new scanner reading from r.
func New(context value.Context, name string, r io.ByteReader) *Scanner {
	return &Scanner{
		r:       r,
		name:    name,
		line:    1,
		context: context,
	}
}

// loadLine reads the next line of input and stores it in (appends it to) the
// input. (l.input may have data left over when we are called.) It strips
// carriage returns to make subsequent processing simpler.
func (l *Scanner) loadLine() {
	l.buf = l.buf[:0]
	for {
		c, err := l.r.ReadByte()
		if err != nil {
			l.done = true
			break
		}
		if c != '\r' { // There will never be a \r in l.input.
			l.buf = append(l.buf, c)
		}
		if c == '\n' {
			break
		}
	}
	// Reset to beginning of input buffer if there is nothing pending.
	if l.start == l.pos {
		l.input = string(l.buf)
		l.start = 0
		l.pos = 0
	} else {
		l.input += string(l.buf)
	}
}

// next returns the next rune in the input.
func (l *Scanner) next() rune {
	if !l.done && l.pos == len(l.input) {
		l.loadLine()
	}
	if l.pos == len(l.input) {
		l.lastWidth = 0
		return eof
	}
	r := rune(l.input[l.pos])
	l.pos++
	l.lastWidth = 1
	return r
}

// peek returns but does not consume the next rune in the input.
func (l *Scanner) peek() rune {
	r := l.next()
	l.backup()
	return r
}

// backup steps back one rune. Should only be called once per call of next.
func (l *Scanner) backup() {
	l.pos -= l.lastWidth
	l.lastWidth = 0
}

// emit passes a token back to the client.
func (l *Scanner) emit(t Type) stateFn {
	if t == Newline {
		l.line++
	}
	text := l.input[l.start:l.pos]
	config := l.context.Config()
	if config.Debug("tokens") {
		fmt.Fprintf(config.Output(), "%s:%d: emit %s\n", l.name, l.line, Token{t, l.line, text})
	}
	l.token = Token{t, l.line, text}
	l.start = l.pos
	return nil
}

// errorf returns an error token and empties the rest of the current line,
// so a lexical error never affects the lines that follow.
func (l *Scanner) errorf(format string, args ...interface{}) stateFn {
	l.token = Token{Error, l.line, fmt.Sprintf(format, args...)}
	l.input = l.input[:0]
	l.start = 0
	l.pos = 0
	return nil
}

// Next returns the next token.
func (l *Scanner) Next() Token {
	l.token = Token{EOF, l.line, "EOF"}
	state := lexAny
	for {
		state = state(l)
		if state == nil {
			return l.token
		}
	}
}

// state functions

// lexAny scans non-space items.
func lexAny(l *Scanner) stateFn {
	switch r := l.next(); {
	case r == eof:
		return nil
	case r == '\n':
		return l.emit(Newline)
	case isSpace(r):
		return lexSpace
	case r == '"':
		return lexQuote
	case isDigit(r):
		return lexNumber
	case isLetter(r):
		return lexIdentifier
	case r == ',':
		return l.emit(Comma)
	case r == '(':
		return l.emit(LeftParen)
	case r == ')':
		return l.emit(RightParen)
	case isOperator(r):
		// Always a single character; the parser assembles the
		// two-character comparators so that `< =` and `<=` are one
		// and the same.
		return l.emit(Operator)
	default:
		return l.errorf("unrecognized character %#U", r)
	}
}

// lexSpace scans a run of space characters.
// One space has already been seen.
func lexSpace(l *Scanner) stateFn {
	for isSpace(l.peek()) {
		l.next()
	}
	// Skips over the pending input.
	l.start = l.pos
	return lexAny
}

// lexNumber scans an unsigned decimal integer. Signs are the
// parser's business.
func lexNumber(l *Scanner) stateFn {
	for isDigit(l.peek()) {
		l.next()
	}
	return l.emit(Number)
}

// lexIdentifier scans a run of letters: a keyword or a variable name.
// The scanner does not distinguish the two, except for REM, whose
// remark text would otherwise be unscannable.
func lexIdentifier(l *Scanner) stateFn {
	for isLetter(l.peek()) {
		l.next()
	}
	if strings.EqualFold(l.input[l.start:l.pos], "rem") {
		return lexRemark
	}
	return l.emit(Identifier)
}

// lexRemark scans the text following REM, up to but not including the
// end of the line. The keyword and the spaces after it are dropped.
func lexRemark(l *Scanner) stateFn {
	for isSpace(l.peek()) {
		l.next()
	}
	l.start = l.pos
	for {
		r := l.peek()
		if r == eof || r == '\n' {
			break
		}
		l.next()
	}
	return l.emit(Comment)
}

// lexQuote scans a quoted string. The opening quote has been consumed.
// There is no escape processing; a string ends at the next quote and
// must end before the line does.
func lexQuote(l *Scanner) stateFn {
	for {
		switch l.next() {
		case eof, '\n':
			return l.errorf("unterminated string")
		case '"':
			return l.emit(String)
		}
	}
}

// isSpace reports whether r is a space character.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// isDigit reports whether r is an ASCII digit.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isLetter reports whether r is an ASCII letter.
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

// isOperator reports whether r is an operator or comparator character.
func isOperator(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '=', '<', '>':
		return true
	}
	return false
}
