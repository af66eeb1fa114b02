// Copyright 2026 The Minibasic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse builds statements from the token stream, one input
// line at a time, by recursive descent.
package parse // import "minibasic.io/minibasic/parse"

import (
	"fmt"
	"strconv"
	"strings"

	"minibasic.io/minibasic/scan"
	"minibasic.io/minibasic/value"
)

// Line is one parsed input line: a statement plus the line number
// under which to store it. Number is zero for an immediate statement.
type Line struct {
	Number int
	Stmt   value.Stmt
}

// Parser stores the state for the minibasic parser.
type Parser struct {
	scanner  *scan.Scanner
	tokens   []scan.Token // Points to tokenBuf.
	tokenBuf [100]scan.Token
	fileName string
	lineNum  int
	context  value.Context
}

// NewParser returns a new parser that will read from the scanner.
func NewParser(fileName string, scanner *scan.Scanner, context value.Context) *Parser {
	return &Parser{
		scanner:  scanner,
		fileName: fileName,
		context:  context,
	}
}

// Loc returns the current input location in "file:line: " format.
// For interactive input it is empty.
func (p *Parser) Loc() string {
	if p.fileName == "" || strings.HasPrefix(p.fileName, "<") {
		return ""
	}
	return fmt.Sprintf("%s:%d: ", p.fileName, p.lineNum)
}

func (p *Parser) next() scan.Token {
	tok := p.peek()
	if tok.Type != scan.EOF {
		p.tokens = p.tokens[1:]
		p.lineNum = tok.Line
	}
	return tok
}

func (p *Parser) peek() scan.Token {
	if len(p.tokens) == 0 {
		return scan.Token{Type: scan.EOF}
	}
	return p.tokens[0]
}

// errorf discards the rest of the line's tokens and panics. The store
// and the environment are untouched: nothing is committed until the
// whole line has parsed.
func (p *Parser) errorf(format string, args ...interface{}) {
	p.tokens = p.tokenBuf[:0]
	panic(value.Errorf(format, args...))
}

// readTokensToNewline collects the tokens of the next input line.
// The boolean is false at EOF. Reading the whole line before parsing
// makes mid-line error recovery trivial: the failed line's tokens are
// simply dropped.
func (p *Parser) readTokensToNewline() bool {
	p.tokens = p.tokenBuf[:0]
	for {
		tok := p.scanner.Next()
		switch tok.Type {
		case scan.Error:
			p.lineNum = tok.Line
			p.errorf("%s", tok.Text)
		case scan.Newline:
			return true
		case scan.EOF:
			return len(p.tokens) > 0
		}
		p.tokens = append(p.tokens, tok)
		p.lineNum = tok.Line
	}
}

// Line reads one line of input and returns it in parsed form.
// A nil Line with true means the line was blank; the boolean is
// false at EOF. A line is parsed in full before it is returned, so a
// numbered line that fails to parse is never stored.
//
// Line
//
//	[number] statement '\n'
func (p *Parser) Line() (*Line, bool) {
	if !p.readTokensToNewline() {
		return nil, false
	}
	if len(p.tokens) == 0 {
		return nil, true
	}
	line := &Line{}
	if tok := p.peek(); tok.Type == scan.Number {
		p.next()
		line.Number = p.lineNumber(tok)
	}
	line.Stmt = p.statement()
	if tok := p.peek(); tok.Type != scan.EOF {
		p.errorf("unexpected %s after statement", tok)
	}
	return line, true
}

// maxLineNumber bounds stored line numbers. The bound keeps the RUN
// cursor, which steps to number+1, comfortably inside an int.
const maxLineNumber = 1e9

// lineNumber converts a leading number token to a storable line number.
func (p *Parser) lineNumber(tok scan.Token) int {
	n, err := strconv.Atoi(tok.Text)
	if err != nil || n <= 0 || n > maxLineNumber {
		p.errorf("bad line number %s", tok.Text)
	}
	return n
}

// statement
//
//	PRINT exprList
//	LET variable '=' expr
//	IF expr comparator expr THEN statement
//	GOTO expr
//	LIST [number ['-' number]]
//	RUN | END | NEW
//	REM remark
func (p *Parser) statement() value.Stmt {
	tok := p.next()
	switch tok.Type {
	case scan.Comment:
		return value.RemStmt(tok.Text)
	case scan.Identifier:
		switch strings.ToUpper(tok.Text) {
		case "PRINT":
			return p.printStmt()
		case "LET":
			return p.letStmt()
		case "IF":
			return p.ifStmt()
		case "GOTO":
			return &value.GotoStmt{Target: p.expr()}
		case "LIST":
			return p.listStmt()
		case "RUN":
			return value.RunStmt{}
		case "END":
			return value.EndStmt{}
		case "NEW":
			return value.NewStmt{}
		case "THEN":
			p.errorf("THEN without IF")
		default:
			p.errorf("unknown keyword %s", tok)
		}
	}
	p.errorf("expected statement, found %s", tok)
	panic("unreachable")
}

// printStmt
//
//	PRINT expr (',' expr)*
func (p *Parser) printStmt() value.Stmt {
	exprs := []value.Expr{p.expr()}
	for p.peek().Type == scan.Comma {
		p.next()
		exprs = append(exprs, p.expr())
	}
	return &value.PrintStmt{Exprs: exprs}
}

// letStmt
//
//	LET variable '=' expr
func (p *Parser) letStmt() value.Stmt {
	name := p.variable()
	if tok := p.next(); tok.Type != scan.Operator || tok.Text != "=" {
		p.errorf("expected = in LET, found %s", tok)
	}
	return &value.LetStmt{Name: name, Expr: p.expr()}
}

// ifStmt
//
//	IF expr comparator expr THEN statement
//
// The consequent is a full statement, so IF ... THEN GOTO and even
// IF ... THEN IF ... parse naturally.
func (p *Parser) ifStmt() value.Stmt {
	left := p.expr()
	op := p.comparator()
	right := p.expr()
	if tok := p.next(); tok.Type != scan.Identifier || !strings.EqualFold(tok.Text, "then") {
		p.errorf("expected THEN, found %s", tok)
	}
	return &value.IfStmt{Left: left, Op: op, Right: right, Then: p.statement()}
}

// listStmt
//
//	LIST [number ['-' number]]
func (p *Parser) listStmt() value.Stmt {
	stmt := &value.ListStmt{}
	if p.peek().Type != scan.Number {
		return stmt
	}
	stmt.Start = p.lineNumber(p.next())
	if tok := p.peek(); tok.Type == scan.Operator && tok.Text == "-" {
		p.next()
		if p.peek().Type != scan.Number {
			p.errorf("expected line number after - in LIST, found %s", p.peek())
		}
		stmt.End = p.lineNumber(p.next())
		if stmt.End < stmt.Start {
			p.errorf("backwards LIST range %d - %d", stmt.Start, stmt.End)
		}
	}
	return stmt
}

// comparator assembles one of the six comparators. The scanner emits
// only single-character operator tokens, so the two-character
// spellings arrive as adjacent tokens here, whitespace between them
// long since discarded; `< =`, `<=`, `<>`, and `><` all land on the
// same Compare.
func (p *Parser) comparator() value.Compare {
	tok := p.next()
	if tok.Type == scan.Operator {
		switch tok.Text {
		case "=":
			return value.Eq
		case "<":
			if next := p.peek(); next.Type == scan.Operator {
				switch next.Text {
				case "=":
					p.next()
					return value.Le
				case ">":
					p.next()
					return value.Ne
				}
			}
			return value.Lt
		case ">":
			if next := p.peek(); next.Type == scan.Operator {
				switch next.Text {
				case "=":
					p.next()
					return value.Ge
				case "<":
					p.next()
					return value.Ne
				}
			}
			return value.Gt
		}
	}
	p.errorf("expected comparator, found %s", tok)
	panic("unreachable")
}

// expr
//
//	term (('+' | '-') term)*
func (p *Parser) expr() value.Expr {
	e := p.term()
	for {
		tok := p.peek()
		if tok.Type != scan.Operator || (tok.Text != "+" && tok.Text != "-") {
			return e
		}
		p.next()
		e = &value.BinaryExpr{Op: tok.Text, Left: e, Right: p.term()}
	}
}

// term
//
//	factor (('*' | '/') factor)*
func (p *Parser) term() value.Expr {
	e := p.factor()
	for {
		tok := p.peek()
		if tok.Type != scan.Operator || (tok.Text != "*" && tok.Text != "/") {
			return e
		}
		p.next()
		e = &value.BinaryExpr{Op: tok.Text, Left: e, Right: p.factor()}
	}
}

// factor
//
//	['+' | '-'] primary
func (p *Parser) factor() value.Expr {
	if tok := p.peek(); tok.Type == scan.Operator && (tok.Text == "+" || tok.Text == "-") {
		p.next()
		return &value.UnaryExpr{Op: tok.Text, Right: p.primary()}
	}
	return p.primary()
}

// primary
//
//	number | string | variable | '(' expr ')'
func (p *Parser) primary() value.Expr {
	tok := p.next()
	switch tok.Type {
	case scan.Number:
		n, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			p.errorf("number out of range: %s", tok.Text)
		}
		return value.Int(n)
	case scan.String:
		return value.String(tok.Text[1 : len(tok.Text)-1])
	case scan.Identifier:
		return value.VarExpr(p.variableName(tok))
	case scan.LeftParen:
		e := p.expr()
		if tok := p.next(); tok.Type != scan.RightParen {
			p.errorf("missing closing parenthesis, found %s", tok)
		}
		return &value.ParenExpr{X: e}
	}
	p.errorf("unexpected %s in expression", tok)
	panic("unreachable")
}

// variable parses a variable name token.
func (p *Parser) variable() string {
	tok := p.next()
	if tok.Type != scan.Identifier {
		p.errorf("expected variable name, found %s", tok)
	}
	return p.variableName(tok)
}

// variableName validates an identifier as a variable: a single letter
// A through Z, any case.
func (p *Parser) variableName(tok scan.Token) string {
	if len(tok.Text) != 1 {
		p.errorf("bad variable name %s", tok)
	}
	return strings.ToUpper(tok.Text)
}
