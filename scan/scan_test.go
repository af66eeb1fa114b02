// Copyright 2026 The Minibasic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan_test

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"minibasic.io/minibasic/config"
	"minibasic.io/minibasic/exec"
	"minibasic.io/minibasic/scan"
)

var typeName = map[scan.Type]string{
	scan.EOF:        "eof",
	scan.Error:      "error",
	scan.Newline:    "newline",
	scan.Comma:      "comma",
	scan.Comment:    "comment",
	scan.Identifier: "ident",
	scan.LeftParen:  "lparen",
	scan.Number:     "number",
	scan.Operator:   "op",
	scan.RightParen: "rparen",
	scan.String:     "string",
}

// tokens scans the input to completion and renders each token as
// "type(text)" for easy comparison.
func tokens(input string) []string {
	context := exec.NewContext(&config.Config{})
	s := scan.New(context, "test", strings.NewReader(input))
	var out []string
	for {
		tok := s.Next()
		out = append(out, typeName[tok.Type]+"("+tok.Text+")")
		if tok.Type == scan.EOF || tok.Type == scan.Error {
			return out
		}
	}
}

func TestTokens(t *testing.T) {
	for _, test := range []struct {
		input string
		want  []string
	}{
		{"", []string{"eof(EOF)"}},
		{"\n \t \n", []string{"newline(\n)", "newline(\n)", "eof(EOF)"}},
		{"10 print \"hi\", x+2\n", []string{
			"number(10)", "ident(print)", `string("hi")`, "comma(,)",
			"ident(x)", "op(+)", "number(2)", "newline(\n)", "eof(EOF)",
		}},
		{"(1-2)*3/4\n", []string{
			"lparen(()", "number(1)", "op(-)", "number(2)", "rparen())",
			"op(*)", "number(3)", "op(/)", "number(4)", "newline(\n)", "eof(EOF)",
		}},
		// Comparator characters always arrive one at a time.
		{"<= <  = <> ><\n", []string{
			"op(<)", "op(=)", "op(<)", "op(=)", "op(<)", "op(>)",
			"op(>)", "op(<)", "newline(\n)", "eof(EOF)",
		}},
		{"LiSt\n", []string{"ident(LiSt)", "newline(\n)", "eof(EOF)"}},
		// REM swallows the rest of the line.
		{"rem  hello, \"world\" 123\n", []string{
			`comment(hello, "world" 123)`, "newline(\n)", "eof(EOF)",
		}},
		{"REM\n", []string{"comment()", "newline(\n)", "eof(EOF)"}},
		// A final line without a newline still scans.
		{"print 1", []string{"ident(print)", "number(1)", "eof(EOF)"}},
	} {
		assert.Equal(t, test.want, tokens(test.input), "input: %q", test.input)
	}
}

func TestScanErrors(t *testing.T) {
	got := tokens("print \"unterminated\n")
	assert.Equal(t, "ident(print)", got[0])
	assert.Equal(t, "error(unterminated string)", got[1])

	got = tokens("print 1 ? 2\n")
	assert.Equal(t, "error(unrecognized character U+003F '?')", got[2])
}

// TestErrorRecovery checks that a lexical error discards only the line
// it occurred on.
func TestErrorRecovery(t *testing.T) {
	got := tokens("print \"oops and then some\nprint 2\n")
	assert.Equal(t, []string{
		"ident(print)",
		"error(unterminated string)",
	}, got)

	// Continue scanning the same scanner past the error.
	context := exec.NewContext(&config.Config{})
	s := scan.New(context, "test", strings.NewReader("\"bad\nprint 2\n"))
	tok := s.Next()
	assert.Equal(t, scan.Error, tok.Type)
	tok = s.Next()
	assert.Equal(t, scan.Identifier, tok.Type)
	assert.Equal(t, "print", tok.Text)
}
