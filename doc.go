// Copyright 2026 The Minibasic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Minibasic is an interpreter for a tiny line-numbered BASIC.
A statement typed on its own runs immediately; a
statement prefixed with a line number is stored in the program, to be
executed in ascending line order by RUN.

Grammar:

	line       := [number] statement
	statement  := PRINT exprList
	            | LET variable '=' expr
	            | IF expr comparator expr THEN statement
	            | GOTO expr
	            | LIST [number ['-' number]]
	            | RUN | END | NEW
	            | REM remark
	exprList   := expr (',' expr)*
	expr       := term (('+' | '-') term)*
	term       := factor (('*' | '/') factor)*
	factor     := ['+' | '-'] primary
	primary    := number | string | variable | '(' expr ')'
	comparator := '=' | '<>' | '><' | '<' | '<=' | '>' | '>='

Keywords are case-insensitive. Variables are the single letters A
through Z, also case-insensitive, integer-valued, and zero until first
assigned. Arithmetic is 64-bit integer arithmetic with truncating
division. Strings are double-quoted, with no escapes; they can be
printed and compared but take part in no other operation.

PRINT separates its values with tabs. LIST reprints the stored program
in a canonical form: keywords and variables uppercase, single spaces
around binary operators and after commas, parentheses exactly where
they were written. The two-character comparators may be split by
spaces (`< =` means `<=`), and `><` is accepted for `<>`.

RUN executes the stored program until END, a fault such as a GOTO to a
missing line, or running past the last line, which is an error after
the fact: the output produced stands. Errors of any kind are reported
once and the session continues with the next input line.

Usage:

	minibasic [options] [file]

With no file, minibasic reads standard input, printing a prompt when
it is a terminal.
*/
package main
