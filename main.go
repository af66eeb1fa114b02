// Copyright 2026 The Minibasic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main // import "minibasic.io/minibasic"

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"minibasic.io/minibasic/config"
	"minibasic.io/minibasic/exec"
	"minibasic.io/minibasic/parse"
	"minibasic.io/minibasic/run"
	"minibasic.io/minibasic/scan"
)

var (
	prompt   = flag.String("prompt", "> ", "interactive prompt")
	maxsteps = flag.Uint64("maxsteps", 0, "maximum statements per RUN; 0 means no limit")
	debug    = flag.String("debug", "", "comma-separated debug flags: tokens, parse, panic")
)

var conf config.Config

func main() {
	log.SetFlags(0)
	log.SetPrefix("minibasic: ")

	flag.Usage = usage
	flag.Parse()

	conf.SetPrompt(*prompt)
	conf.SetMaxSteps(*maxsteps)
	conf.SetOutput(os.Stdout)
	conf.SetErrOutput(os.Stderr)
	for _, d := range strings.Split(*debug, ",") {
		if d != "" {
			conf.SetDebug(d, true)
		}
	}

	name := "<stdin>"
	input := os.Stdin
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	switch flag.NArg() {
	case 0:
	case 1:
		name = flag.Arg(0)
		var err error
		input, err = os.Open(name)
		if err != nil {
			log.Fatal(err)
		}
		interactive = false
	default:
		flag.Usage()
	}

	context := exec.NewContext(&conf)
	scanner := scan.New(context, name, bufio.NewReader(input))
	parser := parse.NewParser(name, scanner, context)
	for !run.Run(parser, context, interactive) {
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: minibasic [options] [file]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	os.Exit(2)
}
