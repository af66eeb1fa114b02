// Copyright 2026 The Minibasic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/alecthomas/assert/v2"

	"minibasic.io/minibasic/config"
	"minibasic.io/minibasic/exec"
	"minibasic.io/minibasic/value"
)

// catch converts the interpreter's error panic to an error value.
func catch(f func()) (err error) {
	defer func() {
		e := recover()
		if e == nil {
			return
		}
		verr, ok := e.(value.Error)
		if !ok {
			panic(e)
		}
		err = verr
	}()
	f()
	return nil
}

func printOf(exprs ...value.Expr) value.Stmt {
	return &value.PrintStmt{Exprs: exprs}
}

func TestVariables(t *testing.T) {
	c := exec.NewContext(&config.Config{})
	assert.True(t, c.Lookup("X") == nil)
	c.Assign("X", value.Int(15))
	assert.Equal(t, value.Int(15), c.Lookup("X").(value.Int))
	c.Assign("X", value.Int(-3))
	assert.Equal(t, value.Int(-3), c.Lookup("X").(value.Int))
}

func TestStoreReplaceAndList(t *testing.T) {
	conf := &config.Config{}
	c := exec.NewContext(conf)
	c.Store(20, printOf(value.Int(2)))
	c.Store(10, printOf(value.Int(1)))
	c.Store(30, printOf(value.Int(3)))
	c.Store(20, printOf(value.String("two"))) // replaces

	var b bytes.Buffer
	c.List(&b, 0, math.MaxInt)
	assert.Equal(t, "10 PRINT 1\n20 PRINT \"two\"\n30 PRINT 3\n", b.String())

	b.Reset()
	c.List(&b, 20, math.MaxInt)
	assert.Equal(t, "20 PRINT \"two\"\n30 PRINT 3\n", b.String())

	b.Reset()
	c.List(&b, 10, 20)
	assert.Equal(t, "10 PRINT 1\n20 PRINT \"two\"\n", b.String())
}

func TestNew(t *testing.T) {
	conf := &config.Config{}
	c := exec.NewContext(conf)
	c.Assign("A", value.Int(1))
	c.Store(10, printOf(value.Int(1)))
	c.New()
	assert.True(t, c.Lookup("A") == nil)
	var b bytes.Buffer
	c.List(&b, 0, math.MaxInt)
	assert.Equal(t, "", b.String())
}

func TestRunInOrder(t *testing.T) {
	conf := &config.Config{}
	var out bytes.Buffer
	conf.SetOutput(&out)
	c := exec.NewContext(conf)
	// Stored out of order; RUN must go ascending.
	c.Store(30, value.EndStmt{})
	c.Store(10, printOf(value.String("hello")))
	c.Store(20, printOf(value.String("world")))
	assert.NoError(t, catch(c.Run))
	assert.Equal(t, "hello\nworld\n", out.String())
}

func TestRunGoto(t *testing.T) {
	conf := &config.Config{}
	var out bytes.Buffer
	conf.SetOutput(&out)
	c := exec.NewContext(conf)
	c.Store(10, printOf(value.String("hello")))
	c.Store(15, &value.GotoStmt{Target: value.Int(30)})
	c.Store(20, printOf(value.String("world")))
	c.Store(30, value.EndStmt{})
	assert.NoError(t, catch(c.Run))
	assert.Equal(t, "hello\n", out.String())
}

func TestRunUndefinedGoto(t *testing.T) {
	conf := &config.Config{}
	var out bytes.Buffer
	conf.SetOutput(&out)
	c := exec.NewContext(conf)
	c.Store(10, printOf(value.String("hello")))
	c.Store(20, &value.GotoStmt{Target: value.Int(99)})
	c.Store(30, value.EndStmt{})
	err := catch(c.Run)
	assert.Error(t, err)
	assert.Equal(t, "undefined line 99", err.Error())
	// Output produced before the fault stands.
	assert.Equal(t, "hello\n", out.String())
}

func TestRunFellOffEnd(t *testing.T) {
	conf := &config.Config{}
	var out bytes.Buffer
	conf.SetOutput(&out)
	c := exec.NewContext(conf)
	c.Store(10, printOf(value.String("hello")))
	c.Store(20, printOf(value.String("world")))
	err := catch(c.Run)
	assert.Error(t, err)
	assert.Equal(t, "program fell off the end without END", err.Error())
	// The whole program ran before the error was raised.
	assert.Equal(t, "hello\nworld\n", out.String())
}

func TestRunStepLimit(t *testing.T) {
	conf := &config.Config{}
	conf.SetMaxSteps(100)
	c := exec.NewContext(conf)
	c.Store(10, &value.GotoStmt{Target: value.Int(10)})
	err := catch(c.Run)
	assert.Error(t, err)
	assert.Equal(t, "step limit exceeded at line 10", err.Error())
}

func TestRunWhileRunning(t *testing.T) {
	conf := &config.Config{}
	c := exec.NewContext(conf)
	c.Store(10, value.RunStmt{})
	err := catch(c.Run)
	assert.Error(t, err)
	assert.Equal(t, "RUN while running", err.Error())
}

func TestNewWhileRunning(t *testing.T) {
	conf := &config.Config{}
	c := exec.NewContext(conf)
	c.Store(10, value.NewStmt{})
	err := catch(c.Run)
	assert.Error(t, err)
	assert.Equal(t, "NEW while running", err.Error())
}
