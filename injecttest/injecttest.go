// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package injecttest helps tests build containers: failures fail the test
// and container events are written to the test log.
package injecttest

import (
	"strings"

	"go.uber.org/inject"
	"go.uber.org/inject/injectevent"
)

// TB is a subset of the standard library's testing.TB interface. It's
// satisfied by both *testing.T and *testing.B.
type TB interface {
	Logf(string, ...interface{})
	Errorf(string, ...interface{})
	FailNow()
}

// testPrinter writes lines to the test log.
type testPrinter struct{ TB }

func (p testPrinter) Write(b []byte) (int, error) {
	p.Logf("%s", strings.TrimRight(string(b), "\n"))
	return len(b), nil
}

// NewLogger returns an event logger writing to the test log.
func NewLogger(tb TB) injectevent.Logger {
	return &injectevent.ConsoleLogger{W: testPrinter{tb}}
}

// Container wraps an inject.Container, failing the test on errors.
type Container struct {
	*inject.Container

	tb TB
}

// New builds a container with b, replacing any logger set on b so that
// events are logged to tb. The test fails if the container cannot be built.
func New(tb TB, b *inject.Builder) *Container {
	c, err := b.Logger(NewLogger(tb)).Build()
	if err != nil {
		tb.Errorf("container didn't build: %+v", err)
		tb.FailNow()
	}
	return &Container{Container: c, tb: tb}
}

// MustGet calls Get, failing the test if an error is encountered.
func (c *Container) MustGet(name string) interface{} {
	v, err := c.Get(name)
	if err != nil {
		c.tb.Errorf("cannot get %q: %+v", name, err)
		c.tb.FailNow()
	}
	return v
}

// MustMake calls Make, failing the test if an error is encountered.
func (c *Container) MustMake(name string, params inject.Args, setters inject.Setters) interface{} {
	v, err := c.Make(name, params, setters)
	if err != nil {
		c.tb.Errorf("cannot make %q: %+v", name, err)
		c.tb.FailNow()
	}
	return v
}
