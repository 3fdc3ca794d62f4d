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

package injectevent

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const (
	_red   = "\x1b[31m"
	_reset = "\x1b[0m"
)

// ConsoleLogger is an event logger that attempts to write human-readable
// messages to the console.
//
// Use this during development.
type ConsoleLogger struct {
	W io.Writer
}

var _ Logger = (*ConsoleLogger)(nil)

func (l *ConsoleLogger) logf(msg string, args ...interface{}) {
	fmt.Fprintf(l.W, "[Inject] "+msg+"\n", args...)
}

func (l *ConsoleLogger) errorf(msg string, args ...interface{}) {
	if l.colored() {
		msg = _red + msg + _reset
	}
	l.logf(msg, args...)
}

// colored reports whether W is a terminal.
func (l *ConsoleLogger) colored() bool {
	f, ok := l.W.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// LogEvent logs the given event to the provided writer.
func (l *ConsoleLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Unified:
		if e.Err != nil {
			l.errorf("ERROR\t\tFailed to unify %v: %v", e.TypeName, e.Err)
		} else {
			l.logf("UNIFY\t\t%v(%v) setters: [%v]",
				e.TypeName, strings.Join(e.Params, ", "), strings.Join(e.Setters, ", "))
		}
	case *Autowired:
		l.logf("AUTOWIRE\t%v.%v <= %v", e.TypeName, e.Param, e.Target)
	case *Resolved:
		if e.Err != nil {
			l.errorf("ERROR\t\tFailed to resolve %v: %v", e.TypeName, e.Err)
		} else {
			l.logf("RESOLVE\t\t%v", e.TypeName)
		}
	case *Constructed:
		if e.Err != nil {
			l.errorf("ERROR\t\tFailed to construct %v after %d setters: %v", e.TypeName, e.Setters, e.Err)
		} else {
			l.logf("CONSTRUCT\t%v", e.TypeName)
		}
	case *ServiceCreated:
		if e.Err != nil {
			l.errorf("ERROR\t\tFailed to create service %q: %v", e.Name, e.Err)
		} else {
			l.logf("SERVICE\t\t%q", e.Name)
		}
	case *Aliased:
		l.logf("ALIAS\t\t%q => %q", e.Name, e.Target)
	}
}
