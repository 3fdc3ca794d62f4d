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

package inject

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/inject/internal/injectreflect"
)

// Deferred is a unit of work that runs only when invoked. Deferred values
// may appear anywhere a parameter or setter value is expected; they are
// invoked when the value is bound.
//
// Deferred values do not memoize: every invocation runs the work again.
type Deferred interface {
	Invoke() (interface{}, error)
}

// Call returns a Deferred invoking fn with args. Arguments that are
// themselves Deferred are invoked first, in order.
//
// fn may return nothing, a value, an error, or a value and an error.
func Call(fn interface{}, args ...interface{}) Deferred {
	return &callable{fn: fn, args: args}
}

type callable struct {
	fn   interface{}
	args []interface{}
}

func (c *callable) Invoke() (interface{}, error) {
	args, err := evaluateAll(c.args)
	if err != nil {
		return nil, err
	}

	out, err := injectreflect.Call(c.fn, args)
	if err != nil {
		return nil, errors.Wrapf(err, "call to %v failed", injectreflect.FuncName(c.fn))
	}
	return out, nil
}

func (c *callable) String() string {
	return fmt.Sprintf("Call(%v)", injectreflect.FuncName(c.fn))
}

// CallMethod returns a Deferred invoking the named method on the value
// produced by target.
func CallMethod(target Deferred, method string, args ...interface{}) Deferred {
	return &methodCall{target: target, method: method, args: args}
}

type methodCall struct {
	target Deferred
	method string
	args   []interface{}
}

func (c *methodCall) Invoke() (interface{}, error) {
	obj, err := c.target.Invoke()
	if err != nil {
		return nil, err
	}

	args, err := evaluateAll(c.args)
	if err != nil {
		return nil, err
	}

	out, err := injectreflect.CallMethod(obj, c.method, args)
	if err != nil {
		return nil, errors.Wrapf(err, "call to %v.%v failed", c.target, c.method)
	}
	return out, nil
}

func (c *methodCall) String() string {
	return fmt.Sprintf("CallMethod(%v, %v)", c.target, c.method)
}

// Construct returns a Deferred constructing a new instance of the named
// type with r, applying params and setters as call-site overrides.
func Construct(r *Resolver, name string, params Args, setters Setters) Deferred {
	return &construction{resolver: r, name: name, params: params, setters: setters}
}

type construction struct {
	resolver *Resolver
	name     string
	params   Args
	setters  Setters
}

func (c *construction) Invoke() (interface{}, error) {
	return c.resolver.Construct(c.name, c.params, c.setters)
}

func (c *construction) String() string {
	return fmt.Sprintf("Construct(%v)", c.name)
}

// Lookup returns a Deferred fetching the named entry from reg. Whether the
// same value is returned every time is up to reg.
func Lookup(reg Registry, name string) Deferred {
	return &lookup{registry: reg, name: name}
}

type lookup struct {
	registry Registry
	name     string
}

func (l *lookup) Invoke() (interface{}, error) {
	return l.registry.Get(l.name)
}

func (l *lookup) String() string {
	return fmt.Sprintf("Lookup(%v)", l.name)
}

// evaluate invokes v if it is Deferred.
func evaluate(v interface{}) (interface{}, error) {
	if d, ok := v.(Deferred); ok {
		return d.Invoke()
	}
	return v, nil
}

func evaluateAll(vs []interface{}) ([]interface{}, error) {
	out := make([]interface{}, len(vs))
	for i, v := range vs {
		ev, err := evaluate(v)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i)
		}
		out[i] = ev
	}
	return out, nil
}
