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
	"reflect"

	"github.com/pkg/errors"
	"go.uber.org/dig"
	"go.uber.org/inject/internal/injectreflect"
)

// DigRegistry exposes the types of a dig container under names, so that it
// can serve as the delegate registry of a Container.
type DigRegistry struct {
	c     *dig.Container
	types map[string]reflect.Type
}

var _ Registry = (*DigRegistry)(nil)

// NewDigRegistry wraps c. A nil c is replaced by a new dig container.
func NewDigRegistry(c *dig.Container) *DigRegistry {
	if c == nil {
		c = dig.New()
	}
	return &DigRegistry{c: c, types: make(map[string]reflect.Type)}
}

// Container returns the wrapped dig container.
func (d *DigRegistry) Container() *dig.Container { return d.c }

// Provide adds constructor to the dig container and names the type it
// returns.
func (d *DigRegistry) Provide(name string, constructor interface{}) error {
	t, err := injectreflect.ResultType(constructor)
	if err != nil {
		return errors.Wrapf(err, "cannot provide %q", name)
	}
	if err := d.c.Provide(constructor); err != nil {
		return errors.Wrapf(err, "cannot provide %q", name)
	}
	d.types[name] = t
	return nil
}

// Has reports whether a type was provided under name.
func (d *DigRegistry) Has(name string) bool {
	_, ok := d.types[name]
	return ok
}

// Get returns the dig value of the type provided under name.
func (d *DigRegistry) Get(name string) (interface{}, error) {
	t, ok := d.types[name]
	if !ok {
		return nil, fmt.Errorf("no type provided as %q", name)
	}

	var out interface{}
	ft := reflect.FuncOf([]reflect.Type{t}, nil, false)
	fn := reflect.MakeFunc(ft, func(args []reflect.Value) []reflect.Value {
		out = args[0].Interface()
		return nil
	})
	if err := d.c.Invoke(fn.Interface()); err != nil {
		return nil, errors.Wrapf(err, "cannot get %q", name)
	}
	return out, nil
}
