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
	"sort"
)

// Binding is the value bound to a constructor parameter: either a value,
// or an unresolved marker carrying the parameter name.
//
// The zero Binding is bound to nil.
type Binding struct {
	value      interface{}
	name       string
	unresolved bool
}

// Bound binds a value.
func Bound(value interface{}) Binding {
	return Binding{value: value}
}

// Unresolved marks the named parameter as lacking a value. Configured
// unresolved markers are ignored and never override anything.
func Unresolved(name string) Binding {
	return Binding{name: name, unresolved: true}
}

// Resolved reports whether the binding holds a value.
func (b Binding) Resolved() bool { return !b.unresolved }

// Value returns the bound value, or nil for an unresolved binding.
func (b Binding) Value() interface{} { return b.value }

// Name returns the parameter name of an unresolved binding.
func (b Binding) Name() string { return b.name }

func (b Binding) String() string {
	if b.unresolved {
		return fmt.Sprintf("Unresolved(%s)", b.name)
	}
	return fmt.Sprintf("Bound(%v)", b.value)
}

// asBinding treats configured values that already are Bindings as such.
func asBinding(v interface{}) Binding {
	if b, ok := v.(Binding); ok {
		return b
	}
	return Bound(v)
}

// ParamMap maps parameter names to bindings in declaration order.
type ParamMap struct {
	names  []string
	values map[string]Binding
}

func newParamMap(size int) *ParamMap {
	return &ParamMap{
		names:  make([]string, 0, size),
		values: make(map[string]Binding, size),
	}
}

func (m *ParamMap) set(name string, b Binding) {
	if _, ok := m.values[name]; !ok {
		m.names = append(m.names, name)
	}
	m.values[name] = b
}

// Len returns the number of parameters.
func (m *ParamMap) Len() int { return len(m.names) }

// Names returns the parameter names in declaration order.
func (m *ParamMap) Names() []string {
	return append([]string(nil), m.names...)
}

// Get returns the binding of the named parameter.
func (m *ParamMap) Get(name string) (Binding, bool) {
	b, ok := m.values[name]
	return b, ok
}

// At returns the name and binding of the parameter at position i.
func (m *ParamMap) At(i int) (string, Binding) {
	name := m.names[i]
	return name, m.values[name]
}

// SetterMap maps setter method names to values in insertion order.
// Overriding a method keeps its original position.
type SetterMap struct {
	methods []string
	values  map[string]interface{}
}

func newSetterMap() *SetterMap {
	return &SetterMap{values: make(map[string]interface{})}
}

func (m *SetterMap) set(method string, value interface{}) {
	if _, ok := m.values[method]; !ok {
		m.methods = append(m.methods, method)
	}
	m.values[method] = value
}

// merge overlays src onto m.
func (m *SetterMap) merge(src *SetterMap) {
	for _, method := range src.methods {
		m.set(method, src.values[method])
	}
}

func (m *SetterMap) clone() *SetterMap {
	c := &SetterMap{
		methods: append([]string(nil), m.methods...),
		values:  make(map[string]interface{}, len(m.values)),
	}
	for k, v := range m.values {
		c.values[k] = v
	}
	return c
}

// Len returns the number of setters.
func (m *SetterMap) Len() int { return len(m.methods) }

// Methods returns the setter methods in application order.
func (m *SetterMap) Methods() []string {
	return append([]string(nil), m.methods...)
}

// Get returns the value configured for method.
func (m *SetterMap) Get(method string) (interface{}, bool) {
	v, ok := m.values[method]
	return v, ok
}

// Args holds explicit constructor parameter values. Keys are either an int,
// addressing a parameter by position, or a string, addressing it by name.
type Args map[interface{}]interface{}

// Setters holds explicit setter values keyed by method name.
type Setters map[string]interface{}

// sortedMethods returns the keys of s in a stable order.
func (s Setters) sortedMethods() []string {
	methods := make([]string, 0, len(s))
	for m := range s {
		methods = append(methods, m)
	}
	sort.Strings(methods)
	return methods
}

// Setter is one bound setter invocation.
type Setter struct {
	Method string
	Value  interface{}
}
