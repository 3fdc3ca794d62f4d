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

// Event defines an event emitted by the resolver or the container.
type Event interface {
	event() // Only injectevent can implement this interface.
}

// Passing events by type to make Event hashable in the future.
func (*Unified) event()        {}
func (*Autowired) event()      {}
func (*Resolved) event()       {}
func (*Constructed) event()    {}
func (*ServiceCreated) event() {}
func (*Aliased) event()        {}

// Unified is emitted after the parameter and setter tables of a type have
// been computed. It is not emitted for cached tables.
type Unified struct {
	// TypeName is the name of the unified type.
	TypeName string

	// Params lists the constructor parameter names in declaration order.
	Params []string

	// Setters lists the setter methods in the order they will be applied.
	Setters []string

	// Err is non-nil if the type could not be unified.
	Err error
}

// Autowired is emitted when an unresolved parameter is satisfied by
// constructing its declared type.
type Autowired struct {
	TypeName string
	Param    string
	Target   string
}

// Resolved is emitted after call-site overrides were bound for a type.
type Resolved struct {
	TypeName string
	Err      error
}

// Constructed is emitted after an instance was built and its setters
// applied.
type Constructed struct {
	TypeName string

	// Setters is the number of setters applied, including the ones applied
	// before a failing setter.
	Setters int
	Err     error
}

// ServiceCreated is emitted when the container creates the singleton value
// of a named entry.
type ServiceCreated struct {
	Name string
	Err  error
}

// Aliased is emitted when the container records an alias.
type Aliased struct {
	Name   string
	Target string
}
