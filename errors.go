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
	"strings"
)

// TypeNotFoundError is returned when a type is not registered in the
// Catalog.
type TypeNotFoundError struct {
	Type string
}

func (e *TypeNotFoundError) Error() string {
	return fmt.Sprintf("type %q not found", e.Type)
}

// MissingParameterError is returned when a constructor parameter received
// no binding from overrides, configuration, ancestors or defaults.
type MissingParameterError struct {
	Type  string
	Param string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing parameter %q of %q", e.Param, e.Type)
}

// SetterNotFoundError is returned when a setter names a method the
// constructed type does not have.
type SetterNotFoundError struct {
	Type   string
	Method string
}

func (e *SetterNotFoundError) Error() string {
	return fmt.Sprintf("setter method %q not found on %q", e.Method, e.Type)
}

// CycleError is returned when constructing a type requires constructing
// that same type again, as with two autowired types depending on each
// other.
type CycleError struct {
	// Path lists the types under construction, starting and ending with
	// the repeated type.
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle detected while constructing: %v", strings.Join(e.Path, " -> "))
}

// NotInstantiableError is returned when constructing an interface, a trait,
// an abstract class or a class without a constructor.
type NotInstantiableError struct {
	Type string
}

func (e *NotInstantiableError) Error() string {
	return fmt.Sprintf("type %q is not instantiable", e.Type)
}
