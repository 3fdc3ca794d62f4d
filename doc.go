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

// Package inject builds objects from a declarative catalog of types.
//
// Given a type name and optional call-site overrides, a Resolver computes
// the constructor arguments and the setter calls needed to build an
// instance. Values are merged from several layers, in decreasing
// precedence:
//
//   - forced values, keyed by parameter name and shared by every type;
//   - per-type configuration, by parameter position then by name;
//   - the value the parent class binds to a parameter of the same name;
//   - the default declared for the parameter;
//   - with autowiring, a new instance of the parameter's declared type.
//
// Setters are merged from the interfaces a class implements, then the
// traits it uses, then the class itself, on top of the setters of its
// parent.
//
// # Catalog
//
// Go has neither constructor parameter names nor class inheritance, so the
// hierarchy is declared in a Catalog:
//
//	c := inject.NewCatalog()
//	err := c.Register(
//		inject.TypeDescriptor{
//			Name:        "mail.SMTP",
//			Interfaces:  []string{"mail.Transport"},
//			Constructor: NewSMTP,
//			Params:      []inject.Param{{Name: "host"}, inject.Default("port", 25)},
//		},
//		inject.TypeDescriptor{
//			Name:        "mail.Mailer",
//			Constructor: NewMailer,
//			Params:      []inject.Param{{Name: "transport", Type: "mail.SMTP"}},
//		},
//	)
//
// # Deferred values
//
// Any configured value may be a Deferred: a function call, the
// construction of a type or the lookup of a registry entry. Deferred values
// run when the parameter or setter is bound and are never memoized.
//
// # Container
//
// A Container, usually assembled with a Builder, holds named singletons on
// top of a Resolver, supports aliases and may delegate unknown names to
// another Registry, such as a DigRegistry.
package inject
