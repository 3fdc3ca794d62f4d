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
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/inject/internal/injectreflect"
	"go.uber.org/multierr"
)

// Kind classifies the entries of a Catalog.
type Kind int

const (
	// Class is a constructible type. It may extend one parent class,
	// implement interfaces and use traits.
	Class Kind = iota

	// Interface names a contract. Setters registered for an interface apply
	// to every class implementing it.
	Interface

	// Trait names a reusable bundle of behavior. Setters registered for a
	// trait apply to every class using it.
	Trait
)

func (k Kind) String() string {
	switch k {
	case Class:
		return "class"
	case Interface:
		return "interface"
	case Trait:
		return "trait"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Param describes one constructor parameter.
type Param struct {
	// Name of the parameter. Names are unique within a constructor.
	Name string

	// Type optionally names the class or interface the parameter expects.
	// Autowiring constructs this type when nothing else binds the
	// parameter.
	Type string

	// Default is used when HasDefault is set and no configuration binds
	// the parameter.
	Default    interface{}
	HasDefault bool

	// Ref optionally names a registry entry that satisfies the parameter
	// when annotations are enabled.
	Ref string

	// Position is the index of the parameter in the constructor. It is
	// assigned from declaration order when the type is registered.
	Position int
}

// Default returns a parameter with a default value.
func Default(name string, value interface{}) Param {
	return Param{Name: name, Default: value, HasDefault: true}
}

// TypeDescriptor declares a type of the hierarchy: its ancestry, its
// contracts and, for classes, how to construct it.
type TypeDescriptor struct {
	Name string
	Kind Kind

	// Parent names the class this class extends.
	Parent string

	// Interfaces lists the interfaces a class implements, or the interfaces
	// an interface extends.
	Interfaces []string

	// Traits lists the traits a class or trait uses.
	Traits []string

	// Abstract classes are never constructed.
	Abstract bool

	// Constructor is a function accepting one argument per entry of Params
	// and returning T or (T, error). A class without a constructor and
	// without params inherits both from its nearest ancestor.
	Constructor interface{}
	Params      []Param

	// result is the type returned by Constructor.
	result reflect.Type
}

// Instantiable reports whether the described type can be constructed.
func (d *TypeDescriptor) Instantiable() bool {
	return d.Kind == Class && !d.Abstract && d.Constructor != nil
}

// ResultType returns the Go type produced by the constructor, or nil.
func (d *TypeDescriptor) ResultType() reflect.Type {
	return d.result
}

func (d *TypeDescriptor) clone() *TypeDescriptor {
	c := *d
	c.Interfaces = append([]string(nil), d.Interfaces...)
	c.Traits = append([]string(nil), d.Traits...)
	c.Params = append([]Param(nil), d.Params...)
	return &c
}

// Catalog is the declarative table of every type the resolver knows.
//
// A Catalog is not safe for concurrent registration. Register all types
// before resolving.
type Catalog struct {
	types map[string]*TypeDescriptor
}

// NewCatalog builds an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{types: make(map[string]*TypeDescriptor)}
}

// Register adds types to the catalog. Descriptors are validated first and,
// if any of them is invalid, none are added and all problems are returned
// together.
func (c *Catalog) Register(types ...TypeDescriptor) error {
	var (
		errs  error
		valid = make([]*TypeDescriptor, 0, len(types))
		seen  = make(map[string]struct{}, len(types))
	)
	for _, t := range types {
		d := t.clone()
		if _, ok := seen[d.Name]; ok {
			errs = multierr.Append(errs, fmt.Errorf("type %q registered twice", d.Name))
			continue
		}
		seen[d.Name] = struct{}{}

		if err := c.prepare(d); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		valid = append(valid, d)
	}
	if errs != nil {
		return errs
	}

	for _, d := range valid {
		c.types[d.Name] = d
	}
	return nil
}

// MustRegister is Register that panics on error.
func (c *Catalog) MustRegister(types ...TypeDescriptor) *Catalog {
	if err := c.Register(types...); err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) prepare(d *TypeDescriptor) error {
	if d.Name == "" {
		return errors.New("type name must not be empty")
	}
	if _, ok := c.types[d.Name]; ok {
		return fmt.Errorf("type %q already registered", d.Name)
	}

	var errs error
	if d.Kind != Class {
		if d.Constructor != nil || len(d.Params) > 0 {
			errs = multierr.Append(errs, fmt.Errorf("%v %q cannot declare a constructor", d.Kind, d.Name))
		}
		if d.Parent != "" {
			errs = multierr.Append(errs, fmt.Errorf("%v %q cannot extend a class", d.Kind, d.Name))
		}
	}

	names := make(map[string]struct{}, len(d.Params))
	for i := range d.Params {
		p := &d.Params[i]
		p.Position = i
		if p.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("parameter %d of %q has no name", i, d.Name))
			continue
		}
		if _, ok := names[p.Name]; ok {
			errs = multierr.Append(errs, fmt.Errorf("parameter %q of %q declared twice", p.Name, d.Name))
		}
		names[p.Name] = struct{}{}
	}

	switch {
	case d.Constructor != nil:
		rt, err := injectreflect.ResultType(d.Constructor)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "invalid constructor for %q", d.Name))
			break
		}
		ft := reflect.TypeOf(d.Constructor)
		if ft.IsVariadic() {
			errs = multierr.Append(errs, fmt.Errorf("constructor of %q must not be variadic", d.Name))
		}
		if ft.NumIn() != len(d.Params) {
			errs = multierr.Append(errs, fmt.Errorf(
				"constructor of %q accepts %d arguments but %d params are declared",
				d.Name, ft.NumIn(), len(d.Params)))
		}
		d.result = rt
	case len(d.Params) > 0:
		errs = multierr.Append(errs, fmt.Errorf("%q declares params without a constructor", d.Name))
	}
	return errs
}

// Lookup returns the descriptor registered under name.
func (c *Catalog) Lookup(name string) (*TypeDescriptor, bool) {
	d, ok := c.types[name]
	return d, ok
}

// Names returns the sorted names of all registered types.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.types))
	for name := range c.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the references between registered types: parents must be
// registered classes and ancestor chains must be acyclic. Interfaces and
// traits that are registered must have the matching kind; unregistered ones
// are allowed and act as plain names.
func (c *Catalog) Validate() error {
	var errs error
	for _, name := range c.Names() {
		d := c.types[name]
		if d.Parent != "" {
			switch parent, ok := c.types[d.Parent]; {
			case !ok:
				errs = multierr.Append(errs, fmt.Errorf("parent %q of %q is not registered", d.Parent, name))
			case parent.Kind != Class:
				errs = multierr.Append(errs, fmt.Errorf("parent %q of %q is a %v", d.Parent, name, parent.Kind))
			}
		}
		errs = multierr.Append(errs, c.checkKinds(d, d.Interfaces, Interface))
		errs = multierr.Append(errs, c.checkKinds(d, d.Traits, Trait))
		if d.Kind == Class {
			errs = multierr.Append(errs, c.checkCycle(name))
		}
	}
	return errs
}

func (c *Catalog) checkKinds(d *TypeDescriptor, names []string, want Kind) error {
	var errs error
	for _, n := range names {
		if ref, ok := c.types[n]; ok && ref.Kind != want {
			errs = multierr.Append(errs, fmt.Errorf("%q lists %q as a %v but it is a %v", d.Name, n, want, ref.Kind))
		}
	}
	return errs
}

func (c *Catalog) checkCycle(name string) error {
	seen := map[string]struct{}{}
	for cur := name; cur != ""; {
		if _, ok := seen[cur]; ok {
			return fmt.Errorf("cycle detected in ancestors of %q", name)
		}
		seen[cur] = struct{}{}

		d, ok := c.types[cur]
		if !ok {
			return nil // reported as a missing parent
		}
		cur = d.Parent
	}
	return nil
}
