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
	"reflect"

	"github.com/pkg/errors"
	"go.uber.org/inject/injectevent"
)

// ContainerName is the entry under which a Container holds itself.
const ContainerName = "Container"

// Registry is a source of named values.
type Registry interface {
	// Has reports whether Get can produce a value for name.
	Has(name string) bool

	// Get returns the value of the named entry.
	Get(name string) (interface{}, error)
}

// Container is a Registry of named values backed by a Resolver. Every entry
// is created once and then shared.
//
// Entries are looked up in order among the values already created, the
// aliases, the services set on the container and the delegate registry.
// Any other name is constructed as a type of the Resolver's catalog.
//
// A Container is not safe for concurrent use.
type Container struct {
	resolver *Resolver
	delegate Registry
	aliases  *AliasResolver
	logger   injectevent.Logger

	instances map[string]interface{}
	services  map[string]Deferred
}

var _ Registry = (*Container)(nil)

// NewContainer builds a Container over r. delegate, if non-nil, is
// consulted for names the container does not hold. Unless r already has
// one, the container becomes the registry of r.
func NewContainer(r *Resolver, delegate Registry) *Container {
	c := &Container{
		resolver:  r,
		delegate:  delegate,
		logger:    r.logger,
		instances: make(map[string]interface{}),
		services:  make(map[string]Deferred),
	}
	c.aliases = NewAliasResolver(c)
	c.instances[ContainerName] = c
	if r.registry == nil {
		r.registry = c
	}
	return c
}

// Resolver returns the Resolver backing c.
func (c *Container) Resolver() *Resolver { return c.resolver }

// Delegate returns the delegate registry, or nil.
func (c *Container) Delegate() Registry { return c.delegate }

// Set stores a value under name, replacing any previous entry.
//
// Deferred values and functions are services: they run on the first Get and
// their result is kept. A function is called with no arguments and may
// return a value, or a value and an error. Any other value is stored as is.
func (c *Container) Set(name string, value interface{}) *Container {
	delete(c.instances, name)
	delete(c.services, name)

	switch v := value.(type) {
	case Deferred:
		c.services[name] = v
	default:
		if value != nil && reflect.TypeOf(value).Kind() == reflect.Func {
			c.services[name] = Call(value)
		} else {
			c.instances[name] = value
		}
	}
	return c
}

// Alias records an alias.
func (c *Container) Alias(a Alias) *Container {
	c.aliases.Set(a)
	c.logger.LogEvent(&injectevent.Aliased{Name: a.Name, Target: a.Target})
	return c
}

// Has reports whether name is held by the container or its delegate, or
// names an instantiable type.
func (c *Container) Has(name string) bool {
	if _, ok := c.instances[name]; ok {
		return true
	}
	if _, ok := c.services[name]; ok {
		return true
	}
	if c.delegate != nil && c.delegate.Has(name) {
		return true
	}
	return c.resolver.introspector.Instantiable(name)
}

// Get returns the value of the named entry, creating it on first use.
//
// After a successful Get of a qualified name, the last segment of the name
// becomes an alias for it, unless that alias is already taken.
func (c *Container) Get(name string) (interface{}, error) {
	if v, ok := c.instances[name]; ok {
		return v, nil
	}

	var (
		v   interface{}
		err error
	)
	if c.aliases.IsResolvable(name) {
		v, err = c.aliases.Resolve(name)
	} else {
		v, err = c.create(name)
		c.logger.LogEvent(&injectevent.ServiceCreated{Name: name, Err: err})
	}
	if err != nil {
		return nil, errors.Wrapf(err, "cannot get %q", name)
	}

	c.instances[name] = v
	if a := AliasOf(name); a.Name != name && !c.aliases.Has(a.Name) {
		c.Alias(a)
	}
	return v, nil
}

func (c *Container) create(name string) (interface{}, error) {
	if s, ok := c.services[name]; ok {
		return s.Invoke()
	}
	if c.delegate != nil && c.delegate.Has(name) {
		return c.delegate.Get(name)
	}
	return c.resolver.Construct(name, nil, nil)
}

// Make constructs a new instance of the named type every time it is called.
func (c *Container) Make(name string, params Args, setters Setters) (interface{}, error) {
	return c.resolver.Construct(name, params, setters)
}

// Lazy returns a Deferred getting the named entry from c.
func (c *Container) Lazy(name string) Deferred {
	return Lookup(c, name)
}

// Call returns a Deferred calling method on the named entry with args.
func (c *Container) Call(name, method string, args ...interface{}) Deferred {
	return CallMethod(c.Lazy(name), method, args...)
}
