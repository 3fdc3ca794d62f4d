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
	"go.uber.org/inject/injectevent"
)

// Reference describes a Deferred value before the container exists. A
// Builder turns references found in definitions, parameters, setters and
// services into Deferred values bound to the container it builds.
type Reference struct {
	// Get names a registry entry. When empty, New names a type to
	// construct with Params and Setters.
	Get string

	New     string
	Params  Args
	Setters Setters
}

// NewRef references a new instance of the named type.
func NewRef(typ string, params Args, setters Setters) Reference {
	return Reference{New: typ, Params: params, Setters: setters}
}

// GetRef references a registry entry.
func GetRef(name string) Reference {
	return Reference{Get: name}
}

func (r Reference) String() string {
	if r.Get != "" {
		return fmt.Sprintf("GetRef(%v)", r.Get)
	}
	return fmt.Sprintf("NewRef(%v)", r.New)
}

// Builder assembles a Container and its Resolver.
//
// Autowiring is enabled unless disabled with UseAutowiring(false).
// Annotations take precedence over autowiring when enabled.
type Builder struct {
	catalog     *Catalog
	forced      map[string]interface{}
	params      map[string]Args
	setters     []typeSetter
	services    []namedValue
	aliases     []Alias
	delegate    Registry
	logger      injectevent.Logger
	autowire    bool
	annotations bool
}

type typeSetter struct {
	typ, method string
	value       interface{}
}

type namedValue struct {
	name  string
	value interface{}
}

// NewBuilder starts building a container for the types of c.
func NewBuilder(c *Catalog) *Builder {
	return &Builder{
		catalog:  c,
		forced:   make(map[string]interface{}),
		params:   make(map[string]Args),
		logger:   injectevent.NopLogger,
		autowire: true,
	}
}

// Definitions sets the forced values, keyed by parameter name or, for
// autowiring, by type name.
func (b *Builder) Definitions(defs map[string]interface{}) *Builder {
	b.forced = make(map[string]interface{}, len(defs))
	for k, v := range defs {
		b.forced[k] = v
	}
	return b
}

// Params merges per-type constructor parameter configuration.
func (b *Builder) Params(params map[string]Args) *Builder {
	for typ, args := range params {
		dst, ok := b.params[typ]
		if !ok {
			dst = make(Args, len(args))
			b.params[typ] = dst
		}
		for k, v := range args {
			dst[k] = v
		}
	}
	return b
}

// Setter configures a setter for a type, an interface or a trait. Setters
// are applied in the order they are configured.
func (b *Builder) Setter(typ, method string, value interface{}) *Builder {
	b.setters = append(b.setters, typeSetter{typ: typ, method: method, value: value})
	return b
}

// Service sets a container entry, as Container.Set does.
func (b *Builder) Service(name string, value interface{}) *Builder {
	b.services = append(b.services, namedValue{name: name, value: value})
	return b
}

// Alias records an alias in the container.
func (b *Builder) Alias(a Alias) *Builder {
	b.aliases = append(b.aliases, a)
	return b
}

// UseAutowiring enables or disables autowiring.
func (b *Builder) UseAutowiring(enabled bool) *Builder {
	b.autowire = enabled
	return b
}

// UseAnnotations enables or disables annotation-driven resolution.
func (b *Builder) UseAnnotations(enabled bool) *Builder {
	b.annotations = enabled
	return b
}

// Delegate sets the registry consulted for names the container does not
// hold.
func (b *Builder) Delegate(reg Registry) *Builder {
	b.delegate = reg
	return b
}

// Logger sets the event logger.
func (b *Builder) Logger(l injectevent.Logger) *Builder {
	b.logger = l
	return b
}

// Build validates the catalog and returns the configured container.
func (b *Builder) Build() (*Container, error) {
	if err := b.catalog.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid catalog")
	}

	r := NewResolver(b.catalog,
		Autowire(b.autowire),
		Annotations(b.annotations),
		WithLogger(b.logger),
	)
	c := NewContainer(r, b.delegate)

	forced := make(map[string]interface{}, len(b.forced))
	for k, v := range b.forced {
		forced[k] = c.deref(v)
	}
	r.SetForced(forced)

	params := make(map[string]Args, len(b.params))
	for typ, args := range b.params {
		params[typ] = c.derefArgs(args)
	}
	r.AddParams(params)

	for _, s := range b.setters {
		r.AddSetter(s.typ, s.method, c.deref(s.value))
	}
	for _, s := range b.services {
		c.Set(s.name, c.deref(s.value))
	}
	for _, a := range b.aliases {
		c.Alias(a)
	}
	return c, nil
}

// deref turns references into Deferred values bound to c.
func (c *Container) deref(v interface{}) interface{} {
	ref, ok := v.(Reference)
	if !ok {
		return v
	}
	if ref.Get != "" {
		return c.Lazy(ref.Get)
	}

	var setters Setters
	if len(ref.Setters) > 0 {
		setters = make(Setters, len(ref.Setters))
		for k, v := range ref.Setters {
			setters[k] = c.deref(v)
		}
	}
	return Construct(c.resolver, ref.New, c.derefArgs(ref.Params), setters)
}

func (c *Container) derefArgs(args Args) Args {
	if len(args) == 0 {
		return nil
	}
	out := make(Args, len(args))
	for k, v := range args {
		out[k] = c.deref(v)
	}
	return out
}
