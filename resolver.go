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
	"sync"

	"go.uber.org/inject/injectevent"
)

// Unified holds the parameter and setter tables of a type, merged across
// configuration, ancestors and defaults. Unified tables are cached and must
// not be modified.
type Unified struct {
	Params  *ParamMap
	Setters *SetterMap
}

// An Option configures a Resolver.
type Option interface {
	apply(*Resolver)
	String() string
}

// Autowire enables or disables autowiring: an unresolved parameter whose
// declared type is instantiable is bound to a new instance of that type.
func Autowire(enabled bool) Option {
	return autowireOption(enabled)
}

type autowireOption bool

func (o autowireOption) apply(r *Resolver) { r.autowire = bool(o) }

func (o autowireOption) String() string {
	return fmt.Sprintf("inject.Autowire(%v)", bool(o))
}

// Annotations enables or disables annotation-driven resolution. Parameters
// carrying a Ref are bound to the registry entry it names. Annotations
// imply autowiring for the remaining parameters.
func Annotations(enabled bool) Option {
	return annotationsOption(enabled)
}

type annotationsOption bool

func (o annotationsOption) apply(r *Resolver) { r.annotations = bool(o) }

func (o annotationsOption) String() string {
	return fmt.Sprintf("inject.Annotations(%v)", bool(o))
}

// WithLogger sets the logger receiving resolver events.
func WithLogger(l injectevent.Logger) Option {
	return loggerOption{l}
}

type loggerOption struct{ logger injectevent.Logger }

func (o loggerOption) apply(r *Resolver) { r.logger = o.logger }

func (o loggerOption) String() string {
	return fmt.Sprintf("inject.WithLogger(%v)", o.logger)
}

// WithRegistry sets the registry used to look up annotated parameters.
func WithRegistry(reg Registry) Option {
	return registryOption{reg}
}

type registryOption struct{ reg Registry }

func (o registryOption) apply(r *Resolver) { r.registry = o.reg }

func (o registryOption) String() string {
	return fmt.Sprintf("inject.WithRegistry(%v)", o.reg)
}

// Resolver computes how to construct the types of a Catalog. It merges, in
// decreasing precedence, forced values, per-type configuration, values
// inherited from ancestors and declared defaults, optionally autowiring the
// rest.
//
// Unified tables are cached per type on first use. Configuration changed
// after a type was unified is not observed by that type.
//
// Unify may be called concurrently. Constructions must not run concurrently
// on one Resolver: types under construction are tracked to detect cycles.
type Resolver struct {
	introspector *Introspector
	strategy     strategy
	logger       injectevent.Logger
	registry     Registry

	autowire    bool
	annotations bool

	mu      sync.RWMutex
	forced  map[string]interface{}
	params  map[string]Args
	setters map[string]*SetterMap
	unified map[string]*Unified

	buildMu  sync.Mutex
	building []string
}

// NewResolver builds a Resolver over the types of c. Without options,
// unresolved parameters are reported as missing.
func NewResolver(c *Catalog, opts ...Option) *Resolver {
	r := &Resolver{
		introspector: NewIntrospector(c),
		logger:       injectevent.NopLogger,
		forced:       make(map[string]interface{}),
		params:       make(map[string]Args),
		setters:      make(map[string]*SetterMap),
		unified:      make(map[string]*Unified),
	}
	for _, opt := range opts {
		opt.apply(r)
	}

	switch {
	case r.annotations:
		r.strategy = annotationStrategy{}
	case r.autowire:
		r.strategy = autowireStrategy{}
	default:
		r.strategy = plainStrategy{}
	}
	return r
}

// Introspector returns the Introspector used by r.
func (r *Resolver) Introspector() *Introspector { return r.introspector }

// SetForced replaces the table of forced values. Forced values are keyed by
// parameter name and bind that parameter in every type.
func (r *Resolver) SetForced(values map[string]interface{}) {
	forced := make(map[string]interface{}, len(values))
	for k, v := range values {
		forced[k] = v
	}

	r.mu.Lock()
	r.forced = forced
	r.mu.Unlock()
}

// AddParams merges constructor parameter configuration per type. Keys
// repeated for a type overwrite the earlier values.
func (r *Resolver) AddParams(params map[string]Args) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for typ, args := range params {
		dst, ok := r.params[typ]
		if !ok {
			dst = make(Args, len(args))
			r.params[typ] = dst
		}
		for k, v := range args {
			dst[k] = v
		}
	}
}

// AddSetters merges setter configuration per type, interface or trait.
// Methods new to a type are appended in lexical order; use AddSetter to
// control the order in which setters are applied.
func (r *Resolver) AddSetters(setters map[string]Setters) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for typ, s := range setters {
		for _, method := range s.sortedMethods() {
			r.addSetterLocked(typ, method, s[method])
		}
	}
}

// AddSetter configures one setter for a type, interface or trait.
func (r *Resolver) AddSetter(typ, method string, value interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.addSetterLocked(typ, method, value)
}

func (r *Resolver) addSetterLocked(typ, method string, value interface{}) {
	m, ok := r.setters[typ]
	if !ok {
		m = newSetterMap()
		r.setters[typ] = m
	}
	m.set(method, value)
}

// Unify returns the unified parameter and setter tables of the named type.
//
// Ancestors are unified first, root to leaf, and every level is cached.
func (r *Resolver) Unify(name string) (*Unified, error) {
	if u, ok := r.cached(name); ok {
		return u, nil
	}

	chain, err := r.introspector.Ancestors(name)
	if err != nil {
		r.logger.LogEvent(&injectevent.Unified{TypeName: name, Err: err})
		return nil, err
	}

	parent := &Unified{Params: newParamMap(0), Setters: newSetterMap()}
	var parentName string
	for i := len(chain) - 1; i >= 0; i-- {
		typ := chain[i]
		if u, ok := r.cached(typ); ok {
			parent, parentName = u, typ
			continue
		}

		u, err := r.unifyLevel(typ, parentName, parent)
		if err != nil {
			r.logger.LogEvent(&injectevent.Unified{TypeName: typ, Err: err})
			return nil, err
		}
		parent, parentName = r.publish(typ, u), typ
		r.logger.LogEvent(&injectevent.Unified{
			TypeName: typ,
			Params:   u.Params.Names(),
			Setters:  u.Setters.Methods(),
		})
	}
	return parent, nil
}

func (r *Resolver) cached(name string) (*Unified, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.unified[name]
	return u, ok
}

// publish stores a fully built entry unless another caller published one
// first, and returns the stored entry.
func (r *Resolver) publish(name string, u *Unified) *Unified {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.unified[name]; ok {
		return existing
	}
	r.unified[name] = u
	return u
}

func (r *Resolver) unifyLevel(typ, parentName string, parent *Unified) (*Unified, error) {
	d, err := r.introspector.Describe(typ)
	if err != nil {
		return nil, err
	}

	params := newParamMap(len(d.Params))
	for _, p := range d.Params {
		b := r.unifyParam(typ, p, parent.Params)
		if !b.Resolved() {
			b = r.strategy.unresolved(r, typ, p)
		}
		params.set(p.Name, b)
	}

	setters, err := r.unifySetters(typ, parentName, parent.Setters)
	if err != nil {
		return nil, err
	}
	return &Unified{Params: params, Setters: setters}, nil
}

// unifyParam binds p from forced values, per-type configuration by
// position then by name, the parent's binding and the declared default, in
// that order.
func (r *Resolver) unifyParam(typ string, p Param, parent *ParamMap) Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if v, ok := r.forced[p.Name]; ok {
		return asBinding(v)
	}

	if args, ok := r.params[typ]; ok {
		if v, ok := args[p.Position]; ok {
			if b := asBinding(v); b.Resolved() {
				return b
			}
		}
		if v, ok := args[p.Name]; ok {
			if b := asBinding(v); b.Resolved() {
				return b
			}
		}
	}

	if b, ok := parent.Get(p.Name); ok && b.Resolved() {
		return b
	}

	if p.HasDefault {
		return Bound(p.Default)
	}
	return Unresolved(p.Name)
}

// unifySetters overlays, onto the parent's setters, the setters of the
// interfaces and then the traits newly introduced by typ, and finally the
// setters of typ itself. Interfaces and traits already introduced by an
// ancestor are part of the parent's table.
func (r *Resolver) unifySetters(typ, parentName string, parent *SetterMap) (*SetterMap, error) {
	ifaces, err := r.introduced(typ, parentName, r.introspector.Interfaces)
	if err != nil {
		return nil, err
	}
	traits, err := r.introduced(typ, parentName, r.introspector.Traits)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	setters := parent.clone()
	for _, name := range ifaces {
		if s, ok := r.setters[name]; ok {
			setters.merge(s)
		}
	}
	for _, name := range traits {
		if s, ok := r.setters[name]; ok {
			setters.merge(s)
		}
	}
	if s, ok := r.setters[typ]; ok {
		setters.merge(s)
	}
	return setters, nil
}

// introduced returns the names list(typ) holds that list(parentName) does
// not.
func (r *Resolver) introduced(typ, parentName string, list func(string) ([]string, error)) ([]string, error) {
	names, err := list(typ)
	if err != nil || parentName == "" {
		return names, err
	}

	inherited, err := list(parentName)
	if err != nil {
		return nil, err
	}
	var skip nameSet
	skip.add(inherited...)

	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := skip.seen[n]; !ok {
			out = append(out, n)
		}
	}
	return out, nil
}
