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
	"go.uber.org/inject/internal/injectreflect"
)

// Resolution is everything needed to construct a type: its descriptor, the
// constructor arguments in declaration order and the setters to apply
// afterwards, in order.
type Resolution struct {
	Type    *TypeDescriptor
	Params  []interface{}
	Setters []Setter
}

// Resolve binds the unified tables of the named type with call-site
// overrides. params addresses parameters by position (int keys) or by name
// (string keys); a positional value wins over a named one for the same
// parameter. setters always win over configured setters.
//
// All Deferred values are invoked. No Deferred value is invoked when a
// parameter is missing.
func (r *Resolver) Resolve(name string, params Args, setters Setters) (*Resolution, error) {
	res, err := r.resolve(name, params, setters)
	r.logger.LogEvent(&injectevent.Resolved{TypeName: name, Err: err})
	return res, err
}

func (r *Resolver) resolve(name string, params Args, setters Setters) (*Resolution, error) {
	d, err := r.introspector.Describe(name)
	if err != nil {
		return nil, err
	}

	u, err := r.Unify(name)
	if err != nil {
		return nil, err
	}

	values, err := bindParams(name, u.Params, params)
	if err != nil {
		return nil, err
	}

	bound, err := bindSetters(d, u.Setters, setters)
	if err != nil {
		return nil, err
	}

	return &Resolution{Type: d, Params: values, Setters: bound}, nil
}

// bindParams applies overrides to the unified parameters of typ, fails on
// the first parameter left unresolved and then invokes Deferred values.
func bindParams(typ string, unified *ParamMap, overrides Args) ([]interface{}, error) {
	bindings := make([]Binding, unified.Len())
	for pos := range bindings {
		name, b := unified.At(pos)
		if len(overrides) > 0 {
			if v, ok := overrides[pos]; ok {
				b = asBinding(v)
			} else if v, ok := overrides[name]; ok {
				b = asBinding(v)
			}
		}

		if !b.Resolved() {
			return nil, &MissingParameterError{Type: typ, Param: b.Name()}
		}
		bindings[pos] = b
	}

	values := make([]interface{}, len(bindings))
	for pos, b := range bindings {
		v, err := evaluate(b.Value())
		if err != nil {
			name, _ := unified.At(pos)
			return nil, errors.Wrapf(err, "parameter %q of %q", name, typ)
		}
		values[pos] = v
	}
	return values, nil
}

// bindSetters overlays overrides onto the unified setters of d, checks
// that every method exists on the constructed type and then invokes
// Deferred values.
//
// When the constructor returns an interface, methods missing from the
// interface are checked against the instance by construct instead.
func bindSetters(d *TypeDescriptor, unified *SetterMap, overrides Setters) ([]Setter, error) {
	merged := unified
	if len(overrides) > 0 {
		merged = unified.clone()
		for _, method := range overrides.sortedMethods() {
			merged.set(method, overrides[method])
		}
	}

	rt := d.ResultType()
	for _, method := range merged.methods {
		if !injectreflect.HasMethod(rt, method) && (rt == nil || rt.Kind() != reflect.Interface) {
			return nil, &SetterNotFoundError{Type: d.Name, Method: method}
		}
	}

	bound := make([]Setter, 0, merged.Len())
	for _, method := range merged.methods {
		v, err := evaluate(merged.values[method])
		if err != nil {
			return nil, errors.Wrapf(err, "setter %q of %q", method, d.Name)
		}
		bound = append(bound, Setter{Method: method, Value: v})
	}
	return bound, nil
}

// Construct builds a new instance of the named type: it resolves the type
// with the given overrides, calls the constructor and applies the setters
// in order.
//
// Setters are not transactional. If a setter fails, the setters before it
// stay applied and the instance is discarded.
func (r *Resolver) Construct(name string, params Args, setters Setters) (interface{}, error) {
	obj, applied, err := r.construct(name, params, setters)
	r.logger.LogEvent(&injectevent.Constructed{TypeName: name, Setters: applied, Err: err})
	return obj, err
}

func (r *Resolver) construct(name string, params Args, setters Setters) (interface{}, int, error) {
	d, err := r.introspector.Describe(name)
	if err != nil {
		return nil, 0, err
	}
	if !d.Instantiable() {
		return nil, 0, &NotInstantiableError{Type: name}
	}

	if err := r.enter(name); err != nil {
		return nil, 0, err
	}
	defer r.leave()

	res, err := r.Resolve(name, params, setters)
	if err != nil {
		return nil, 0, err
	}

	obj, err := injectreflect.Call(d.Constructor, res.Params)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "constructor of %q failed", name)
	}

	if rt := d.ResultType(); rt != nil && rt.Kind() == reflect.Interface {
		dyn := reflect.TypeOf(obj)
		for _, s := range res.Setters {
			if !injectreflect.HasMethod(dyn, s.Method) {
				return nil, 0, &SetterNotFoundError{Type: name, Method: s.Method}
			}
		}
	}

	for i, s := range res.Setters {
		if _, err := injectreflect.CallMethod(obj, s.Method, []interface{}{s.Value}); err != nil {
			return nil, i, errors.Wrapf(err, "setter %q of %q failed", s.Method, name)
		}
	}
	return obj, len(res.Setters), nil
}

// enter marks name as under construction, failing if it already is.
func (r *Resolver) enter(name string) error {
	r.buildMu.Lock()
	defer r.buildMu.Unlock()

	for i, n := range r.building {
		if n == name {
			path := append(append([]string(nil), r.building[i:]...), name)
			return &CycleError{Path: path}
		}
	}
	r.building = append(r.building, name)
	return nil
}

func (r *Resolver) leave() {
	r.buildMu.Lock()
	r.building = r.building[:len(r.building)-1]
	r.buildMu.Unlock()
}
