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

import "go.uber.org/inject/injectevent"

// strategy decides what an otherwise unresolved parameter is bound to.
type strategy interface {
	unresolved(r *Resolver, typ string, p Param) Binding
}

// plainStrategy leaves unresolved parameters unresolved.
type plainStrategy struct{}

func (plainStrategy) unresolved(_ *Resolver, _ string, p Param) Binding {
	return Unresolved(p.Name)
}

// autowireStrategy binds parameters that declare a type: first to a value
// configured under the type name, forced or for typ, then to a deferred
// construction of that type.
type autowireStrategy struct{}

func (autowireStrategy) unresolved(r *Resolver, typ string, p Param) Binding {
	if p.Type == "" {
		return Unresolved(p.Name)
	}

	if b, ok := r.configuredFor(typ, p.Type); ok {
		return b
	}

	if r.introspector.Instantiable(p.Type) {
		r.logger.LogEvent(&injectevent.Autowired{TypeName: typ, Param: p.Name, Target: p.Type})
		return Bound(Construct(r, p.Type, nil, nil))
	}
	return Unresolved(p.Name)
}

// annotationStrategy binds parameters carrying a Ref to the registry entry
// it names, and autowires the others.
type annotationStrategy struct{}

func (annotationStrategy) unresolved(r *Resolver, typ string, p Param) Binding {
	if p.Ref != "" && r.registry != nil {
		return Bound(Lookup(r.registry, p.Ref))
	}
	return autowireStrategy{}.unresolved(r, typ, p)
}

// configuredFor returns the value configured under the type name key,
// either as a forced value or in the configuration of typ.
func (r *Resolver) configuredFor(typ, key string) (Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if v, ok := r.forced[key]; ok {
		return asBinding(v), true
	}
	if v, ok := r.params[typ][key]; ok {
		if b := asBinding(v); b.Resolved() {
			return b, true
		}
	}
	return Binding{}, false
}
