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
)

// Introspector answers structural questions about the types of a Catalog.
// Every answer is computed once per type name and kept for the lifetime of
// the Introspector.
type Introspector struct {
	catalog *Catalog

	mu          sync.RWMutex
	descriptors map[string]*TypeDescriptor
	ancestors   map[string][]string
	traits      map[string][]string
	interfaces  map[string][]string
}

// NewIntrospector builds an Introspector over c.
func NewIntrospector(c *Catalog) *Introspector {
	return &Introspector{
		catalog:     c,
		descriptors: make(map[string]*TypeDescriptor),
		ancestors:   make(map[string][]string),
		traits:      make(map[string][]string),
		interfaces:  make(map[string][]string),
	}
}

// Describe returns the effective descriptor of the named type. A class that
// declares neither a constructor nor params carries the constructor and
// params of its nearest ancestor that does.
func (i *Introspector) Describe(name string) (*TypeDescriptor, error) {
	i.mu.RLock()
	d, ok := i.descriptors[name]
	i.mu.RUnlock()
	if ok {
		return d, nil
	}

	d, err := i.describe(name)
	if err != nil {
		return nil, err
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	if existing, ok := i.descriptors[name]; ok {
		return existing, nil
	}
	i.descriptors[name] = d
	return d, nil
}

func (i *Introspector) describe(name string) (*TypeDescriptor, error) {
	d, ok := i.catalog.Lookup(name)
	if !ok {
		return nil, &TypeNotFoundError{Type: name}
	}

	d = d.clone()
	if d.Kind != Class || d.Constructor != nil || len(d.Params) > 0 {
		return d, nil
	}

	chain, err := i.Ancestors(name)
	if err != nil {
		return nil, err
	}
	for _, ancestor := range chain[1:] {
		a, _ := i.catalog.Lookup(ancestor)
		if a.Constructor != nil {
			d.Constructor = a.Constructor
			d.Params = append([]Param(nil), a.Params...)
			d.result = a.result
			break
		}
	}
	return d, nil
}

// Instantiable reports whether the named type exists and can be
// constructed.
func (i *Introspector) Instantiable(name string) bool {
	d, err := i.Describe(name)
	return err == nil && d.Instantiable()
}

// Ancestors returns the named type followed by its parent, grandparent and
// so on up to the root of its hierarchy.
func (i *Introspector) Ancestors(name string) ([]string, error) {
	return i.memo(i.ancestors, name, i.buildAncestors)
}

func (i *Introspector) buildAncestors(name string) ([]string, error) {
	var (
		chain []string
		seen  = make(map[string]struct{})
	)
	for cur := name; cur != ""; {
		if _, ok := seen[cur]; ok {
			return nil, fmt.Errorf("cycle detected in ancestors of %q", name)
		}
		seen[cur] = struct{}{}

		d, ok := i.catalog.Lookup(cur)
		if !ok {
			return nil, &TypeNotFoundError{Type: cur}
		}
		chain = append(chain, cur)
		cur = d.Parent
	}
	return chain, nil
}

// Traits returns the traits used by the named type and its ancestors,
// followed by the traits those traits use.
//
// Only one extra level is flattened: traits used by traits of traits are
// not included.
func (i *Introspector) Traits(name string) ([]string, error) {
	return i.memo(i.traits, name, i.buildTraits)
}

func (i *Introspector) buildTraits(name string) ([]string, error) {
	chain, err := i.Ancestors(name)
	if err != nil {
		return nil, err
	}

	var s nameSet
	for _, class := range chain {
		d, _ := i.catalog.Lookup(class)
		s.add(d.Traits...)
	}

	direct := append([]string(nil), s.names...)
	for _, trait := range direct {
		if d, ok := i.catalog.Lookup(trait); ok {
			s.add(d.Traits...)
		}
	}
	return s.names, nil
}

// Interfaces returns the interfaces implemented by the named type and its
// ancestors, including every interface those interfaces extend.
func (i *Introspector) Interfaces(name string) ([]string, error) {
	return i.memo(i.interfaces, name, i.buildInterfaces)
}

func (i *Introspector) buildInterfaces(name string) ([]string, error) {
	chain, err := i.Ancestors(name)
	if err != nil {
		return nil, err
	}

	var s nameSet
	for _, class := range chain {
		d, _ := i.catalog.Lookup(class)
		s.add(d.Interfaces...)
	}

	// s.names grows while we walk it.
	for idx := 0; idx < len(s.names); idx++ {
		if d, ok := i.catalog.Lookup(s.names[idx]); ok {
			s.add(d.Interfaces...)
		}
	}
	return s.names, nil
}

// memo returns cache[name], building and publishing it if needed. The entry
// is built without holding the lock; a racing builder may win, in which
// case its entry is kept.
func (i *Introspector) memo(
	cache map[string][]string,
	name string,
	build func(string) ([]string, error),
) ([]string, error) {
	i.mu.RLock()
	names, ok := cache[name]
	i.mu.RUnlock()
	if ok {
		return names, nil
	}

	names, err := build(name)
	if err != nil {
		return nil, err
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	if existing, ok := cache[name]; ok {
		return existing, nil
	}
	cache[name] = names
	return names, nil
}

// nameSet is an insertion ordered set of names.
type nameSet struct {
	names []string
	seen  map[string]struct{}
}

func (s *nameSet) add(names ...string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	for _, n := range names {
		if _, ok := s.seen[n]; ok {
			continue
		}
		s.seen[n] = struct{}{}
		s.names = append(s.names, n)
	}
}
