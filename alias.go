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

	"github.com/pkg/errors"
)

// Alias redirects the registry entry Name to the entry Target.
type Alias struct {
	Name   string
	Target string
}

// AliasOf returns an alias for target named after the last segment of
// target. Segments are separated by '/', '\' or '.'.
//
//	AliasOf("example.com/mail.Mailer") // Alias{Name: "Mailer", ...}
func AliasOf(target string) Alias {
	name := target
	if i := strings.LastIndexAny(target, `/\.`); i >= 0 {
		name = target[i+1:]
	}
	return Alias{Name: name, Target: target}
}

func (a Alias) String() string {
	return fmt.Sprintf("%s => %s", a.Name, a.Target)
}

// AliasResolver resolves aliases through a registry. It holds no values.
type AliasResolver struct {
	registry Registry
	aliases  map[string]string
}

// NewAliasResolver builds an AliasResolver fetching targets from reg.
func NewAliasResolver(reg Registry) *AliasResolver {
	return &AliasResolver{registry: reg, aliases: make(map[string]string)}
}

// Set records an alias. The last alias set for a name wins.
func (a *AliasResolver) Set(alias Alias) {
	a.aliases[alias.Name] = alias.Target
}

// Has reports whether an alias exists for name.
func (a *AliasResolver) Has(name string) bool {
	_, ok := a.aliases[name]
	return ok
}

// Target returns the name the alias points to.
func (a *AliasResolver) Target(name string) (string, bool) {
	target, ok := a.aliases[name]
	return target, ok
}

// IsResolvable reports whether an alias exists for name and the registry
// has its target.
func (a *AliasResolver) IsResolvable(name string) bool {
	target, ok := a.aliases[name]
	return ok && a.registry.Has(target)
}

// Resolve returns the registry value of the target of the alias.
func (a *AliasResolver) Resolve(name string) (interface{}, error) {
	target, ok := a.aliases[name]
	if !ok {
		return nil, errors.Errorf("no alias named %q", name)
	}
	return a.registry.Get(target)
}
