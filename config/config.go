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

package config

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"
)

// An Option configures Load.
type Option interface {
	apply(*loader)
}

type optionFunc func(*loader)

func (f optionFunc) apply(l *loader) { f(l) }

// Files reads definitions from the named YAML files.
func Files(names ...string) Option {
	return optionFunc(func(l *loader) {
		for _, name := range names {
			l.sources = append(l.sources, fileSource(name))
		}
	})
}

// Bytes reads definitions from YAML documents.
func Bytes(yamls ...[]byte) Option {
	return optionFunc(func(l *loader) {
		for i, y := range yamls {
			l.sources = append(l.sources, bytesSource{label: fmt.Sprintf("document %d", i), data: y})
		}
	})
}

// DotEnv reads variables from .env files. As with godotenv.Load, the
// process environment wins over the files and earlier files win over later
// ones.
func DotEnv(names ...string) Option {
	return optionFunc(func(l *loader) {
		l.dotEnv = append(l.dotEnv, names...)
	})
}

// LookupEnv replaces the process environment used for expansion.
func LookupEnv(f func(string) (string, bool)) Option {
	return optionFunc(func(l *loader) {
		l.lookupEnv = f
	})
}

type source interface {
	name() string
	read() ([]byte, error)
}

type fileSource string

func (f fileSource) name() string { return string(f) }

func (f fileSource) read() ([]byte, error) { return ioutil.ReadFile(string(f)) }

type bytesSource struct {
	label string
	data  []byte
}

func (b bytesSource) name() string { return b.label }

func (b bytesSource) read() ([]byte, error) { return b.data, nil }

type loader struct {
	sources   []source
	dotEnv    []string
	lookupEnv func(string) (string, bool)
}

// Load reads, expands and merges the configured sources into Definitions.
//
// Errors in every source are reported together.
func Load(opts ...Option) (*Definitions, error) {
	l := loader{lookupEnv: os.LookupEnv}
	for _, opt := range opts {
		opt.apply(&l)
	}

	env, err := l.env()
	if err != nil {
		return nil, err
	}

	var (
		root yaml.MapSlice
		errs error
	)
	for _, src := range l.sources {
		doc, err := l.parse(src, env)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "cannot load %v", src.name()))
			continue
		}
		root = mergeMapSlices(root, doc)
	}
	if errs != nil {
		return nil, errs
	}

	return decode(root)
}

func (l *loader) env() (*expander, error) {
	dotEnv := make(map[string]string)
	for _, name := range l.dotEnv {
		vars, err := godotenv.Read(name)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot read %v", name)
		}
		for k, v := range vars {
			if _, ok := dotEnv[k]; !ok {
				dotEnv[k] = v
			}
		}
	}

	return &expander{lookup: func(key string) (string, bool) {
		if v, ok := l.lookupEnv(key); ok {
			return v, true
		}
		v, ok := dotEnv[key]
		return v, ok
	}}, nil
}

func (l *loader) parse(src source, env *expander) (yaml.MapSlice, error) {
	data, err := src.read()
	if err != nil {
		return nil, err
	}

	var doc yaml.MapSlice
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	expanded, err := env.expand(doc)
	if err != nil {
		return nil, err
	}
	return expanded.(yaml.MapSlice), nil
}
