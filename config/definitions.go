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

	"github.com/pkg/errors"
	"go.uber.org/inject"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"
)

const (
	_newKey = "$new"
	_getKey = "$get"
)

// Definitions is the content of merged definitions files.
type Definitions struct {
	// Autowire and Annotations are nil unless set.
	Autowire    *bool
	Annotations *bool

	Forced   map[string]interface{}
	Params   map[string]inject.Args
	Setters  []Setter
	Services []Service
	Aliases  []inject.Alias
}

// Setter configures one setter of a type, an interface or a trait.
type Setter struct {
	Type   string
	Method string
	Value  interface{}
}

// Service is a named container entry.
type Service struct {
	Name  string
	Value interface{}
}

// Apply configures b with the definitions.
func (d *Definitions) Apply(b *inject.Builder) *inject.Builder {
	if d.Autowire != nil {
		b.UseAutowiring(*d.Autowire)
	}
	if d.Annotations != nil {
		b.UseAnnotations(*d.Annotations)
	}
	if len(d.Forced) > 0 {
		b.Definitions(d.Forced)
	}
	b.Params(d.Params)
	for _, s := range d.Setters {
		b.Setter(s.Type, s.Method, s.Value)
	}
	for _, s := range d.Services {
		b.Service(s.Name, s.Value)
	}
	for _, a := range d.Aliases {
		b.Alias(a)
	}
	return b
}

func decode(root yaml.MapSlice) (*Definitions, error) {
	d := &Definitions{
		Forced: make(map[string]interface{}),
		Params: make(map[string]inject.Args),
	}

	var errs error
	for _, item := range root {
		key, _ := item.Key.(string)
		var err error
		switch key {
		case "autowire":
			d.Autowire, err = decodeBool(item.Value)
		case "annotations":
			d.Annotations, err = decodeBool(item.Value)
		case "forced":
			err = d.decodeForced(item.Value)
		case "params":
			err = d.decodeParams(item.Value)
		case "setters":
			err = d.decodeSetters(item.Value)
		case "services":
			err = d.decodeServices(item.Value)
		case "aliases":
			err = d.decodeAliases(item.Value)
		default:
			errs = multierr.Append(errs, fmt.Errorf("unknown key %v", item.Key))
			continue
		}
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "%v", item.Key))
		}
	}
	if errs != nil {
		return nil, errs
	}
	return d, nil
}

func decodeBool(v interface{}) (*bool, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("expected a boolean, got %v", v)
	}
	return &b, nil
}

// entries returns the items of a map, keyed by string.
func entries(v interface{}) ([]yaml.MapItem, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := v.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("expected a map, got %v", v)
	}
	for _, item := range m {
		if _, ok := item.Key.(string); !ok {
			return nil, fmt.Errorf("expected a name, got %v", item.Key)
		}
	}
	return m, nil
}

func (d *Definitions) decodeForced(v interface{}) error {
	items, err := entries(v)
	if err != nil {
		return err
	}

	var errs error
	for _, item := range items {
		val, err := value(item.Value)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "%v", item.Key))
			continue
		}
		d.Forced[item.Key.(string)] = val
	}
	return errs
}

func (d *Definitions) decodeParams(v interface{}) error {
	items, err := entries(v)
	if err != nil {
		return err
	}

	var errs error
	for _, item := range items {
		typ := item.Key.(string)
		args, err := decodeArgs(item.Value)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "%v", typ))
			continue
		}

		dst, ok := d.Params[typ]
		if !ok {
			dst = make(inject.Args, len(args))
			d.Params[typ] = dst
		}
		for k, v := range args {
			dst[k] = v
		}
	}
	return errs
}

func (d *Definitions) decodeSetters(v interface{}) error {
	items, err := entries(v)
	if err != nil {
		return err
	}

	var errs error
	for _, item := range items {
		typ := item.Key.(string)
		methods, err := entries(item.Value)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "%v", typ))
			continue
		}
		for _, m := range methods {
			val, err := value(m.Value)
			if err != nil {
				errs = multierr.Append(errs, errors.Wrapf(err, "%v.%v", typ, m.Key))
				continue
			}
			d.Setters = append(d.Setters, Setter{Type: typ, Method: m.Key.(string), Value: val})
		}
	}
	return errs
}

func (d *Definitions) decodeServices(v interface{}) error {
	items, err := entries(v)
	if err != nil {
		return err
	}

	var errs error
	for _, item := range items {
		val, err := value(item.Value)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "%v", item.Key))
			continue
		}
		d.Services = append(d.Services, Service{Name: item.Key.(string), Value: val})
	}
	return errs
}

func (d *Definitions) decodeAliases(v interface{}) error {
	items, err := entries(v)
	if err != nil {
		return err
	}

	var errs error
	for _, item := range items {
		target, ok := item.Value.(string)
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("%v: expected a name, got %v", item.Key, item.Value))
			continue
		}
		d.Aliases = append(d.Aliases, inject.Alias{Name: item.Key.(string), Target: target})
	}
	return errs
}

// decodeArgs reads constructor parameters keyed by name or position.
func decodeArgs(v interface{}) (inject.Args, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := v.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("expected a map, got %v", v)
	}

	var errs error
	args := make(inject.Args, len(m))
	for _, item := range m {
		switch item.Key.(type) {
		case string, int:
		default:
			errs = multierr.Append(errs, fmt.Errorf("expected a name or a position, got %v", item.Key))
			continue
		}

		val, err := value(item.Value)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "%v", item.Key))
			continue
		}
		args[item.Key] = val
	}
	return args, errs
}

func decodeSetterValues(v interface{}) (inject.Setters, error) {
	items, err := entries(v)
	if err != nil || len(items) == 0 {
		return nil, err
	}

	var errs error
	setters := make(inject.Setters, len(items))
	for _, item := range items {
		val, err := value(item.Value)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "%v", item.Key))
			continue
		}
		setters[item.Key.(string)] = val
	}
	return setters, errs
}

// value turns a decoded YAML value into a definition value. $new and $get
// maps become references.
func value(v interface{}) (interface{}, error) {
	m, ok := v.(yaml.MapSlice)
	if !ok {
		return plain(v)
	}

	if i := indexOf(m, _getKey); i >= 0 {
		name, ok := m[i].Value.(string)
		if !ok || len(m) != 1 {
			return nil, fmt.Errorf("%v expects a single entry name", _getKey)
		}
		return inject.GetRef(name), nil
	}

	i := indexOf(m, _newKey)
	if i < 0 {
		return plain(v)
	}
	typ, ok := m[i].Value.(string)
	if !ok {
		return nil, fmt.Errorf("%v expects a type name, got %v", _newKey, m[i].Value)
	}

	var (
		params  inject.Args
		setters inject.Setters
		errs    error
	)
	for _, item := range m {
		var err error
		switch item.Key {
		case _newKey:
		case "params":
			params, err = decodeArgs(item.Value)
		case "setters":
			setters, err = decodeSetterValues(item.Value)
		default:
			err = fmt.Errorf("unknown key %v", item.Key)
		}
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "%v %v", _newKey, typ))
		}
	}
	if errs != nil {
		return nil, errs
	}
	return inject.NewRef(typ, params, setters), nil
}

// plain converts maps and lists holding no references into Go maps and
// slices.
func plain(v interface{}) (interface{}, error) {
	switch v := v.(type) {
	case yaml.MapSlice:
		if indexOf(v, _newKey) >= 0 || indexOf(v, _getKey) >= 0 {
			return nil, errors.New("references cannot be nested in plain values")
		}
		var errs error
		out := make(map[string]interface{}, len(v))
		for _, item := range v {
			val, err := plain(item.Value)
			errs = multierr.Append(errs, err)
			out[fmt.Sprint(item.Key)] = val
		}
		return out, errs
	case []interface{}:
		var errs error
		out := make([]interface{}, len(v))
		for i, item := range v {
			val, err := plain(item)
			errs = multierr.Append(errs, err)
			out[i] = val
		}
		return out, errs
	default:
		return v, nil
	}
}
