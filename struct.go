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
	"strings"
)

const _tagName = "inject"

// StructType describes a class built by assigning the tagged fields of a
// struct. prototype is a struct or a pointer to one; only its type is used.
// The constructor returns a pointer to a new struct.
//
// Each field tagged `inject:"..."` becomes a parameter, in field order. The
// tag holds the parameter name, followed by optional comma separated
// settings:
//
//	type Mailer struct {
//		Transport Transport `inject:"transport,type=mail.Transport"`
//		Log       *zap.Logger `inject:"log,ref=logger"`
//		Retries   int       `inject:"retries,optional"`
//	}
//
// type names the declared type used by autowiring, ref names the registry
// entry used by annotations, and optional defaults the parameter to the
// zero value of the field. An empty name uses the field name; the tag "-"
// skips the field.
func StructType(name string, prototype interface{}) (TypeDescriptor, error) {
	st := reflect.TypeOf(prototype)
	if st != nil && st.Kind() == reflect.Ptr {
		st = st.Elem()
	}
	if st == nil || st.Kind() != reflect.Struct {
		return TypeDescriptor{}, fmt.Errorf("%q: expected a struct, got %T", name, prototype)
	}

	var (
		params []Param
		fields []int
		in     []reflect.Type
	)
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		tag, ok := f.Tag.Lookup(_tagName)
		if !ok || tag == "-" {
			continue
		}
		if f.PkgPath != "" {
			return TypeDescriptor{}, fmt.Errorf("%q: field %v is unexported", name, f.Name)
		}

		p, err := parseTag(f, tag)
		if err != nil {
			return TypeDescriptor{}, fmt.Errorf("%q: %v", name, err)
		}
		params = append(params, p)
		fields = append(fields, i)
		in = append(in, f.Type)
	}

	ft := reflect.FuncOf(in, []reflect.Type{reflect.PtrTo(st)}, false)
	ctor := reflect.MakeFunc(ft, func(args []reflect.Value) []reflect.Value {
		v := reflect.New(st)
		for i, field := range fields {
			v.Elem().Field(field).Set(args[i])
		}
		return []reflect.Value{v}
	})

	return TypeDescriptor{
		Name:        name,
		Kind:        Class,
		Constructor: ctor.Interface(),
		Params:      params,
	}, nil
}

func parseTag(f reflect.StructField, tag string) (Param, error) {
	parts := strings.Split(tag, ",")
	p := Param{Name: strings.TrimSpace(parts[0])}
	if p.Name == "" {
		p.Name = f.Name
	}

	for _, opt := range parts[1:] {
		key, value := strings.TrimSpace(opt), ""
		if i := strings.IndexByte(key, '='); i >= 0 {
			key, value = key[:i], key[i+1:]
		}

		switch key {
		case "type":
			p.Type = value
		case "ref":
			p.Ref = value
		case "optional":
			p.HasDefault = true
			p.Default = reflect.Zero(f.Type).Interface()
		default:
			return Param{}, fmt.Errorf("field %v: unknown tag option %q", f.Name, key)
		}
	}
	return p, nil
}
