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

package injectreflect

import (
	"fmt"
	"math"
	"reflect"
	"runtime"
)

var _errType = reflect.TypeOf((*error)(nil)).Elem()

// FuncName returns a funcs formatted name
func FuncName(fn interface{}) string {
	fnV := reflect.ValueOf(fn)
	if fnV.Kind() != reflect.Func {
		return "n/a"
	}

	fnName := runtime.FuncForPC(fnV.Pointer()).Name()
	return fmt.Sprintf("%s()", fnName)
}

// IsErr reports whether t implements error.
func IsErr(t reflect.Type) bool {
	return t.Implements(_errType)
}

// ResultType returns the type of the value produced by the constructor fn.
//
// fn must be a function returning either a single non-error value or a value
// followed by an error.
func ResultType(fn interface{}) (reflect.Type, error) {
	ft := reflect.TypeOf(fn)
	if ft == nil || ft.Kind() != reflect.Func {
		return nil, fmt.Errorf("must be a function, got %T", fn)
	}

	switch ft.NumOut() {
	case 1:
		if IsErr(ft.Out(0)) {
			return nil, fmt.Errorf("%v must return a value, not only an error", ft)
		}
	case 2:
		if IsErr(ft.Out(0)) || !IsErr(ft.Out(1)) {
			return nil, fmt.Errorf("%v must return (T, error)", ft)
		}
	default:
		return nil, fmt.Errorf("%v must return T or (T, error)", ft)
	}
	return ft.Out(0), nil
}

// HasMethod reports whether values of type t have an exported method with
// the given name.
func HasMethod(t reflect.Type, name string) bool {
	if t == nil {
		return false
	}
	_, ok := t.MethodByName(name)
	return ok
}

// Call invokes fn with args, converting each argument to the type of the
// matching parameter. See CallValue for the results.
func Call(fn interface{}, args []interface{}) (interface{}, error) {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func {
		return nil, fmt.Errorf("cannot call %T: not a function", fn)
	}
	return CallValue(fv, args)
}

// CallMethod invokes the named method on obj with args.
func CallMethod(obj interface{}, method string, args []interface{}) (interface{}, error) {
	ov := reflect.ValueOf(obj)
	if !ov.IsValid() {
		return nil, fmt.Errorf("cannot call method %q on nil", method)
	}

	mv := ov.MethodByName(method)
	if !mv.IsValid() {
		return nil, fmt.Errorf("%T has no method %q", obj, method)
	}
	return CallValue(mv, args)
}

// CallValue invokes the function value fv with args.
//
// Functions may return nothing, a value, an error, or a value followed by an
// error. A trailing non-nil error is returned as the error of the call.
func CallValue(fv reflect.Value, args []interface{}) (interface{}, error) {
	in, err := Args(fv.Type(), args)
	if err != nil {
		return nil, err
	}

	out := fv.Call(in)
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		if IsErr(out[0].Type()) {
			return nil, asError(out[0])
		}
		return out[0].Interface(), nil
	default:
		last := out[len(out)-1]
		if IsErr(last.Type()) {
			if err := asError(last); err != nil {
				return nil, err
			}
		}
		return out[0].Interface(), nil
	}
}

// Args converts args into call arguments for a function of type ft.
func Args(ft reflect.Type, args []interface{}) ([]reflect.Value, error) {
	numIn := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < numIn-1 {
			return nil, fmt.Errorf("%v needs at least %d arguments, got %d", ft, numIn-1, len(args))
		}
	} else if len(args) != numIn {
		return nil, fmt.Errorf("%v needs %d arguments, got %d", ft, numIn, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var t reflect.Type
		if ft.IsVariadic() && i >= numIn-1 {
			t = ft.In(numIn - 1).Elem()
		} else {
			t = ft.In(i)
		}

		v, err := Convert(arg, t)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %v", i, err)
		}
		in[i] = v
	}
	return in, nil
}

// Convert returns v as a value of type t.
//
// Values are used as-is when assignable. Numeric values convert between
// numeric kinds when the value fits the target exactly, and strings between
// string kinds, which covers values decoded from configuration files. Slices are converted element by element. nil
// becomes the zero value of nillable types.
func Convert(v interface{}, t reflect.Type) (reflect.Value, error) {
	if v == nil {
		switch t.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("cannot use nil as %v", t)
	}

	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return rv, nil
	}

	switch {
	case isNumeric(rv.Kind()) && isNumeric(t.Kind()):
		return convertNumber(rv, t)
	case rv.Kind() == reflect.String && t.Kind() == reflect.String:
		return rv.Convert(t), nil
	case rv.Kind() == reflect.Slice && t.Kind() == reflect.Slice:
		out := reflect.MakeSlice(t, rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			ev, err := Convert(rv.Index(i).Interface(), t.Elem())
			if err != nil {
				return reflect.Value{}, fmt.Errorf("index %d: %v", i, err)
			}
			out.Index(i).Set(ev)
		}
		return out, nil
	}

	return reflect.Value{}, fmt.Errorf("cannot use %v (type %T) as %v", v, v, t)
}

// convertNumber converts between numeric kinds, failing when the target
// cannot hold the value: overflows, negative unsigned values and fractions
// passed as integers.
func convertNumber(rv reflect.Value, t reflect.Type) (reflect.Value, error) {
	out := reflect.New(t).Elem()
	fail := func() (reflect.Value, error) {
		return reflect.Value{}, fmt.Errorf("%v does not fit in %v", rv.Interface(), t)
	}

	switch {
	case isInt(rv.Kind()):
		i := rv.Int()
		switch {
		case isInt(t.Kind()):
			if out.OverflowInt(i) {
				return fail()
			}
			out.SetInt(i)
		case isUint(t.Kind()):
			if i < 0 || out.OverflowUint(uint64(i)) {
				return fail()
			}
			out.SetUint(uint64(i))
		default:
			out.SetFloat(float64(i))
		}
	case isUint(rv.Kind()):
		u := rv.Uint()
		switch {
		case isInt(t.Kind()):
			if u > math.MaxInt64 || out.OverflowInt(int64(u)) {
				return fail()
			}
			out.SetInt(int64(u))
		case isUint(t.Kind()):
			if out.OverflowUint(u) {
				return fail()
			}
			out.SetUint(u)
		default:
			out.SetFloat(float64(u))
		}
	default:
		f := rv.Float()
		switch {
		case isInt(t.Kind()):
			// NaN fails the first test.
			if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 || out.OverflowInt(int64(f)) {
				return fail()
			}
			out.SetInt(int64(f))
		case isUint(t.Kind()):
			if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 || out.OverflowUint(uint64(f)) {
				return fail()
			}
			out.SetUint(uint64(f))
		default:
			if out.OverflowFloat(f) {
				return fail()
			}
			out.SetFloat(f)
		}
	}
	return out, nil
}

func isInt(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func asError(v reflect.Value) error {
	if v.IsNil() {
		return nil
	}
	return v.Interface().(error)
}
