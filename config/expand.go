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
	"os"
	"regexp"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"
)

// _singleRef matches strings made of one variable reference.
var _singleRef = regexp.MustCompile(`^\$(\{[^}]+\}|[A-Za-z0-9_]+)$`)

// expander replaces ${var} and $var in the string values of a document.
type expander struct {
	lookup func(string) (string, bool)
}

func (e *expander) expand(v interface{}) (interface{}, error) {
	switch v := v.(type) {
	case yaml.MapSlice:
		var errs error
		out := make(yaml.MapSlice, len(v))
		for i, item := range v {
			val, err := e.expand(item.Value)
			errs = multierr.Append(errs, err)
			out[i] = yaml.MapItem{Key: item.Key, Value: val}
		}
		return out, errs
	case []interface{}:
		var errs error
		out := make([]interface{}, len(v))
		for i, item := range v {
			val, err := e.expand(item)
			errs = multierr.Append(errs, err)
			out[i] = val
		}
		return out, errs
	case string:
		return e.expandString(v)
	default:
		return v, nil
	}
}

func (e *expander) expandString(s string) (interface{}, error) {
	if !strings.Contains(s, "$") {
		return s, nil
	}

	var errs error
	out := os.Expand(s, func(key string) string {
		if key == "$" {
			return "$"
		}

		name, def, hasDef := key, "", false
		if i := strings.IndexByte(key, ':'); i >= 0 {
			name, def, hasDef = key[:i], key[i+1:], true
		}
		if v, ok := e.lookup(name); ok {
			return v
		}
		if !hasDef {
			errs = multierr.Append(errs, fmt.Errorf("environment variable %q is not set", name))
		}
		return def
	})
	if errs != nil {
		return nil, errs
	}

	if _singleRef.MatchString(s) {
		if v, ok := scalar(out); ok {
			return v, nil
		}
	}
	return out, nil
}

// scalar decodes s as a YAML number or boolean.
func scalar(s string) (interface{}, bool) {
	if s != "true" && s != "false" && strings.TrimLeft(s, "+-0123456789.eE") != "" {
		return nil, false
	}
	// Leading zeros would read as octal.
	if d := strings.TrimLeft(s, "+-"); len(d) > 1 && d[0] == '0' && d[1] != '.' {
		return nil, false
	}

	var v interface{}
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return nil, false
	}
	switch v.(type) {
	case int, int64, uint64, float64, bool:
		return v, true
	default:
		return nil, false
	}
}

// mergeMapSlices merges src into dst. Maps present in both are merged
// deeply; any other value of src replaces the value of dst.
//
// A reference only merges into a $new reference to the same type.
func mergeMapSlices(dst, src yaml.MapSlice) yaml.MapSlice {
	for _, item := range src {
		i := indexOf(dst, item.Key)
		if i < 0 {
			dst = append(dst, item)
			continue
		}

		d, dok := dst[i].Value.(yaml.MapSlice)
		s, sok := item.Value.(yaml.MapSlice)
		if dok && sok && sameKind(d, s) {
			dst[i].Value = mergeMapSlices(d, s)
		} else {
			dst[i].Value = item.Value
		}
	}
	return dst
}

func sameKind(a, b yaml.MapSlice) bool {
	if indexOf(a, _getKey) >= 0 || indexOf(b, _getKey) >= 0 {
		return false
	}

	i, j := indexOf(a, _newKey), indexOf(b, _newKey)
	switch {
	case i < 0 && j < 0:
		return true
	case i < 0 || j < 0:
		return false
	default:
		x, _ := a[i].Value.(string)
		y, _ := b[j].Value.(string)
		return x != "" && x == y
	}
}

func indexOf(m yaml.MapSlice, key interface{}) int {
	for i, item := range m {
		if item.Key == key {
			return i
		}
	}
	return -1
}
