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

package inject_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/inject"
)

func TestCall(t *testing.T) {
	t.Parallel()

	t.Run("NestedArguments", func(t *testing.T) {
		t.Parallel()

		d := inject.Call(strings.Join,
			inject.Call(func() []string { return []string{"a", "b"} }),
			"-",
		)
		out, err := d.Invoke()
		require.NoError(t, err)
		assert.Equal(t, "a-b", out)
	})

	t.Run("NotMemoized", func(t *testing.T) {
		t.Parallel()

		d := inject.Call(func() *otherFixture { return &otherFixture{} })
		first, err := d.Invoke()
		require.NoError(t, err)
		second, err := d.Invoke()
		require.NoError(t, err)
		assert.NotSame(t, first, second)
	})

	t.Run("ErrorOnly", func(t *testing.T) {
		t.Parallel()

		out, err := inject.Call(func() error { return nil }).Invoke()
		require.NoError(t, err)
		assert.Nil(t, out)

		_, err = inject.Call(func() error { return errors.New("great sadness") }).Invoke()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "great sadness")
	})

	t.Run("ArgumentFailure", func(t *testing.T) {
		t.Parallel()

		var called bool
		d := inject.Call(func(string) { called = true },
			inject.Call(func() (string, error) { return "", errors.New("great sadness") }),
		)
		_, err := d.Invoke()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "argument 0")
		assert.False(t, called)
	})

	t.Run("WrongArity", func(t *testing.T) {
		t.Parallel()

		_, err := inject.Call(func(a, b string) {}, "a").Invoke()
		assert.Error(t, err)
	})

	t.Run("NotAFunction", func(t *testing.T) {
		t.Parallel()

		_, err := inject.Call(42).Invoke()
		assert.Error(t, err)
	})
}

func TestCallMethod(t *testing.T) {
	t.Parallel()

	target := inject.Call(newSMTP, "mx", 25)

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		d := inject.CallMethod(inject.Call(newMailer, target, "a@example.com"), "SetRetries", 4)
		out, err := d.Invoke()
		require.NoError(t, err)
		assert.Nil(t, out)
	})

	t.Run("MethodFailure", func(t *testing.T) {
		t.Parallel()

		d := inject.CallMethod(inject.Call(newMailer, target, "a@example.com"), "SetRetries", -1)
		_, err := d.Invoke()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "retries must not be negative")
	})

	t.Run("MissingMethod", func(t *testing.T) {
		t.Parallel()

		_, err := inject.CallMethod(target, "Nope").Invoke()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `has no method "Nope"`)
	})
}

func TestConstructDeferred(t *testing.T) {
	t.Parallel()

	r := inject.NewResolver(newCatalog(t))
	d := inject.Construct(r, "fixture.Parent", inject.Args{"foo": "baz"}, inject.Setters{"SetFake": "fake"})
	assert.Equal(t, "Construct(fixture.Parent)", d.(interface{ String() string }).String())

	first, err := d.Invoke()
	require.NoError(t, err)
	assert.Equal(t, &parentFixture{foo: "baz", fake: "fake"}, first)

	second, err := d.Invoke()
	require.NoError(t, err)
	assert.NotSame(t, first, second, "every invocation constructs a new instance")
}

func TestLookup(t *testing.T) {
	t.Parallel()

	r := inject.NewResolver(newCatalog(t))
	c := inject.NewContainer(r, nil)
	c.Set("greeting", "hello")

	out, err := inject.Lookup(c, "greeting").Invoke()
	require.NoError(t, err)
	assert.Equal(t, "hello", out)

	_, err = inject.Lookup(c, "missing").Invoke()
	assert.Error(t, err)
}
