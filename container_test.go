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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/inject"
	"go.uber.org/inject/injectevent"
	"go.uber.org/inject/internal/eventspy"
)

// mapRegistry is a Registry over a map.
type mapRegistry map[string]interface{}

func (m mapRegistry) Has(name string) bool {
	_, ok := m[name]
	return ok
}

func (m mapRegistry) Get(name string) (interface{}, error) {
	v, ok := m[name]
	if !ok {
		return nil, errors.New("not found")
	}
	return v, nil
}

func TestContainerGet(t *testing.T) {
	t.Parallel()

	t.Run("HoldsItself", func(t *testing.T) {
		t.Parallel()

		c := inject.NewContainer(inject.NewResolver(newCatalog(t)), nil)
		assert.True(t, c.Has(inject.ContainerName))
		v, err := c.Get(inject.ContainerName)
		require.NoError(t, err)
		assert.Same(t, c, v)
	})

	t.Run("Instances", func(t *testing.T) {
		t.Parallel()

		c := inject.NewContainer(inject.NewResolver(newCatalog(t)), nil)
		p := newParent("instance")
		c.Set("parent", p)

		v, err := c.Get("parent")
		require.NoError(t, err)
		assert.Same(t, p, v)
	})

	t.Run("ServicesRunOnce", func(t *testing.T) {
		t.Parallel()

		var calls int
		c := inject.NewContainer(inject.NewResolver(newCatalog(t)), nil)
		c.Set("counter", func() *otherFixture {
			calls++
			return &otherFixture{id: calls}
		})

		first, err := c.Get("counter")
		require.NoError(t, err)
		second, err := c.Get("counter")
		require.NoError(t, err)
		assert.Same(t, first, second)
		assert.Equal(t, 1, calls)
	})

	t.Run("SetReplaces", func(t *testing.T) {
		t.Parallel()

		c := inject.NewContainer(inject.NewResolver(newCatalog(t)), nil)
		c.Set("value", inject.Call(func() string { return "deferred" }))
		v, err := c.Get("value")
		require.NoError(t, err)
		assert.Equal(t, "deferred", v)

		c.Set("value", "plain")
		v, err = c.Get("value")
		require.NoError(t, err)
		assert.Equal(t, "plain", v)
	})

	t.Run("ConstructsCatalogTypesOnce", func(t *testing.T) {
		t.Parallel()

		c := inject.NewContainer(inject.NewResolver(newCatalog(t)), nil)
		assert.True(t, c.Has("fixture.Parent"))
		assert.False(t, c.Has("mail.Sender"), "interfaces are not instantiable")

		first, err := c.Get("fixture.Parent")
		require.NoError(t, err)
		assert.Equal(t, &parentFixture{foo: "bar"}, first)

		second, err := c.Get("fixture.Parent")
		require.NoError(t, err)
		assert.Same(t, first, second)
	})

	t.Run("AutoAlias", func(t *testing.T) {
		t.Parallel()

		spy := new(eventspy.Spy)
		r := inject.NewResolver(newCatalog(t), inject.WithLogger(spy))
		c := inject.NewContainer(r, nil)

		p, err := c.Get("fixture.Parent")
		require.NoError(t, err)

		v, err := c.Get("Parent")
		require.NoError(t, err)
		assert.Same(t, p, v)

		assert.Contains(t, spy.Events(), &injectevent.ServiceCreated{Name: "fixture.Parent"})
		assert.Contains(t, spy.Events(), &injectevent.Aliased{Name: "Parent", Target: "fixture.Parent"})
	})

	t.Run("AutoAliasKeepsExisting", func(t *testing.T) {
		t.Parallel()

		c := inject.NewContainer(inject.NewResolver(newCatalog(t)), nil)
		c.Set("other.Parent", "taken")
		c.Alias(inject.Alias{Name: "Parent", Target: "other.Parent"})

		_, err := c.Get("fixture.Parent")
		require.NoError(t, err)

		v, err := c.Get("Parent")
		require.NoError(t, err)
		assert.Equal(t, "taken", v)
	})

	t.Run("Delegate", func(t *testing.T) {
		t.Parallel()

		delegate := mapRegistry{"db": "postgres://"}
		c := inject.NewContainer(inject.NewResolver(newCatalog(t)), delegate)
		assert.Equal(t, delegate, c.Delegate())
		assert.True(t, c.Has("db"))

		v, err := c.Get("db")
		require.NoError(t, err)
		assert.Equal(t, "postgres://", v)
	})

	t.Run("Failure", func(t *testing.T) {
		t.Parallel()

		spy := new(eventspy.Spy)
		c := inject.NewContainer(inject.NewResolver(newCatalog(t), inject.WithLogger(spy)), nil)
		assert.False(t, c.Has("fixture.Missing"))

		_, err := c.Get("fixture.Missing")
		require.Error(t, err)
		assert.Equal(t, `cannot get "fixture.Missing": type "fixture.Missing" not found`, err.Error())

		var notFound *inject.TypeNotFoundError
		assert.ErrorAs(t, err, &notFound)

		events := spy.Events()
		created, ok := events[len(events)-1].(*injectevent.ServiceCreated)
		require.True(t, ok)
		assert.Error(t, created.Err)
	})
}

func TestContainerMake(t *testing.T) {
	t.Parallel()

	c := inject.NewContainer(inject.NewResolver(newCatalog(t)), nil)
	first, err := c.Make("fixture.Parent", inject.Args{"foo": "made"}, nil)
	require.NoError(t, err)
	second, err := c.Make("fixture.Parent", inject.Args{"foo": "made"}, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotSame(t, first, second)
	assert.Equal(t, "made", first.(*parentFixture).foo)
}

func TestContainerLazy(t *testing.T) {
	t.Parallel()

	var calls int
	c := inject.NewContainer(inject.NewResolver(newCatalog(t)), nil)
	c.Set("mailer", func() *mailer {
		calls++
		return newMailer(newSMTP("mx", 25), "a@example.com")
	})

	lazy := c.Lazy("mailer")
	assert.Zero(t, calls)

	first, err := lazy.Invoke()
	require.NoError(t, err)
	second, err := lazy.Invoke()
	require.NoError(t, err)
	assert.Same(t, first, second, "lazy entries are shared")
	assert.Equal(t, 1, calls)

	_, err = c.Call("mailer", "SetSignature", "--").Invoke()
	require.NoError(t, err)
	assert.Equal(t, "--", first.(*mailer).signature)
}

func TestContainerResolvesParametersThroughItself(t *testing.T) {
	t.Parallel()

	r := inject.NewResolver(newCatalog(t))
	c := inject.NewContainer(r, nil)
	assert.Same(t, r, c.Resolver())

	r.AddParams(map[string]inject.Args{
		"fixture.Resolve": {"fake": c.Lazy("fixture.Parent")},
	})

	first, err := c.Make("fixture.Resolve", nil, nil)
	require.NoError(t, err)
	second, err := c.Make("fixture.Resolve", nil, nil)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Same(t, first.(*resolveFixture).fake, second.(*resolveFixture).fake)
}
