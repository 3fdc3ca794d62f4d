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

package injecttest

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/inject"
	"go.uber.org/inject/internal/eventspy"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// Verify that TB always matches testing.T.
var _ TB = (*testing.T)(nil)

type tb struct {
	failures int
	errors   *bytes.Buffer
	logs     *bytes.Buffer
}

func newTB() *tb {
	return &tb{0, &bytes.Buffer{}, &bytes.Buffer{}}
}

func (t *tb) FailNow() {
	t.failures++
}

func (t *tb) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(t.errors, format, args...)
	t.errors.WriteRune('\n')
}

func (t *tb) Logf(format string, args ...interface{}) {
	fmt.Fprintf(t.logs, format, args...)
	t.logs.WriteRune('\n')
}

type greeter struct{ name string }

func catalog() *inject.Catalog {
	return inject.NewCatalog().MustRegister(inject.TypeDescriptor{
		Name:        "app.Greeter",
		Constructor: func(name string) *greeter { return &greeter{name: name} },
		Params:      []inject.Param{inject.Default("name", "world")},
	})
}

func TestSuccess(t *testing.T) {
	t.Parallel()

	spy := newTB()
	c := New(spy, inject.NewBuilder(catalog()))

	v := c.MustGet("app.Greeter")
	assert.Equal(t, &greeter{name: "world"}, v)

	made := c.MustMake("app.Greeter", inject.Args{"name": "gopher"}, nil)
	assert.Equal(t, &greeter{name: "gopher"}, made)

	assert.Zero(t, spy.failures)
	assert.Empty(t, spy.errors.String())
	assert.Contains(t, spy.logs.String(), "[Inject] CONSTRUCT\tapp.Greeter")
	assert.Contains(t, spy.logs.String(), "[Inject] SERVICE\t\t\"app.Greeter\"")
}

func TestLoggerReplaced(t *testing.T) {
	t.Parallel()

	spy := new(eventspy.Spy)
	fake := newTB()
	c := New(fake, inject.NewBuilder(catalog()).Logger(spy))
	c.MustGet("app.Greeter")

	assert.Empty(t, spy.Events(), "events go to the test log only")
	assert.Contains(t, fake.logs.String(), "[Inject] CONSTRUCT\tapp.Greeter")
}

func TestFailures(t *testing.T) {
	t.Parallel()

	t.Run("Build", func(t *testing.T) {
		t.Parallel()

		c := inject.NewCatalog().MustRegister(inject.TypeDescriptor{
			Name:        "app.Orphan",
			Parent:      "app.Missing",
			Constructor: func() *greeter { return &greeter{} },
		})

		spy := newTB()
		New(spy, inject.NewBuilder(c))
		assert.Equal(t, 1, spy.failures)
		assert.Contains(t, spy.errors.String(), "container didn't build")
	})

	t.Run("Get", func(t *testing.T) {
		t.Parallel()

		spy := newTB()
		c := New(spy, inject.NewBuilder(catalog()))
		assert.Nil(t, c.MustGet("app.Missing"))
		require.Equal(t, 1, spy.failures)
		assert.Contains(t, spy.errors.String(), `cannot get "app.Missing"`)
	})

	t.Run("Make", func(t *testing.T) {
		t.Parallel()

		spy := newTB()
		c := New(spy, inject.NewBuilder(catalog()))
		assert.Nil(t, c.MustMake("app.Missing", nil, nil))
		require.Equal(t, 1, spy.failures)
		assert.Contains(t, spy.errors.String(), `cannot make "app.Missing"`)
	})
}
