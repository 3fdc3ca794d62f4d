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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"
	"go.uber.org/inject"
)

func TestDigRegistry(t *testing.T) {
	t.Parallel()

	t.Run("Get", func(t *testing.T) {
		t.Parallel()

		reg := inject.NewDigRegistry(nil)
		require.NotNil(t, reg.Container())
		require.NoError(t, reg.Provide("mail.Transport", func() *smtp { return newSMTP("dig", 25) }))

		assert.True(t, reg.Has("mail.Transport"))
		assert.False(t, reg.Has("mail.Other"))

		first, err := reg.Get("mail.Transport")
		require.NoError(t, err)
		assert.Equal(t, &smtp{host: "dig", port: 25}, first)

		second, err := reg.Get("mail.Transport")
		require.NoError(t, err)
		assert.Same(t, first, second, "dig shares values")

		_, err = reg.Get("mail.Other")
		assert.EqualError(t, err, `no type provided as "mail.Other"`)
	})

	t.Run("ProvideErrors", func(t *testing.T) {
		t.Parallel()

		reg := inject.NewDigRegistry(dig.New())
		assert.Error(t, reg.Provide("bad", 42))
		assert.Error(t, reg.Provide("bad", func() error { return nil }))
		assert.False(t, reg.Has("bad"))
	})

	t.Run("DigFailure", func(t *testing.T) {
		t.Parallel()

		reg := inject.NewDigRegistry(nil)
		require.NoError(t, reg.Provide("mailer", func(*smtp) *mailer { return &mailer{} }))

		_, err := reg.Get("mailer")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `cannot get "mailer"`)
	})

	t.Run("Delegate", func(t *testing.T) {
		t.Parallel()

		reg := inject.NewDigRegistry(nil)
		require.NoError(t, reg.Provide("mail.SMTP", func() *smtp { return newSMTP("dig", 2525) }))

		c, err := inject.NewBuilder(newCatalog(t)).
			Params(map[string]inject.Args{"mail.Mailer": {"transport": inject.GetRef("mail.SMTP")}}).
			Delegate(reg).
			Build()
		require.NoError(t, err)

		v, err := c.Get("mail.Mailer")
		require.NoError(t, err)
		assert.Equal(t, &smtp{host: "dig", port: 2525}, v.(*mailer).transport)
	})
}
