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

package injectevent

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleLogger(t *testing.T) {
	t.Parallel()

	someError := errors.New("some error")

	tests := []struct {
		name string
		give Event
		want string
	}{
		{
			name: "Unified",
			give: &Unified{TypeName: "app.Mailer", Params: []string{"host", "port"}, Setters: []string{"SetFrom"}},
			want: "[Inject] UNIFY\t\tapp.Mailer(host, port) setters: [SetFrom]\n",
		},
		{
			name: "UnifiedError",
			give: &Unified{TypeName: "app.Mailer", Err: someError},
			want: "[Inject] ERROR\t\tFailed to unify app.Mailer: some error\n",
		},
		{
			name: "Autowired",
			give: &Autowired{TypeName: "app.Mailer", Param: "transport", Target: "app.SMTP"},
			want: "[Inject] AUTOWIRE\tapp.Mailer.transport <= app.SMTP\n",
		},
		{
			name: "Resolved",
			give: &Resolved{TypeName: "app.Mailer"},
			want: "[Inject] RESOLVE\t\tapp.Mailer\n",
		},
		{
			name: "ResolvedError",
			give: &Resolved{TypeName: "app.Mailer", Err: someError},
			want: "[Inject] ERROR\t\tFailed to resolve app.Mailer: some error\n",
		},
		{
			name: "Constructed",
			give: &Constructed{TypeName: "app.Mailer"},
			want: "[Inject] CONSTRUCT\tapp.Mailer\n",
		},
		{
			name: "ConstructedError",
			give: &Constructed{TypeName: "app.Mailer", Setters: 1, Err: someError},
			want: "[Inject] ERROR\t\tFailed to construct app.Mailer after 1 setters: some error\n",
		},
		{
			name: "ServiceCreated",
			give: &ServiceCreated{Name: "mailer"},
			want: "[Inject] SERVICE\t\t\"mailer\"\n",
		},
		{
			name: "ServiceCreatedError",
			give: &ServiceCreated{Name: "mailer", Err: someError},
			want: "[Inject] ERROR\t\tFailed to create service \"mailer\": some error\n",
		},
		{
			name: "Aliased",
			give: &Aliased{Name: "Mailer", Target: "app.Mailer"},
			want: "[Inject] ALIAS\t\t\"Mailer\" => \"app.Mailer\"\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			(&ConsoleLogger{W: &buf}).LogEvent(tt.give)

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		NopLogger.LogEvent(&Resolved{TypeName: "app.Mailer"})
	})
	assert.Equal(t, "NopLogger", NopLogger.String())
}
