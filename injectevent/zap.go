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
	"go.uber.org/zap"
)

// ZapLogger is an event logger that logs events to Zap.
type ZapLogger struct {
	Logger *zap.Logger
}

var _ Logger = (*ZapLogger)(nil)

// LogEvent logs the given event to the provided Zap logger.
func (l *ZapLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Unified:
		if e.Err != nil {
			l.Logger.Error("unify failed",
				zap.String("type", e.TypeName),
				zap.Error(e.Err))
		} else {
			l.Logger.Debug("unified",
				zap.String("type", e.TypeName),
				zap.Strings("params", e.Params),
				zap.Strings("setters", e.Setters))
		}
	case *Autowired:
		l.Logger.Debug("autowired",
			zap.String("type", e.TypeName),
			zap.String("param", e.Param),
			zap.String("target", e.Target))
	case *Resolved:
		if e.Err != nil {
			l.Logger.Error("resolve failed",
				zap.String("type", e.TypeName),
				zap.Error(e.Err))
		} else {
			l.Logger.Debug("resolved", zap.String("type", e.TypeName))
		}
	case *Constructed:
		if e.Err != nil {
			l.Logger.Error("construct failed",
				zap.String("type", e.TypeName),
				zap.Int("setters", e.Setters),
				zap.Error(e.Err))
		} else {
			l.Logger.Info("constructed",
				zap.String("type", e.TypeName),
				zap.Int("setters", e.Setters))
		}
	case *ServiceCreated:
		if e.Err != nil {
			l.Logger.Error("service creation failed",
				zap.String("name", e.Name),
				zap.Error(e.Err))
		} else {
			l.Logger.Info("service created", zap.String("name", e.Name))
		}
	case *Aliased:
		l.Logger.Debug("aliased",
			zap.String("name", e.Name),
			zap.String("target", e.Target))
	}
}
