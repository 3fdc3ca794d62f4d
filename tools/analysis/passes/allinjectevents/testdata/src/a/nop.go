package a

import "go.uber.org/inject/injectevent"

type nopLogger struct{}

// Handles no event at all, which is not reported.
func (nopLogger) LogEvent(injectevent.Event) {}
