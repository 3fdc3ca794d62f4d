package b

import "b/injectevent"

type Logger struct{}

var _ injectevent.Logger = Logger{}

func (Logger) LogEvent(ev injectevent.Event) {
	_, _ = ev.(*injectevent.Unified)
}
