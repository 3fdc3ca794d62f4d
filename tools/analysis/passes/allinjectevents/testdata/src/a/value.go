package a

import (
	"fmt"
	"io"

	"go.uber.org/inject/injectevent"
)

type valueLogger struct {
	W io.Writer
}

func (l valueLogger) LogEvent(ev injectevent.Event) { // want `valueLogger doesn't handle \[\*Aliased \*Constructed\]`
	switch ev.(type) {
	case *injectevent.Unified:
		fmt.Fprintln(l.W, ev)
	case *injectevent.Resolved:
		fmt.Fprintln(l.W, ev)
	}
}
