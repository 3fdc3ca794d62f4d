package a

import (
	"log"

	"go.uber.org/inject/injectevent"
)

type ptrLogger struct{}

func (*ptrLogger) LogEvent(ev injectevent.Event) { // want `\*ptrLogger doesn't handle \[\*Resolved \*Unified\]`
	if e, ok := ev.(*injectevent.Constructed); ok {
		log.Print(e)
	}
	if e, ok := ev.(*injectevent.Aliased); ok {
		log.Print(e)
	}
}
