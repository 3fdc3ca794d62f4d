package a

import (
	"fmt"

	"go.uber.org/inject/injectevent"
)

// Test files are not checked.
type partialLogger struct{}

func (partialLogger) LogEvent(ev injectevent.Event) {
	_, ok := ev.(*injectevent.Unified)
	fmt.Println(ok)
}
