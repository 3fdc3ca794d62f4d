package a

import (
	"fmt"

	"go.uber.org/inject/injectevent"
)

// notALogger returns an error from LogEvent, so it is not an
// injectevent.Logger.
type notALogger struct{}

func (*notALogger) LogEvent(ev injectevent.Event) error {
	_, ok := ev.(*injectevent.Unified)
	fmt.Println(ok)
	return nil
}
