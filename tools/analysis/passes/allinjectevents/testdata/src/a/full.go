package a

import (
	"fmt"

	"go.uber.org/inject/injectevent"
)

type fullLogger struct{}

func (*fullLogger) LogEvent(ev injectevent.Event) {
	switch e := ev.(type) {
	case *injectevent.Unified, *injectevent.Resolved:
		fmt.Println(e)
	case *injectevent.Constructed:
		fmt.Println(e)
	case *injectevent.Aliased:
		fmt.Println(e)
	}
}
