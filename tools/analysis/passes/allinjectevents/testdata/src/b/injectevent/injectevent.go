package injectevent

// Same package name, different import path.

type (
	Logger  interface{ LogEvent(Event) }
	Event   interface{ event() }
	Unified struct{}
	Aliased struct{}
)

func (*Unified) event() {}
func (*Aliased) event() {}
