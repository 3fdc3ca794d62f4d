package injectevent

// A reduced injectevent package with a fixed set of events.

type (
	Logger      interface{ LogEvent(Event) }
	Event       interface{ event() }
	Unified     struct{}
	Resolved    struct{}
	Constructed struct{}
	Aliased     struct{}
)

func (*Unified) event()     {}
func (*Resolved) event()    {}
func (*Constructed) event() {}
func (*Aliased) event()     {}
