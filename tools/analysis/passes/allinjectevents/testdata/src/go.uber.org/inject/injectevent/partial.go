package injectevent

type partialLogger struct{}

func (partialLogger) LogEvent(ev Event) { // want `partialLogger doesn't handle \[\*Aliased\]`
	switch ev.(type) {
	case *Unified:
	case *Resolved, *Constructed:
	}
}
