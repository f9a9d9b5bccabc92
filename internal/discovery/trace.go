package discovery

// Sink receives diagnostic events emitted while parsing. A nil sink
// disables tracing; parsing behavior never depends on it.
type Sink interface {
	Record(event string)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(event string)

// Record calls f(event).
func (f SinkFunc) Record(event string) { f(event) }
