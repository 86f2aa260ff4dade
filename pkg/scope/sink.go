package scope

// Sink is the boundary to the logging backend that receives property
// bindings. Implementations decide what a bound scope means for them —
// attaching attributes to emitted records, forwarding to an aggregator,
// or anything else. An implementation is free to copy the bound map or
// hold it by reference; Scope rebinds after every mutation so it stays
// correct under either choice. Implementations must not mutate the
// bound map.
type Sink interface {
	// Bind registers props as an active scope with the backend and
	// returns the handle that tears the binding down.
	Bind(props map[string]any) Handle
}

// Handle represents one live binding inside a Sink. Release must be
// safe to call more than once; only the first call may have an effect.
type Handle interface {
	Release()
}
