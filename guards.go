package signals

// Marker interfaces implemented by each node kind, so recognizing
// signal-like values never probes Computed- or Effect-specific bookkeeping.

type anySignal interface {
	isSignal()
}

type anyWritableSignal interface {
	anySignal
	isWritableSignal()
}

// IsSignal reports whether v is a readable reactive cell: a Signal, a
// Computed, or a Readonly view.
func IsSignal(v any) bool {
	_, ok := v.(anySignal)
	return ok
}

// IsWritableSignal reports whether v is a reactive cell that can also be
// written: a Signal, but not a Computed or a Readonly view.
func IsWritableSignal(v any) bool {
	_, ok := v.(anyWritableSignal)
	return ok
}
