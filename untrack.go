package signals

import "github.com/glowkit/signals/internal"

// Untrack runs fn with dependency registration suspended: reads inside
// behave like Peek, while writes keep their normal equality and notification
// semantics. Peek on a single cell is the narrower, call-site-local
// equivalent.
func Untrack(fn func()) {
	internal.GetRuntime().Untrack(fn)
}

// UntrackValue is Untrack for callbacks that return a value.
func UntrackValue[T any](fn func() T) T {
	var out T
	internal.GetRuntime().Untrack(func() { out = fn() })
	return out
}
