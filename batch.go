package signals

import "github.com/glowkit/signals/internal"

// Batch coalesces the notifications from every write inside fn into a single
// settlement pass at the end: each affected consumer runs at most once, even
// when several of its dependencies changed. Batches nest; only the outermost
// call flushes.
func Batch(fn func()) {
	internal.GetRuntime().Batch(fn)
}

// BatchValue is Batch for callbacks that return a value.
func BatchValue[T any](fn func() T) T {
	var out T
	internal.GetRuntime().Batch(func() { out = fn() })
	return out
}

// Flush forces settlement of pending notifications. Mainly useful for test
// harnesses driving the engine outside an explicit Batch scope.
func Flush() {
	internal.GetRuntime().Flush()
}
