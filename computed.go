package signals

import "github.com/glowkit/signals/internal"

// Computed is a derived reactive cell: its value is recomputed from whatever
// signals and computeds its function reads, and it can itself be read and
// subscribed to. It has no mutators.
type Computed[T any] struct {
	c *internal.Computed
}

// NewComputed creates a derived cell. The function is not run until the
// first read.
//
// A computed with no subscribers is "cold": it holds no live upstream
// subscriptions and re-evaluates on each read. Once something subscribes
// (an effect reading it, a downstream hot computed, or Subscribe) it turns
// "hot": it re-evaluates eagerly when its inputs change and notifies its
// own subscribers only when the result changes under the equality rule.
func NewComputed[T any](fn func() T, opts ...Option[T]) *Computed[T] {
	o := buildOptions(opts)
	return &Computed[T]{internal.NewComputed(
		func() any { return fn() },
		o.equalsAny(),
	)}
}

// Get returns the current value, recomputing first if needed, and registers
// the computed as a dependency of the currently evaluating consumer.
//
// Get panics with [ErrCycle] when called from within this computed's own
// evaluation.
func (c *Computed[T]) Get() T {
	return as[T](c.c.Read())
}

// Peek returns the current value without registering a dependency. It still
// recomputes when the cached value cannot be trusted.
func (c *Computed[T]) Peek() T {
	return as[T](c.c.Peek())
}

// Subscribe registers an external listener invoked with the new value after
// each change. Subscribing makes the computed hot.
func (c *Computed[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	return c.c.Subscribe(func(v any) { fn(as[T](v)) })
}

func (c *Computed[T]) isSignal() {}
