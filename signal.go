package signals

import "github.com/glowkit/signals/internal"

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

// Signal is a writable reactive cell.
type Signal[T any] struct {
	s *internal.Signal
}

// NewSignal creates a writable signal seeded with initial.
func NewSignal[T any](initial T, opts ...Option[T]) *Signal[T] {
	o := buildOptions(opts)
	return &Signal[T]{internal.NewSignal(initial, o.equalsAny())}
}

// Get returns the current value, registering the signal as a dependency of
// the currently evaluating computed or effect. Outside a reactive context it
// behaves like Peek.
func (s *Signal[T]) Get() T {
	return as[T](s.s.Read())
}

// Peek returns the current value without registering a dependency,
// regardless of an active reactive context.
func (s *Signal[T]) Peek() T {
	return as[T](s.s.Peek())
}

// Set stores next and notifies subscribers, immediately or at the end of the
// enclosing batch. If next equals the current value under the signal's
// equality rule the call is a no-op: no mutation, no notification.
func (s *Signal[T]) Set(next T) {
	s.s.Write(next)
}

// Update sets the value to fn applied to the current value.
func (s *Signal[T]) Update(fn func(T) T) {
	s.s.Write(fn(as[T](s.s.Peek())))
}

// Subscribe registers an external listener invoked with the new value after
// each change. The listener is not tracked through the reactive context;
// this is the seam view-binding layers build on. The returned function
// removes the subscription and is safe to call more than once.
func (s *Signal[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	return s.s.Subscribe(func(v any) { fn(as[T](v)) })
}

// AsReadonly returns a live read-only view over the same cell: writes to the
// signal are visible through the view, and the view has no mutators.
func (s *Signal[T]) AsReadonly() *Readonly[T] {
	return &Readonly[T]{s.s}
}

func (s *Signal[T]) isSignal()         {}
func (s *Signal[T]) isWritableSignal() {}

// Readonly is a live read-only view of a writable signal, created with
// [Signal.AsReadonly].
type Readonly[T any] struct {
	src internal.Source
}

// Get returns the current value, registering the underlying cell as a
// dependency of the currently evaluating computed or effect.
func (r *Readonly[T]) Get() T {
	return as[T](r.src.Read())
}

// Peek returns the current value without registering a dependency.
func (r *Readonly[T]) Peek() T {
	return as[T](r.src.Peek())
}

// Subscribe registers an external listener invoked with the new value after
// each change of the underlying cell.
func (r *Readonly[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	return r.src.Subscribe(func(v any) { fn(as[T](v)) })
}

func (r *Readonly[T]) isSignal() {}
