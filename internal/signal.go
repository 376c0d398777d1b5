package internal

import "sync"

// Signal is the type-erased mutable reactive cell. The generic wrapper in
// the root package provides the typed surface.
type Signal struct {
	equals func(a, b any) bool

	mu    sync.RWMutex
	value any

	subs subscriberSet
}

func NewSignal(initial any, equals func(a, b any) bool) *Signal {
	return &Signal{
		equals: equals,
		value:  initial,
	}
}

// Read returns the current value, registering the signal as a dependency of
// the active consumer if there is one.
func (s *Signal) Read() any {
	register(GetRuntime(), s)
	return s.Peek()
}

// Peek returns the current value without touching the tracker.
func (s *Signal) Peek() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Write stores v and notifies subscribers, immediately or at the end of the
// enclosing batch. Writing an equal value under the signal's equality rule is
// a no-op: no mutation, no notification. The equality rule runs outside the
// lock so it may read the signal itself.
func (s *Signal) Write(v any) {
	s.mu.RLock()
	current := s.value
	s.mu.RUnlock()

	if s.equals(current, v) {
		return
	}

	s.mu.Lock()
	s.value = v
	s.mu.Unlock()

	rt := GetRuntime()
	s.subs.invalidateAll(rt)
	rt.Schedule()
}

// Subscribe registers an external listener invoked with the new value after
// each change. The listener is not part of the dependency graph. The returned
// function removes the subscription and is safe to call more than once.
func (s *Signal) Subscribe(fn func(any)) func() {
	sub := newSubscription(s, fn)
	s.attach(sub)

	return func() { sub.close() }
}

func (s *Signal) attach(c consumer) { s.subs.add(c) }
func (s *Signal) detach(c consumer) { s.subs.remove(c) }

func (s *Signal) height() int { return 0 }
