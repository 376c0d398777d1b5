package internal

import (
	"slices"
	"sync"
	"sync/atomic"
)

// consumer is a reactive node that reads producers: an effect, a computed,
// or an external subscription.
type consumer interface {
	// nodeID returns the identity used for deduplication. Within a single
	// flush generation each identity is invoked at most once.
	nodeID() uint64

	// invalidate schedules the consumer on the runtime after one of its
	// producers changed.
	invalidate(rt *Runtime)

	// execute runs the consumer during a flush.
	execute(rt *Runtime)
}

// producer is a reactive node that can be read and subscribed to: a signal
// or a computed.
type producer interface {
	attach(c consumer)
	detach(c consumer)

	// Peek returns the current value without touching the tracker.
	Peek() any

	// height of the node in the dependency graph. Signals are always 0.
	height() int
}

// Source is the read surface shared by signals and computeds. The root
// package builds its typed read-only views on it.
type Source interface {
	Read() any
	Peek() any
	Subscribe(fn func(any)) func()
}

var idCounter atomic.Uint64

func nextID() uint64 { return idCounter.Add(1) }

// subscriberSet is an ordered set of consumers deduplicated by identity.
type subscriberSet struct {
	mu   sync.Mutex
	subs []consumer
}

// add appends c unless an entry with the same identity is already present.
// Reports whether c is now the only subscriber.
func (s *subscriberSet) add(c consumer) (first bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.nodeID()
	for _, existing := range s.subs {
		if existing.nodeID() == id {
			return false
		}
	}

	s.subs = append(s.subs, c)
	return len(s.subs) == 1
}

// remove deletes c. Reports whether the set became empty by this removal.
func (s *subscriberSet) remove(c consumer) (last bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.nodeID()
	for i, existing := range s.subs {
		if existing.nodeID() == id {
			s.subs = slices.Delete(s.subs, i, i+1)
			return len(s.subs) == 0
		}
	}

	return false
}

func (s *subscriberSet) snapshot() []consumer {
	// cloning to avoid mutation during iteration
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.subs)
}

func (s *subscriberSet) invalidateAll(rt *Runtime) {
	for _, c := range s.snapshot() {
		c.invalidate(rt)
	}
}
