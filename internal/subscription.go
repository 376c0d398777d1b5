package internal

// subscription adapts an external listener to the consumer interface. It is
// the seam view-binding layers build on: not frame-tracked, deduplicated by
// identity, invoked at most once per flush generation with the producer's
// settled value.
type subscription struct {
	id     uint64
	src    producer
	fn     func(any)
	closed bool
}

func newSubscription(src producer, fn func(any)) *subscription {
	return &subscription{
		id:  nextID(),
		src: src,
		fn:  fn,
	}
}

func (s *subscription) nodeID() uint64 { return s.id }

func (s *subscription) invalidate(rt *Runtime) {
	if s.closed {
		return
	}
	rt.queue.enqueue(s)
}

func (s *subscription) execute(rt *Runtime) {
	if s.closed {
		return // unsubscribed after being queued
	}
	s.fn(s.src.Peek())
}

// close detaches from the producer. Safe to call more than once.
func (s *subscription) close() {
	if s.closed {
		return
	}
	s.closed = true
	s.src.detach(s)
}
