package internal

// consumerQueue is the ordered, identity-deduplicated set of consumers
// pending notification: effects and external subscriptions.
type consumerQueue struct {
	entries []consumer
	seen    map[uint64]struct{}
}

func newConsumerQueue() *consumerQueue {
	return &consumerQueue{
		seen: make(map[uint64]struct{}),
	}
}

func (q *consumerQueue) enqueue(c consumer) {
	id := c.nodeID()
	if _, ok := q.seen[id]; ok {
		return
	}
	q.seen[id] = struct{}{}

	q.entries = append(q.entries, c)
}

func (q *consumerQueue) len() int { return len(q.entries) }

// take returns the pending set and resets the queue, opening a new
// deduplication generation for work scheduled by the consumers themselves.
func (q *consumerQueue) take() []consumer {
	entries := q.entries
	q.entries = nil
	q.seen = make(map[uint64]struct{})
	return entries
}
