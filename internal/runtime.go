package internal

// Runtime coordinates one goroutine's reactive graph operations: the tracker
// (who is collecting dependencies), the batcher (notification deferral) and
// the pending work for the current flush.
type Runtime struct {
	tracker *Tracker
	batcher *Batcher
	heap    *dirtyHeap
	queue   *consumerQueue

	flushing bool
}

func NewRuntime() *Runtime {
	return &Runtime{
		tracker: NewTracker(),
		batcher: NewBatcher(),
		heap:    newDirtyHeap(),
		queue:   newConsumerQueue(),
	}
}

// Schedule triggers a flush unless one is already running or a batch is open.
func (r *Runtime) Schedule() {
	if r.batcher.Batching() || r.flushing {
		return
	}
	r.Flush()
}

// Flush settles the graph: dirty computeds recompute in height order, then
// pending effects and external listeners run, each consumer identity at most
// once per generation. Work scheduled by the consumers themselves (an effect
// writing a signal) opens a new generation and settles before Flush returns.
func (r *Runtime) Flush() {
	if r.flushing {
		return
	}
	r.flushing = true
	defer func() { r.flushing = false }()

	for r.heap.len() > 0 || r.queue.len() > 0 {
		Log.V(2).Info("flush", "dirty", r.heap.len(), "pending", r.queue.len())

		r.heap.drain(func(c *Computed) { c.execute(r) })

		for _, c := range r.queue.take() {
			c.execute(r)
		}
	}
}

// Batch runs fn with notifications deferred, flushing when the outermost
// scope exits.
func (r *Runtime) Batch(fn func()) {
	r.batcher.Batch(fn, r.Flush)
}

// Untrack runs fn with dependency registration suspended.
func (r *Runtime) Untrack(fn func()) {
	r.tracker.RunUntracked(fn)
}

// OnCleanup registers fn on the owner currently running, if any.
func OnCleanup(fn func()) {
	if o := GetRuntime().tracker.currentOwner; o != nil {
		o.OnCleanup(fn)
	}
}

// register reports p to the active frame, if any.
func register(rt *Runtime, p producer) {
	if rt.tracker.ShouldTrack() {
		rt.tracker.current.record(p)
	}
}
