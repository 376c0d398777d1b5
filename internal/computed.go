package internal

// Computed is a derived cell: a consumer of its inputs and a producer for
// its own subscribers.
//
// A computed with no downstream subscribers is "cold": it holds no live
// upstream subscriptions and re-evaluates on every read, keeping its cached
// value only as a hint. Attaching the first subscriber makes it "hot": it
// subscribes to its inputs, re-evaluates eagerly when they change, and
// notifies downstream only when the result changes under the equality rule.
// That comparison is what keeps diamond-shaped graphs glitch-free.
type Computed struct {
	id      uint64
	compute func() any
	equals  func(a, b any) bool

	value       any
	initialized bool

	// stale marks the cache untrustworthy. Meaningful while hot; a cold
	// computed ignores the cache entirely.
	stale bool

	// changed accumulates "value changed since the last downstream
	// notification", so an evaluation pulled by a read inside a batch is not
	// lost when the flush later finds the cache already fresh.
	changed bool

	hot        bool
	evaluating bool
	inHeap     bool

	// h is the dependency height, one more than the tallest input. It only
	// grows: a conservative height merely delays processing, never skips it.
	h int

	deps []producer

	subs subscriberSet
}

func NewComputed(compute func() any, equals func(a, b any) bool) *Computed {
	return &Computed{
		id:      nextID(),
		compute: compute,
		equals:  equals,
		stale:   true,
	}
}

// Read returns the current value, evaluating first if the cache cannot be
// trusted, and registers the computed with the active consumer.
func (c *Computed) Read() any {
	if c.evaluating {
		panic(ErrCycle)
	}

	rt := GetRuntime()
	register(rt, c) // may attach the reader and flip the computed hot

	if !c.hot || c.stale || !c.initialized {
		c.evaluate(rt)
	}

	return c.value
}

// Peek returns the current value without registering a dependency. The
// computed still evaluates when its cache cannot be trusted.
func (c *Computed) Peek() any {
	if c.evaluating {
		panic(ErrCycle)
	}

	if !c.hot || c.stale || !c.initialized {
		c.evaluate(GetRuntime())
	}

	return c.value
}

// Subscribe registers an external listener invoked with the new value after
// each change. Subscribing makes the computed hot; removing the last
// subscriber lets it go cold again.
func (c *Computed) Subscribe(fn func(any)) func() {
	sub := newSubscription(c, fn)
	c.attach(sub)

	return func() { sub.close() }
}

func (c *Computed) attach(sub consumer) {
	if c.subs.add(sub) && !c.hot {
		c.becomeHot(GetRuntime())
	}
}

func (c *Computed) detach(sub consumer) {
	if c.subs.remove(sub) && c.hot {
		c.becomeCold()
	}
}

// becomeHot evaluates eagerly to establish the live upstream subscriptions.
// The fresh value is the new subscriber's baseline, not a change to notify.
func (c *Computed) becomeHot(rt *Runtime) {
	c.hot = true
	c.evaluate(rt)
	c.changed = false
}

// becomeCold releases every upstream subscription and demotes the cache to a
// hint. Upstream computeds that lose their last subscriber here cascade cold.
func (c *Computed) becomeCold() {
	c.hot = false
	c.stale = true
	c.releaseDeps()
}

// evaluate runs the computation inside a fresh frame, rebuilding the
// upstream edge set from whatever is actually read this run so conditional
// branches drop stale edges. The previous edges are torn down before user
// code executes; a panic in compute propagates with the bookkeeping already
// consistent.
func (c *Computed) evaluate(rt *Runtime) {
	if c.evaluating {
		panic(ErrCycle)
	}
	c.evaluating = true
	defer func() { c.evaluating = false }()

	c.releaseDeps()

	f := &frame{record: func(p producer) {
		for _, d := range c.deps {
			if d == p {
				return
			}
		}
		c.deps = append(c.deps, p)

		if h := p.height() + 1; h > c.h {
			c.h = h
		}
		if c.hot {
			p.attach(c)
		}
	}}

	var next any
	rt.tracker.RunWith(f, func() { next = c.compute() })

	if !c.initialized || !c.equals(c.value, next) {
		c.changed = true
	}
	c.value = next
	c.initialized = true
	c.stale = false

	Log.V(2).Info("computed evaluated", "id", c.id, "hot", c.hot)
}

func (c *Computed) releaseDeps() {
	deps := c.deps
	c.deps = nil

	for _, d := range deps {
		d.detach(c)
	}
}

func (c *Computed) nodeID() uint64 { return c.id }

func (c *Computed) invalidate(rt *Runtime) {
	c.stale = true
	if c.hot {
		rt.heap.insert(c)
	}
}

// execute recomputes during a flush and fans out to subscribers when the
// value changed since they were last notified.
func (c *Computed) execute(rt *Runtime) {
	if !c.hot {
		return // went cold while queued; the next read pulls instead
	}

	if c.stale {
		c.evaluate(rt)
	}

	if c.changed {
		c.changed = false
		c.subs.invalidateAll(rt)
	}
}

func (c *Computed) height() int { return c.h }
