package internal

// Effect is a terminal consumer: it performs side effects and reruns when
// any producer read during its previous run changes. It has no cached output
// and no downstream subscribers; its lifecycle ends with Dispose.
type Effect struct {
	id   uint64
	fn   func() func()
	name string

	cleanup  func()
	deps     []producer
	running  bool
	pending  bool
	disposed bool
}

// NewEffect runs the effect once synchronously and registers it with the
// current owner, if any.
func NewEffect(fn func() func(), name string) *Effect {
	e := &Effect{
		id:   nextID(),
		fn:   fn,
		name: name,
	}

	rt := GetRuntime()
	if o := rt.tracker.currentOwner; o != nil {
		o.addEffect(e)
	}

	e.run(rt)

	return e
}

func (e *Effect) nodeID() uint64 { return e.id }

func (e *Effect) invalidate(rt *Runtime) {
	if e.disposed {
		return
	}
	if e.running {
		// the body wrote one of its own dependencies; rerun once this
		// run has stored its cleanup
		e.pending = true
		return
	}
	rt.queue.enqueue(e)
}

func (e *Effect) execute(rt *Runtime) { e.run(rt) }

// run tears down the previous run before evaluating fn inside a fresh frame:
// cleanup first, then the dependency edges, so user code always observes a
// consistent graph even if it panics. The running flag keeps an invalidation
// raised by the body itself from re-entering while fn is still on the stack;
// the rerun happens after the cleanup has been stored.
func (e *Effect) run(rt *Runtime) {
	if e.disposed || e.running {
		return
	}

	e.running = true
	defer func() {
		e.running = false
		if e.pending && !e.disposed {
			e.pending = false
			rt.queue.enqueue(e)
			rt.Schedule()
		}
	}()

	if cl := e.cleanup; cl != nil {
		e.cleanup = nil
		cl()
	}
	e.releaseDeps()

	f := &frame{record: func(p producer) {
		for _, d := range e.deps {
			if d == p {
				return
			}
		}
		e.deps = append(e.deps, p)
		p.attach(e)
	}}

	if e.name != "" {
		Log.V(2).Info("effect run", "name", e.name)
	}

	rt.tracker.RunWith(f, func() { e.cleanup = e.fn() })
}

// Dispose stops the effect: the last cleanup runs once and every dependency
// subscription is released. Dispose is idempotent. The disposed flag is set
// before the cleanup runs: a cleanup that writes to one of the effect's own
// still-subscribed dependencies would otherwise re-enter run synchronously.
func (e *Effect) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true

	if cl := e.cleanup; cl != nil {
		e.cleanup = nil
		cl()
	}
	e.releaseDeps()
}

func (e *Effect) releaseDeps() {
	deps := e.deps
	e.deps = nil

	for _, d := range deps {
		d.detach(e)
	}
}
