package internal

// frame is the record installed for the currently evaluating consumer.
// Producers report themselves through record when read.
type frame struct {
	record func(p producer)
}

// Tracker points at the consumer currently collecting dependencies.
// All installs go through RunWith/RunUntracked/RunWithOwner so the previous
// state is restored even when the evaluated function panics. Skipping the
// restore would make a later unrelated read register itself as a dependency
// of a stale consumer.
type Tracker struct {
	current  *frame
	tracking bool

	currentOwner *Owner
}

func NewTracker() *Tracker {
	return &Tracker{tracking: true}
}

// RunWith installs f as the active frame for the duration of fn. Tracking is
// re-enabled for the nested evaluation even inside an untracked region: the
// inner consumer still needs its own dependencies.
func (t *Tracker) RunWith(f *frame, fn func()) {
	prevFrame := t.current
	prevTracking := t.tracking

	t.current = f
	t.tracking = true

	defer func() {
		t.current = prevFrame
		t.tracking = prevTracking
	}()

	fn()
}

// RunUntracked suspends dependency registration for the duration of fn.
// Reads behave like peeks; writes keep their normal semantics.
func (t *Tracker) RunUntracked(fn func()) {
	prev := t.tracking
	t.tracking = false
	defer func() { t.tracking = prev }()

	fn()
}

// RunWithOwner installs o as the owner for effects created during fn.
func (t *Tracker) RunWithOwner(o *Owner, fn func()) {
	prev := t.currentOwner
	t.currentOwner = o
	defer func() { t.currentOwner = prev }()

	fn()
}

func (t *Tracker) ShouldTrack() bool {
	return t.current != nil && t.tracking
}
