package internal

// Owner groups effects and cleanup callbacks under one disposal scope.
type Owner struct {
	effects  []*Effect
	cleanups []func()
	disposed bool
}

func NewOwner() *Owner {
	return &Owner{}
}

// Run evaluates fn with this owner current: effects created inside belong to
// the owner and are disposed with it.
func (o *Owner) Run(fn func()) {
	GetRuntime().tracker.RunWithOwner(o, fn)
}

func (o *Owner) addEffect(e *Effect) {
	o.effects = append(o.effects, e)
}

// OnCleanup registers fn to run once when the owner is disposed.
func (o *Owner) OnCleanup(fn func()) {
	o.cleanups = append(o.cleanups, fn)
}

// Dispose tears down owned effects in reverse creation order, then runs the
// cleanups. Further calls are no-ops.
func (o *Owner) Dispose() {
	if o.disposed {
		return
	}
	o.disposed = true

	for i := len(o.effects) - 1; i >= 0; i-- {
		o.effects[i].Dispose()
	}
	o.effects = nil

	for _, fn := range o.cleanups {
		fn()
	}
	o.cleanups = nil
}
