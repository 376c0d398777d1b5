package signals

import "github.com/glowkit/signals/internal"

// Owner groups effects and cleanup callbacks under one disposal scope.
type Owner struct {
	o *internal.Owner
}

// NewOwner creates a disposal scope. Effects created inside Run are disposed
// with the owner.
func NewOwner() *Owner {
	return &Owner{internal.NewOwner()}
}

// Run evaluates fn with this owner current.
func (o *Owner) Run(fn func()) {
	o.o.Run(fn)
}

// OnCleanup registers fn to run once when the owner is disposed.
func (o *Owner) OnCleanup(fn func()) {
	o.o.OnCleanup(fn)
}

// Dispose tears down owned effects and runs registered cleanups. Idempotent.
func (o *Owner) Dispose() {
	o.o.Dispose()
}

// OnCleanup registers fn on the owner currently running, if any. Outside an
// owner's Run it does nothing.
func OnCleanup(fn func()) {
	internal.OnCleanup(fn)
}
