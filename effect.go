package signals

import "github.com/glowkit/signals/internal"

// EffectFunc constrains an effect body: either a plain function, or one
// returning a cleanup that runs before the next execution and once on
// Dispose.
type EffectFunc interface {
	func() | func() func()
}

// EffectOption configures an effect at creation.
type EffectOption func(*effectOptions)

type effectOptions struct {
	name string
}

// WithName labels the effect in trace output (see SetLogger).
func WithName(name string) EffectOption {
	return func(o *effectOptions) { o.name = name }
}

// Effect is the handle of a running effect.
type Effect struct {
	e *internal.Effect
}

// NewEffect runs fn once synchronously and reruns it whenever a signal or
// computed read during the previous run changes. Reads through Peek or
// inside Untrack do not establish dependencies.
func NewEffect[F EffectFunc](fn F, opts ...EffectOption) *Effect {
	var o effectOptions
	for _, opt := range opts {
		opt(&o)
	}

	var body func() func()
	switch fn := any(fn).(type) {
	case func():
		body = func() func() { fn(); return nil }
	case func() func():
		body = fn
	}

	return &Effect{internal.NewEffect(body, o.name)}
}

// Dispose stops the effect: the last cleanup runs once and all dependency
// subscriptions are released. Dispose is idempotent; further calls are
// no-ops, and a cleanup that writes to one of the effect's own dependencies
// cannot re-trigger the body.
func (e *Effect) Dispose() {
	e.e.Dispose()
}
