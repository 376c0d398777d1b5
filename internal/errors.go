package internal

import "errors"

// ErrCycle is the panic value raised when a computed's evaluation re-enters
// itself, directly or through a chain of dependencies. Without the guard the
// cycle would recurse unboundedly instead of failing at the triggering read.
var ErrCycle = errors.New("signals: cycle detected in computed evaluation")
