package signals

import "github.com/glowkit/signals/internal"

// ErrCycle is the panic value raised when a computed's evaluation re-enters
// itself, directly or through a chain of dependencies.
var ErrCycle = internal.ErrCycle
