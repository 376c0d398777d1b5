package signals

import (
	"github.com/go-logr/logr"

	"github.com/glowkit/signals/internal"
)

// SetLogger installs a trace logger for the engine; verbosity 2 traces
// recomputations, effect runs and flushes. The default discards everything.
// Set it once at startup. Errors never flow through the logger; they
// propagate to the caller that triggered the evaluation.
func SetLogger(l logr.Logger) {
	internal.Log = l
}
