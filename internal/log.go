package internal

import "github.com/go-logr/logr"

// Log is the engine's trace logger, discarding by default. The root package
// exposes SetLogger to install a real sink. Errors never flow through it;
// they propagate to the caller that triggered the evaluation.
var Log = logr.Discard()
