//go:build wasm

package internal

import "sync"

// goid is unavailable under wasm; the runtime is process-global, which is
// fine on a single-threaded target.

var once sync.Once
var globalRuntime *Runtime

func GetRuntime() *Runtime {
	once.Do(func() {
		globalRuntime = NewRuntime()
	})

	return globalRuntime
}
