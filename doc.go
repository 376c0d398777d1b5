// Package signals is a fine-grained reactive dependency-tracking engine:
// mutable cells (Signal), derived cells (Computed), side-effecting
// subscribers (Effect) and transactional update coalescing (Batch).
//
// Reads inside a computed or effect register dependencies automatically;
// writes notify exactly the consumers that read the changed cell during
// their latest run. Propagation is synchronous, glitch-free and
// single-threaded per goroutine.
package signals
