package internal

// Batcher counts nested batch scopes. While the depth is above zero,
// notifications queue on the runtime instead of flushing.
type Batcher struct {
	// each nested batch increases the depth by 1
	// only the outermost scope triggers a flush on exit
	depth int
}

func NewBatcher() *Batcher {
	return &Batcher{}
}

func (b *Batcher) Batching() bool {
	return b.depth > 0
}

// Batch runs fn one level deeper, invoking onComplete when the outermost
// scope exits. The depth is restored even when fn panics, so the pending
// notifications still settle.
func (b *Batcher) Batch(fn, onComplete func()) {
	b.depth++
	defer func() {
		b.depth--
		if b.depth == 0 && onComplete != nil {
			onComplete()
		}
	}()

	fn()
}
