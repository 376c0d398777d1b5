package internal

// dirtyHeap holds the computeds pending recomputation, bucketed by dependency
// height so a flush processes producers before their consumers. Deduplication
// is the inHeap flag on the computed itself.
type dirtyHeap struct {
	buckets [][]*Computed
	size    int
}

func newDirtyHeap() *dirtyHeap {
	return &dirtyHeap{}
}

func (h *dirtyHeap) insert(c *Computed) {
	if c.inHeap {
		return
	}
	c.inHeap = true

	height := c.h
	for len(h.buckets) <= height {
		h.buckets = append(h.buckets, nil)
	}

	h.buckets[height] = append(h.buckets[height], c)
	h.size++
}

func (h *dirtyHeap) len() int { return h.size }

// drain processes entries in ascending height order. Processing may insert
// new entries at greater heights; those are picked up in the same pass.
// Entries inserted at a lower height than the current one (a compute writing
// a signal) are left for the caller's next drain.
func (h *dirtyHeap) drain(process func(*Computed)) {
	for height := 0; height < len(h.buckets); height++ {
		for len(h.buckets[height]) > 0 {
			c := h.buckets[height][0]
			h.buckets[height] = h.buckets[height][1:]
			h.size--
			c.inHeap = false

			process(c)
		}
	}
}
