package pool

// FreeList is a last-in-first-out object pool backed by a slice.
// It is not safe for concurrent use; wrap it in Locked for that.
type FreeList[T any] struct {
	items []*T
}

// NewFreeList creates a free list and prepopulates it with prealloc items
// carved out of a single contiguous block.
func NewFreeList[T any](prealloc uint64) *FreeList[T] {
	p := &FreeList[T]{
		items: make([]*T, 0, prealloc),
	}
	p.fill(prealloc)

	return p
}

func (p *FreeList[T]) fill(n uint64) {
	if n == 0 {
		return
	}

	block := make([]T, n)
	for i := range block {
		p.items = append(p.items, &block[i])
	}
}

// Get pops the most recently returned item. It returns nil if the list is empty.
func (p *FreeList[T]) Get() *T {
	n := len(p.items)
	if n == 0 {
		return nil
	}

	o := p.items[n-1]
	p.items[n-1] = nil
	p.items = p.items[:n-1]

	return o
}

// Put pushes an item on top of the list
func (p *FreeList[T]) Put(o *T) {
	if o == nil {
		return
	}

	p.items = append(p.items, o)
}

// Len returns the number of pooled items
func (p *FreeList[T]) Len() int {
	return len(p.items)
}

// Clear drops all pooled items
func (p *FreeList[T]) Clear() {
	clear(p.items)
	p.items = p.items[:0]
}

// Shrink pops items until at most n remain
func (p *FreeList[T]) Shrink(n int) int {
	if n < 0 {
		n = 0
	}

	drop := len(p.items) - n
	if drop <= 0 {
		return 0
	}

	clear(p.items[n:])
	p.items = p.items[:n]

	return drop
}
