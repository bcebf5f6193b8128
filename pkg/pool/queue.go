package pool

import (
	"github.com/eapache/queue"
)

// Queue is a first-in-first-out object pool: the item returned longest ago
// is handed out first. It is not safe for concurrent use.
type Queue[T any] struct {
	q *queue.Queue
}

// NewQueue creates a queue pool prepopulated with prealloc items
func NewQueue[T any](prealloc uint64) *Queue[T] {
	p := &Queue[T]{
		q: queue.New(),
	}

	if prealloc > 0 {
		block := make([]T, prealloc)
		for i := range block {
			p.q.Add(&block[i])
		}
	}

	return p
}

// Get removes the oldest item. It returns nil if the queue is empty.
func (p *Queue[T]) Get() *T {
	if p.q.Length() == 0 {
		return nil
	}

	return p.q.Remove().(*T)
}

// Put appends an item to the back of the queue
func (p *Queue[T]) Put(o *T) {
	if o == nil {
		return
	}

	p.q.Add(o)
}

// Len returns the number of pooled items
func (p *Queue[T]) Len() int {
	return p.q.Length()
}

// Clear drops all pooled items
func (p *Queue[T]) Clear() {
	p.q = queue.New()
}

// Shrink drops the oldest items until at most n remain
func (p *Queue[T]) Shrink(n int) int {
	if n <= 0 {
		dropped := p.q.Length()
		p.Clear()
		return dropped
	}

	var dropped int
	for p.q.Length() > n {
		p.q.Remove()
		dropped++
	}

	return dropped
}
