package pool

import (
	"sync"

	"golang.org/x/sys/cpu"
)

// Locked guards another pool with a mutex so it can be shared between goroutines
type Locked[T any] struct {
	_     cpu.CacheLinePad
	mu    sync.Mutex
	inner PoolInterface[T]
	_     cpu.CacheLinePad
}

// NewLocked wraps inner. inner must not be used directly afterwards.
func NewLocked[T any](inner PoolInterface[T]) *Locked[T] {
	return &Locked[T]{inner: inner}
}

func (p *Locked[T]) Get() *T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inner.Get()
}

func (p *Locked[T]) Put(o *T) {
	if o == nil {
		return
	}

	p.mu.Lock()
	p.inner.Put(o)
	p.mu.Unlock()
}

func (p *Locked[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inner.Len()
}

func (p *Locked[T]) Clear() {
	p.mu.Lock()
	p.inner.Clear()
	p.mu.Unlock()
}

func (p *Locked[T]) Shrink(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inner.Shrink(n)
}

// Do runs fn while holding the lock. fn receives the unguarded pool.
func (p *Locked[T]) Do(fn func(inner PoolInterface[T])) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(p.inner)
}
