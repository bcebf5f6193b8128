package vec2

import (
	"github.com/geseq/vec2/pkg/pool"
)

type Option func(*Pool)

type options []Option

func (l options) applyTo(p *Pool) {
	for _, opt := range l {
		opt(p)
	}
}

// defaultOpts provides list of options
var defaultOpts = []Option{
	WithPreallocate(0),
	WithMaxSize(0),
	WithFIFO(false),
	WithLocking(false),
	WithOwnershipCheck(false),
}

// WithPreallocate fills the pool with n vectors at construction
func WithPreallocate(n uint64) Option {
	return func(p *Pool) { p.prealloc = n }
}

// WithMaxSize caps the number of pooled vectors. Recycled vectors beyond the
// cap are left to the GC. Zero means unbounded.
func WithMaxSize(n uint64) Option {
	return func(p *Pool) { p.maxSize = n }
}

// WithFIFO hands out the vector recycled longest ago first instead of the most recent one
func WithFIFO(b bool) Option {
	return func(p *Pool) { p.fifo = b }
}

// WithLocking makes the pool safe for concurrent use
func WithLocking(b bool) Option {
	return func(p *Pool) { p.locking = b }
}

// WithOwnershipCheck tracks pooled vectors so that recycling a vector that is
// already in the pool panics with ErrDoubleRecycle.
func WithOwnershipCheck(b bool) Option {
	return func(p *Pool) { p.checkOwnership = b }
}

// WithMetrics records pool utilization in m
func WithMetrics(m *pool.Metrics) Option {
	return func(p *Pool) { p.metrics = m }
}
