package vec2

import (
	"fortio.org/fortio/log"

	"github.com/geseq/vec2/pkg/pool"
)

// Pool is a free list of retired vectors.
//
// Acquire hands out pooled vectors before allocating new ones and Recycle
// returns vectors to the pool. Ownership moves with the pointer: after
// Recycle the caller must not read or write the vector, and must not recycle
// it again until Acquire has handed it back out. Violations are not detected
// unless the pool was created WithOwnershipCheck, and otherwise show up as two
// callers silently sharing one vector.
//
// A Pool is not safe for concurrent use unless created WithLocking.
// A nil *Pool is valid: it always allocates and drops recycled vectors.
type Pool struct {
	store  pool.PoolInterface[Vec2]
	locked *pool.Locked[Vec2]

	pooled  map[*Vec2]struct{}
	metrics *pool.Metrics

	prealloc       uint64
	maxSize        uint64
	fifo           bool
	locking        bool
	checkOwnership bool
}

// NewPool creates a vector pool
func NewPool(opts ...Option) *Pool {
	p := &Pool{}
	options(defaultOpts).applyTo(p)
	options(opts).applyTo(p)

	if p.fifo {
		p.store = pool.NewQueue[Vec2](p.prealloc)
	} else {
		p.store = pool.NewFreeList[Vec2](p.prealloc)
	}

	if p.locking {
		p.locked = pool.NewLocked[Vec2](p.store)
		p.store = p.locked
	}

	if p.checkOwnership {
		p.pooled = make(map[*Vec2]struct{}, p.prealloc)
		p.withStore(func(s pool.PoolInterface[Vec2]) {
			held := make([]*Vec2, 0, s.Len())
			for v := s.Get(); v != nil; v = s.Get() {
				held = append(held, v)
			}
			for _, v := range held {
				s.Put(v)
				p.pooled[v] = struct{}{}
			}
		})
	}

	return p
}

// withStore runs fn against the unguarded store, holding the lock if the pool has one
func (p *Pool) withStore(fn func(s pool.PoolInterface[Vec2])) {
	if p.locked != nil {
		p.locked.Do(fn)
		return
	}
	fn(p.store)
}

// New returns a zero vector from the pool
func (p *Pool) New() *Vec2 {
	return p.Acquire(0, 0)
}

// Acquire returns a vector set to (x, y), reusing a pooled one if available
func (p *Pool) Acquire(x, y float64) *Vec2 {
	if p == nil {
		return &Vec2{X: x, Y: y}
	}

	var v *Vec2
	if p.checkOwnership {
		p.withStore(func(s pool.PoolInterface[Vec2]) {
			v = s.Get()
			if v != nil {
				delete(p.pooled, v)
			}
		})
	} else {
		v = p.store.Get()
	}

	if p.metrics != nil {
		p.metrics.RecordGet(v == nil)
	}

	if v == nil {
		return &Vec2{X: x, Y: y}
	}

	v.X = x
	v.Y = y
	return v
}

// Clone returns a pooled copy of v
func (p *Pool) Clone(v *Vec2) *Vec2 {
	return p.Acquire(v.X, v.Y)
}

// Recycle hands v over to the pool for reuse. v must not be used afterwards.
func (p *Pool) Recycle(v *Vec2) {
	if p == nil || v == nil {
		return
	}

	if p.checkOwnership || p.maxSize > 0 {
		p.withStore(func(s pool.PoolInterface[Vec2]) {
			p.recycle(s, v)
		})
		return
	}

	p.store.Put(v)
	if p.metrics != nil {
		p.metrics.RecordReturn()
	}
}

func (p *Pool) recycle(s pool.PoolInterface[Vec2], v *Vec2) {
	if p.checkOwnership {
		if _, ok := p.pooled[v]; ok {
			panic(ErrDoubleRecycle)
		}
	}

	if p.maxSize > 0 && uint64(s.Len()) >= p.maxSize {
		// Leave it to GC
		if p.metrics != nil {
			p.metrics.RecordDiscard(1)
		}
		return
	}

	s.Put(v)
	if p.checkOwnership {
		p.pooled[v] = struct{}{}
	}
	if p.metrics != nil {
		p.metrics.RecordReturn()
	}
}

// Size returns the number of pooled vectors
func (p *Pool) Size() int {
	if p == nil {
		return 0
	}
	return p.store.Len()
}

// Clear drops every pooled vector. Vectors held by callers are unaffected.
func (p *Pool) Clear() {
	if p == nil {
		return
	}

	var dropped int
	p.withStore(func(s pool.PoolInterface[Vec2]) {
		dropped = s.Len()
		s.Clear()
		if p.checkOwnership {
			clear(p.pooled)
		}
	})

	if p.metrics != nil {
		p.metrics.RecordDiscard(dropped)
	}
	log.LogVf("vec2: pool cleared, dropped %d vectors", dropped)
}

// Shrink drops pooled vectors until at most n remain. n <= 0 empties the pool.
func (p *Pool) Shrink(n int) {
	if p == nil {
		return
	}

	var dropped int
	p.withStore(func(s pool.PoolInterface[Vec2]) {
		if !p.checkOwnership {
			dropped = s.Shrink(n)
			return
		}

		for s.Len() > n && s.Len() > 0 {
			delete(p.pooled, s.Get())
			dropped++
		}
	})

	if p.metrics != nil {
		p.metrics.RecordDiscard(dropped)
	}
	if dropped > 0 {
		log.LogVf("vec2: pool shrunk to %d, dropped %d vectors", n, dropped)
	}
}
