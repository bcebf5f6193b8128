package vec2

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geseq/vec2/pkg/pool"
)

func TestPool_AcquireFromEmpty(t *testing.T) {
	p := NewPool()

	v := p.Acquire(5, 6)
	assert.Equal(t, Vec2{5, 6}, *v)
	assert.Equal(t, 0, p.Size())

	z := p.New()
	assert.Equal(t, Vec2{}, *z)
}

func TestPool_AcquireReusesRecycled(t *testing.T) {
	p := NewPool()

	v := p.Acquire(1, 2)
	p.Recycle(v)
	require.Equal(t, 1, p.Size())

	w := p.Acquire(7, 8)
	assert.Same(t, v, w)
	assert.Equal(t, Vec2{7, 8}, *w)
	assert.Equal(t, 0, p.Size())
}

func TestPool_SizeInvariant(t *testing.T) {
	p := NewPool()

	var held []*Vec2
	recycled, withdrawn := 0, 0
	for i := 0; i < 200; i++ {
		if i%3 == 2 && len(held) > 0 {
			p.Recycle(held[len(held)-1])
			held = held[:len(held)-1]
			recycled++
		} else {
			before := p.Size()
			held = append(held, p.Acquire(float64(i), 0))
			if before > 0 {
				withdrawn++
			}
		}
		require.Equal(t, recycled-withdrawn, p.Size())
		require.GreaterOrEqual(t, p.Size(), 0)
	}
}

func TestPool_ClearShrink(t *testing.T) {
	p := NewPool(WithPreallocate(10))
	assert.Equal(t, 10, p.Size())

	p.Shrink(12)
	assert.Equal(t, 10, p.Size())

	p.Shrink(4)
	assert.Equal(t, 4, p.Size())

	p.Shrink(0)
	assert.Equal(t, 0, p.Size())

	for i := 0; i < 5; i++ {
		p.Recycle(&Vec2{})
	}
	p.Shrink(-1)
	assert.Equal(t, 0, p.Size())

	for i := 0; i < 5; i++ {
		p.Recycle(&Vec2{})
	}
	held := p.Acquire(3, 3)
	p.Clear()
	assert.Equal(t, 0, p.Size())
	assert.Equal(t, Vec2{3, 3}, *held)
}

func TestPool_Clone(t *testing.T) {
	p := NewPool()
	v := p.Acquire(0, 1)
	c := p.Clone(v)

	assert.NotSame(t, v, c)
	assert.True(t, v.Equal(*c))
}

func TestPool_Nil(t *testing.T) {
	var p *Pool

	v := p.Acquire(1, 2)
	require.NotNil(t, v)
	assert.Equal(t, Vec2{1, 2}, *v)

	p.Recycle(v)
	p.Clear()
	p.Shrink(0)
	assert.Equal(t, 0, p.Size())

	n := p.Add(v, v, true)
	assert.Equal(t, Vec2{2, 4}, *n)
}

func TestPool_RecycleNil(t *testing.T) {
	p := NewPool()
	p.Recycle(nil)
	assert.Equal(t, 0, p.Size())
}

func TestPool_FIFO(t *testing.T) {
	p := NewPool(WithFIFO(true))

	a, b := p.New(), p.New()
	p.Recycle(a)
	p.Recycle(b)

	assert.Same(t, a, p.New())
	assert.Same(t, b, p.New())
}

func TestPool_LIFO(t *testing.T) {
	p := NewPool()

	a, b := p.New(), p.New()
	p.Recycle(a)
	p.Recycle(b)

	assert.Same(t, b, p.New())
	assert.Same(t, a, p.New())
}

func TestPool_MaxSize(t *testing.T) {
	m := pool.NewMetrics("test_max_size")
	p := NewPool(WithMaxSize(2), WithMetrics(m))

	for i := 0; i < 5; i++ {
		p.Recycle(&Vec2{})
	}
	assert.Equal(t, 2, p.Size())
	assert.EqualValues(t, 3, m.Stats().Discards)
	assert.EqualValues(t, 2, m.Stats().Returns)
}

func TestPool_OwnershipCheck(t *testing.T) {
	p := NewPool(WithOwnershipCheck(true), WithPreallocate(2))
	assert.Equal(t, 2, p.Size())

	v := p.Acquire(1, 1)
	p.Recycle(v)
	assert.PanicsWithValue(t, ErrDoubleRecycle, func() { p.Recycle(v) })
	assert.Equal(t, 2, p.Size())

	// withdrawn again, so recycling is legal once more
	w := p.Acquire(2, 2)
	assert.Same(t, v, w)
	assert.NotPanics(t, func() { p.Recycle(w) })

	p.Shrink(1)
	assert.Equal(t, 1, p.Size())
	p.Clear()
	assert.Equal(t, 0, p.Size())
	assert.NotPanics(t, func() { p.Recycle(w) })
}

func TestPool_OwnershipCheckPrealloc(t *testing.T) {
	p := NewPool(WithOwnershipCheck(true), WithPreallocate(1), WithFIFO(true))

	v := p.New()
	assert.Equal(t, 0, p.Size())
	p.Recycle(v)
	assert.Panics(t, func() { p.Recycle(v) })
}

func TestPool_Metrics(t *testing.T) {
	m := pool.NewMetrics("test_pool_metrics")
	p := NewPool(WithMetrics(m))

	v := p.New()
	p.Recycle(v)
	v = p.New()
	p.Recycle(v)
	p.Recycle(p.Acquire(1, 1))
	p.Clear()

	s := m.Stats()
	assert.EqualValues(t, 3, s.Gets)
	assert.EqualValues(t, 1, s.Misses)
	assert.EqualValues(t, 3, s.Returns)
	assert.EqualValues(t, 1, s.Discards)
	assert.InDelta(t, 2.0/3.0, s.HitRate(), 1e-9)
}

func TestPool_Locking(t *testing.T) {
	p := NewPool(WithLocking(true), WithOwnershipCheck(true))

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				v := p.Acquire(float64(g), float64(i))
				p.MultiplyScalar(v, 2, false)
				p.Recycle(v)
			}
		}(g)
	}
	wg.Wait()

	assert.LessOrEqual(t, p.Size(), 8)
	assert.Greater(t, p.Size(), 0)
	p.Shrink(0)
	assert.Equal(t, 0, p.Size())
}
