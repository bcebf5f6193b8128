package pool

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// poolGets tracks total Get() calls per pool.
	poolGets = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vec2",
		Subsystem: "pool",
		Name:      "gets_total",
		Help:      "Total number of vectors acquired from a pool",
	}, []string{"pool"})

	// poolMisses tracks gets that had to allocate because the pool was empty.
	poolMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vec2",
		Subsystem: "pool",
		Name:      "misses_total",
		Help:      "Total number of acquisitions served by a new allocation",
	}, []string{"pool"})

	// poolReturns tracks records accepted back into a pool.
	poolReturns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vec2",
		Subsystem: "pool",
		Name:      "returns_total",
		Help:      "Total number of vectors recycled into a pool",
	}, []string{"pool"})

	// poolDiscards tracks records dropped by a full pool, Clear or Shrink.
	poolDiscards = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vec2",
		Subsystem: "pool",
		Name:      "discards_total",
		Help:      "Total number of vectors dropped by a pool and left to the GC",
	}, []string{"pool"})
)

// Metrics tracks pool utilization for a single named pool.
type Metrics struct {
	name     string
	gets     atomic.Uint64
	misses   atomic.Uint64
	returns  atomic.Uint64
	discards atomic.Uint64
}

// NewMetrics creates a Metrics instance reporting under the given pool label.
func NewMetrics(name string) *Metrics {
	return &Metrics{name: name}
}

// Name returns the pool label
func (m *Metrics) Name() string {
	return m.name
}

// RecordGet counts an acquisition. miss is true when the pool was empty.
func (m *Metrics) RecordGet(miss bool) {
	m.gets.Add(1)
	poolGets.WithLabelValues(m.name).Inc()
	if miss {
		m.misses.Add(1)
		poolMisses.WithLabelValues(m.name).Inc()
	}
}

// RecordReturn counts a recycled item
func (m *Metrics) RecordReturn() {
	m.returns.Add(1)
	poolReturns.WithLabelValues(m.name).Inc()
}

// RecordDiscard counts n dropped items
func (m *Metrics) RecordDiscard(n int) {
	if n <= 0 {
		return
	}
	m.discards.Add(uint64(n))
	poolDiscards.WithLabelValues(m.name).Add(float64(n))
}

// Stats returns current pool statistics.
func (m *Metrics) Stats() Stats {
	return Stats{
		Gets:     m.gets.Load(),
		Misses:   m.misses.Load(),
		Returns:  m.returns.Load(),
		Discards: m.discards.Load(),
	}
}

// Stats contains pool utilization statistics.
type Stats struct {
	Gets     uint64
	Misses   uint64
	Returns  uint64
	Discards uint64
}

// HitRate is the share of gets served from pooled items.
func (s Stats) HitRate() float64 {
	if s.Gets == 0 {
		return 0
	}
	return float64(s.Gets-s.Misses) / float64(s.Gets)
}
