package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"runtime"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"fortio.org/fortio/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/geseq/vec2"
	"github.com/geseq/vec2/pkg/pool"
)

func main() {
	runtime.LockOSThread()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		runtime.LockOSThread()

		seed := flag.Int64("seed", time.Now().UnixNano(), "rand seed")
		duration := flag.Int("duration", 10, "benchmark duration in seconds")
		particles := flag.Int("particles", 1000, "number of particles")
		pd := flag.Uint64("p", 1, "print interval in seconds")
		gc := flag.Bool("gc", true, "use gc")
		usePool := flag.Bool("pool", true, "recycle vectors")
		maxSize := flag.Uint64("max", 0, "maximum pooled vectors, 0 for unbounded")
		addr := flag.String("metrics", "", "serve prometheus metrics on this address")
		flag.Parse()

		if !*gc {
			debug.SetGCPercent(-1)
		}
		rand := rand.New(rand.NewSource(*seed))

		m := pool.NewMetrics("throughput")
		var p *vec2.Pool
		if *usePool {
			p = vec2.NewPool(
				vec2.WithPreallocate(uint64(2**particles)),
				vec2.WithMaxSize(*maxSize),
				vec2.WithMetrics(m),
			)
		}

		if *addr != "" {
			go func() {
				http.Handle("/metrics", promhttp.Handler())
				if err := http.ListenAndServe(*addr, nil); err != nil {
					log.Errf("metrics server: %v", err)
				}
			}()
		}

		pos := make([]*vec2.Vec2, *particles)
		vel := make([]*vec2.Vec2, *particles)
		for i := range pos {
			pos[i] = p.Acquire(rand.Float64()*100, rand.Float64()*100)
			vel[i] = p.Acquire(rand.Float64()-0.5, rand.Float64()-0.5)
			p.Normalize(vel[i], false)
		}
		target := vec2.Vec2{X: 50, Y: 50}

		var ops uint64

		log.Infof("starting throughput benchmark with %d particles", *particles)
		start := time.Now()
		end := time.Now().Add(time.Duration(*duration) * time.Second)
		for time.Now().Before(end) {
			for i := range pos {
				toTarget := p.Subtract(&target, pos[i], true)
				p.Normalize(toTarget, false)
				p.Lerp(vel[i], toTarget, 0.05, false)
				d := p.MultiplyScalar(vel[i], 0.016, true)
				p.Add(pos[i], d, false)
				p.Recycle(toTarget)
				p.Recycle(d)
			}
			atomic.AddUint64(&ops, uint64(*particles))

			if elapsed := time.Since(start); uint64(elapsed.Seconds()) >= *pd {
				fmt.Printf("steps/s: %.0f\n", float64(ops)/elapsed.Seconds())
				ops = 0
				start = time.Now()
			}
		}

		s := m.Stats()
		log.Infof("pool size %d, gets %d, misses %d, hit rate %.4f",
			p.Size(), s.Gets, s.Misses, s.HitRate())
	}()

	wg.Wait()
}
