package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"fortio.org/fortio/log"
	"fortio.org/fortio/stats"
	"github.com/loov/hrtime"

	"github.com/geseq/vec2"
)

// step runs one particle integration step against p
func step(p *vec2.Pool, pos, vel *vec2.Vec2, dt float64) {
	d := p.MultiplyScalar(vel, dt, true)
	next := p.Add(pos, d, true)
	p.Clamp(next, vec2.ClampOptions{Min: vec2.Scalar(-1000), Max: vec2.Scalar(1000)})
	p.Copy(pos, next, false)
	p.Recycle(d)
	p.Recycle(next)
}

func run(name string, p *vec2.Pool, count int, rand *rand.Rand) {
	pos := p.Acquire(rand.Float64(), rand.Float64())
	vel := p.Acquire(rand.Float64()-0.5, rand.Float64()-0.5)

	h := stats.NewHistogram(0, 10)
	bench := hrtime.NewBenchmark(count)
	for bench.Next() {
		start := hrtime.Now()
		step(p, pos, vel, 0.016)
		h.Record(float64(hrtime.Since(start)))
	}

	fmt.Printf("== %s\n", name)
	fmt.Println(bench.Histogram(10))
	h.Print(os.Stdout, name+" step latency (ns)", []float64{50, 90, 99, 99.9})
	log.Infof("%s: final position %s, pooled vectors %d", name, pos, p.Size())
}

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "rand seed")
	count := flag.Int("n", 1_000_000, "number of steps per run")
	prealloc := flag.Uint64("prealloc", 16, "vectors to preallocate")
	fifo := flag.Bool("fifo", false, "reuse vectors in FIFO order")
	lock := flag.Bool("lock", false, "use a locked pool")
	flag.Parse()

	if *count <= 0 {
		log.Fatalf("invalid step count %d", *count)
	}

	rand := rand.New(rand.NewSource(*seed))

	pooled := vec2.NewPool(
		vec2.WithPreallocate(*prealloc),
		vec2.WithFIFO(*fifo),
		vec2.WithLocking(*lock),
	)

	run("pooled", pooled, *count, rand)
	run("unpooled", nil, *count, rand)
}
