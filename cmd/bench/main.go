// Command bench is a lightweight wall-clock microbench comparing the
// pool and arena allocators under a random-key insert workload. Use the
// package benchmarks for anything rigorous; this exists for quick A/B
// runs without the testing harness.
package main

import (
	"fmt"
	"math/rand/v2"
	"runtime"
	"time"

	skiplist "github.com/dpbriggs/convenient-skiplist"
)

func main() {
	const n = 200_000

	r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	keys := make([]int, n)
	for i := range keys {
		keys[i] = int(r.Uint64())
	}

	configs := []struct {
		name string
		opts []skiplist.Option[int]
	}{
		{"Pool", nil},
		{"Arena-1k", []skiplist.Option[int]{skiplist.WithArena[int](1 << 10)}},
		{"Arena-64k", []skiplist.Option[int]{skiplist.WithArena[int](1 << 16)}},
		{"Arena-presized", []skiplist.Option[int]{skiplist.WithArena[int](n)}},
	}

	fmt.Printf("Insert microbench (N=%d)\n", n)
	for _, cfg := range configs {
		runtime.GC()
		time.Sleep(50 * time.Millisecond)

		sl := skiplist.New[int](cfg.opts...)
		start := time.Now()
		for _, k := range keys {
			sl.Insert(k)
		}
		elapsed := time.Since(start)

		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		fmt.Printf("%-16s %10v  (%.0f ns/op, heap=%d MiB, height=%d)\n",
			cfg.name, elapsed, float64(elapsed.Nanoseconds())/float64(n),
			ms.HeapAlloc>>20, sl.Height())
	}
}
