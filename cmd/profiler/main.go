// Command profiler runs an insert/remove workload against the skiplist
// while exposing pprof over HTTP, so allocation and CPU behavior of the
// two node allocators can be compared live.
//
// Usage: profiler [pool|arena] [num_items]
package main

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strconv"
	"time"

	skiplist "github.com/dpbriggs/convenient-skiplist"
)

func main() {
	go func() {
		fmt.Println("Starting pprof server on http://localhost:6060/debug/pprof/")
		if err := http.ListenAndServe("localhost:6060", nil); err != nil {
			log.Fatalf("pprof server failed: %v", err)
		}
	}()
	time.Sleep(100 * time.Millisecond)

	allocator, numItems := parseArgs()

	fmt.Println("Starting skiplist workload...")
	fmt.Printf(" - Items:     %d\n", numItems)
	fmt.Printf(" - Allocator: %s\n", allocator)

	var opts []skiplist.Option[int]
	if allocator == "arena" {
		opts = append(opts, skiplist.WithArena[int](numItems))
	}
	sl := skiplist.New[int](opts...)

	start := time.Now()
	for i := 0; i < numItems; i++ {
		sl.Insert(i)
	}
	fmt.Printf("Inserted %d items in %v (len=%d, height=%d)\n",
		numItems, time.Since(start), sl.Len(), sl.Height())

	// Churn phase: remove and reinsert to exercise node recycling.
	start = time.Now()
	for i := 0; i < numItems; i++ {
		sl.Remove(i)
		sl.Insert(i)
	}
	fmt.Printf("Churned %d items in %v\n", numItems, time.Since(start))

	fmt.Println("Keeping process alive for profiling. Press Ctrl+C to exit.")
	select {}
}

func parseArgs() (allocator string, numItems int) {
	allocator = "pool"
	numItems = 2_000_000

	args := os.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "pool", "arena":
			allocator = args[0]
		default:
			log.Fatalf("unknown allocator %q (want pool or arena)", args[0])
		}
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n <= 0 {
			log.Fatalf("invalid item count %q", args[1])
		}
		numItems = n
	}
	return allocator, numItems
}
