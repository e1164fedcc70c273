// Package parallel provides the chunked fan-out helper used for per-row
// scoring. Workers receive disjoint index ranges, so callers that only write
// to their own range stay deterministic regardless of worker count.
package parallel

import (
	"runtime"
	"sync"
)

// For splits items across up to NumCPU workers and calls fn with each
// worker's half-open range [start, end). It returns after every worker has
// finished.
func For(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}

	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ForWithThreshold runs fn(0, items) sequentially when items is at or below
// threshold, avoiding goroutine overhead on small batches.
func ForWithThreshold(items, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	For(items, fn)
}
