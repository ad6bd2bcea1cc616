package seq

import (
	"runtime"
	"sync"
)

// ParallelColumns runs fn(col) for every col in [0, cols) using at most
// workers goroutines. Columns are independent by construction in every matrix
// kernel of this module, so scheduling never affects results.
//
//   - workers ≤ 0 selects runtime.GOMAXPROCS(0)
//   - workers == 1 (or a single column) runs inline on the caller's goroutine
//
// Complexity: O(cols) scheduling overhead on top of the per-column work.
func ParallelColumns(workers, cols int, fn func(col int)) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > cols {
		workers = cols
	}
	if workers <= 1 {
		for j := 0; j < cols; j++ {
			fn(j)
		}

		return
	}

	var wg sync.WaitGroup
	jobs := make(chan int, cols)
	for j := 0; j < cols; j++ {
		jobs <- j
	}
	close(jobs)

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				fn(j)
			}
		}()
	}
	wg.Wait()
}
