// Package parallel provides the work-splitting helper used by the CPU
// backend for data-parallel loops such as matmul rows.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how loops are split across goroutines.
type Config struct {
	Enabled      bool // Run in parallel at all.
	NumWorkers   int  // Goroutines to spread the loop over.
	MinChunkSize int  // Below this many iterations, run sequentially.
}

// DefaultConfig sizes workers to the machine. Loops shorter than
// MinChunkSize stay sequential; goroutine handoff costs more than the work.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64,
	}
}

// For executes f(i) for every i in [0, n), splitting the range into
// contiguous chunks across workers. Iterations must be independent; f runs
// concurrently with itself.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	chunk := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
