// Package parallel spreads independent per-sample work across CPUs.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how a loop is split across goroutines.
type Config struct {
	Workers  int // Goroutines to fan out across; values below 2 run sequentially.
	MinItems int // Smallest n worth parallelizing.
}

// DefaultConfig sizes the pool to the machine. The MinItems floor is low
// because each item here is a full network evaluation, not a cheap
// element-wise op.
func DefaultConfig() Config {
	return Config{
		Workers:  runtime.NumCPU(),
		MinItems: 16,
	}
}

// For executes f(i) for every i in [0, n), fanning out across
// cfg.Workers goroutines when n reaches cfg.MinItems. Each index is
// visited exactly once; f must write only to locations owned by its
// index. For returns after all calls complete.
func For(n int, cfg Config, f func(i int)) {
	if cfg.Workers < 2 || n < cfg.MinItems {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	chunk := (n + cfg.Workers - 1) / cfg.Workers

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
