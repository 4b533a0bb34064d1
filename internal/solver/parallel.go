package solver

import (
	"runtime"
	"sync"

	"github.com/san-kum/hopsim/internal/lattice"
)

// ParallelEuler computes the same scheme as Euler with the site loop split
// across goroutines. Within a single step every site reads only the previous
// column, so the chunks need no synchronization beyond the final join.
// Worthwhile only for large lattices; below minChunk sites it runs serially.
type ParallelEuler struct {
	minChunk int
}

func NewParallelEuler() *ParallelEuler {
	return &ParallelEuler{minChunk: 4096}
}

func (p *ParallelEuler) Step(next, prev lattice.Distribution, k, dt float64) {
	n := len(prev)
	c := k * dt
	next[0] = prev[0] + c*(prev[1]-prev[0])
	next[n-1] = prev[n-1] + c*(prev[n-2]-prev[n-1])
	parallelFor(n-2, p.minChunk, func(start, end int) {
		for i := start + 1; i < end+1; i++ {
			next[i] = prev[i] + c*(prev[i-1]+prev[i+1]-2*prev[i])
		}
	})
}

// parallelFor executes fn over chunks of [0, n).
func parallelFor(n, minChunk int, fn func(start, end int)) {
	workers := runtime.GOMAXPROCS(0)
	if n <= minChunk || workers <= 1 {
		fn(0, n)
		return
	}

	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}

		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
