package viz

import (
	"context"
	"runtime"
	"sync"

	"github.com/san-kum/cubesphere/internal/sketch"
)

// RenderBatch rasterizes frames onto one canvas each, spreading the work
// over the available CPUs. cam is only read.
func RenderBatch(ctx context.Context, frames []sketch.Frame, cam *Camera, cols, rows int) ([]*Canvas, error) {
	canvases := make([]*Canvas, len(frames))
	parallelFor(len(frames), 8, func(start, end int) {
		for i := start; i < end; i++ {
			if ctx.Err() != nil {
				return
			}
			c := NewCanvas(cols, rows)
			RenderFrame(c, frames[i], cam, frames[i].Params.Lighting)
			canvases[i] = c
		}
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return canvases, nil
}

// parallelFor executes fn over [0, n) in contiguous chunks of at least
// minChunk items.
func parallelFor(n, minChunk int, fn func(start, end int)) {
	workers := runtime.NumCPU()
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
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
