package rendering

import (
	"raycaster/internal/threading/core"
)

// ParallelRenderer spreads per-column work over a shared worker pool.
type ParallelRenderer struct {
	workerPool *core.WorkerPool
}

// NewParallelRenderer creates a new parallel renderer; workers <= 0 uses the CPU count.
func NewParallelRenderer(workers int) *ParallelRenderer {
	return &ParallelRenderer{
		workerPool: core.CreateWorkerPool(workers),
	}
}

// RunColumns calls fn once for every column in [0, numColumns) and returns
// when all calls have finished. fn must only write state owned by its column.
func (pr *ParallelRenderer) RunColumns(numColumns int, fn func(column int)) {
	// Very small workloads: process inline to avoid synchronization overhead
	if numColumns <= 8 {
		for column := 0; column < numColumns; column++ {
			fn(column)
		}
		return
	}

	pr.workerPool.ParallelFor(0, numColumns, fn)
}

// Workers reports the size of the underlying pool.
func (pr *ParallelRenderer) Workers() int {
	return pr.workerPool.GetNumWorkers()
}

// Stop waits for queued work and shuts down the worker pool.
func (pr *ParallelRenderer) Stop() {
	pr.workerPool.Wait()
	pr.workerPool.Stop()
}
