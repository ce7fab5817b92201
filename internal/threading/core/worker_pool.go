package core

import (
	"context"
	"runtime"
	"sync"

	"raycaster/internal/mathutil"
)

// Batch bounds for ParallelFor.
const (
	minBatch = 4
	maxBatch = 32
)

// WorkerPool manages a pool of worker goroutines for parallel processing
type WorkerPool struct {
	numWorkers int
	jobQueue   chan func()
	wg         sync.WaitGroup
	quit       chan struct{}
	stopOnce   sync.Once
}

// NewWorkerPool creates a new worker pool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		numWorkers: numWorkers,
		jobQueue:   make(chan func(), numWorkers*2), // Buffer for better performance
		quit:       make(chan struct{}),
	}
}

// Start initializes and starts all worker goroutines
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		go wp.worker()
	}
}

// worker is the goroutine that processes jobs from the queue
func (wp *WorkerPool) worker() {
	for {
		select {
		case job := <-wp.jobQueue:
			job()
			wp.wg.Done()
		case <-wp.quit:
			return
		}
	}
}

// Submit adds a job to the worker queue
func (wp *WorkerPool) Submit(job func()) {
	wp.wg.Add(1)
	wp.jobQueue <- job
}

// Wait waits for all currently queued jobs to complete
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

// Stop shuts down the worker pool. It is safe to call more than once.
func (wp *WorkerPool) Stop() {
	wp.stopOnce.Do(func() { close(wp.quit) })
}

// ParallelFor calls fn for every index in [start, end) on the pool and
// returns when all calls have finished.
func (wp *WorkerPool) ParallelFor(start, end int, fn func(int)) {
	wp.ParallelForWithContext(context.Background(), start, end, fn)
}

// ParallelForWithContext is ParallelFor with cancellation. Indices are handed
// out in contiguous batches of minBatch..maxBatch; a cancelled ctx stops each
// batch before its next index.
func (wp *WorkerPool) ParallelForWithContext(ctx context.Context, start, end int, fn func(int)) {
	if start >= end {
		return
	}

	batch := mathutil.IntMin(mathutil.IntMax((end-start)/wp.numWorkers, minBatch), maxBatch)

	var wg sync.WaitGroup
	for i := start; i < end; i += batch {
		lo, hi := i, mathutil.IntMin(i+batch, end)
		wg.Add(1)
		wp.Submit(func() {
			defer wg.Done()
			for j := lo; j < hi; j++ {
				if ctx.Err() != nil {
					return
				}
				fn(j)
			}
		})
	}
	wg.Wait()
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// CreateWorkerPool creates and starts a pool; workers <= 0 uses the CPU count.
func CreateWorkerPool(workers int) *WorkerPool {
	pool := NewWorkerPool(workers)
	pool.Start()
	return pool
}
