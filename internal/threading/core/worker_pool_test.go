package core

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPoolCreation(t *testing.T) {
	wp := NewWorkerPool(0)
	if wp.GetNumWorkers() != runtime.NumCPU() {
		t.Errorf("Expected %d workers (CPU count), got %d", runtime.NumCPU(), wp.GetNumWorkers())
	}

	wp2 := NewWorkerPool(4)
	if wp2.GetNumWorkers() != 4 {
		t.Errorf("Expected 4 workers, got %d", wp2.GetNumWorkers())
	}
}

func TestWorkerPoolJobExecution(t *testing.T) {
	wp := CreateWorkerPool(2)
	defer wp.Stop()

	var counter int32
	for i := 0; i < 10; i++ {
		wp.Submit(func() {
			atomic.AddInt32(&counter, 1)
		})
	}
	wp.Wait()

	if counter != 10 {
		t.Errorf("Expected counter to be 10, got %d", counter)
	}
}

func TestWorkerPoolParallelFor(t *testing.T) {
	wp := CreateWorkerPool(3)
	defer wp.Stop()

	var results [10]int32
	wp.ParallelFor(0, 10, func(i int) {
		atomic.StoreInt32(&results[i], int32(i*2))
		time.Sleep(time.Millisecond)
	})

	for i := 0; i < 10; i++ {
		if got := atomic.LoadInt32(&results[i]); got != int32(i*2) {
			t.Errorf("Expected results[%d] = %d, got %d", i, i*2, got)
		}
	}
}

func TestWorkerPoolParallelForCoversRangeOnce(t *testing.T) {
	wp := CreateWorkerPool(2)
	defer wp.Stop()

	for _, r := range [][2]int{{0, 1}, {0, 9}, {3, 70}, {0, 1000}} {
		counts := make([]int32, r[1])
		wp.ParallelFor(r[0], r[1], func(i int) {
			atomic.AddInt32(&counts[i], 1)
		})
		for i, c := range counts {
			want := int32(0)
			if i >= r[0] {
				want = 1
			}
			if c != want {
				t.Fatalf("range %v: index %d visited %d times", r, i, c)
			}
		}
	}
}

func TestWorkerPoolParallelForEmptyRange(t *testing.T) {
	wp := CreateWorkerPool(2)
	defer wp.Stop()

	called := false
	wp.ParallelFor(5, 5, func(int) { called = true })
	if called {
		t.Error("Expected no calls for an empty range")
	}
}

func TestWorkerPoolParallelForCancelled(t *testing.T) {
	wp := CreateWorkerPool(2)
	defer wp.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls int32
	wp.ParallelForWithContext(ctx, 0, 100, func(int) { atomic.AddInt32(&calls, 1) })
	if calls != 0 {
		t.Errorf("Expected cancelled loop to skip all work, got %d calls", calls)
	}
}

func TestWorkerPoolConcurrentAccess(t *testing.T) {
	wp := CreateWorkerPool(4)
	defer wp.Stop()

	var counter int64
	numGoroutines := 10
	jobsPerGoroutine := 50

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < jobsPerGoroutine; j++ {
				wp.Submit(func() {
					atomic.AddInt64(&counter, 1)
				})
			}
		}()
	}

	wg.Wait()
	wp.Wait()

	expected := int64(numGoroutines * jobsPerGoroutine)
	if atomic.LoadInt64(&counter) != expected {
		t.Errorf("Expected counter to be %d, got %d", expected, counter)
	}
}

func TestWorkerPoolStopTwice(t *testing.T) {
	wp := CreateWorkerPool(1)
	wp.Stop()
	wp.Stop()
}
