package threading

import (
	"raycaster/internal/threading/monitoring"
	"raycaster/internal/threading/rendering"
)

// ThreadingComponents holds all threading-related components
type ThreadingComponents struct {
	ParallelRenderer   *rendering.ParallelRenderer
	PerformanceMonitor *monitoring.PerformanceMonitor
}

// NewThreadingComponents creates the monitor and, when parallel is set, a
// column renderer backed by a pool of the given size.
func NewThreadingComponents(parallel bool, workers int) *ThreadingComponents {
	tc := &ThreadingComponents{
		PerformanceMonitor: monitoring.NewPerformanceMonitor(),
	}
	if parallel {
		tc.ParallelRenderer = rendering.NewParallelRenderer(workers)
	}
	return tc
}

// Shutdown gracefully shuts down all threading components
func (tc *ThreadingComponents) Shutdown() {
	if tc.ParallelRenderer != nil {
		tc.ParallelRenderer.Stop()
	}
	if tc.PerformanceMonitor != nil {
		tc.PerformanceMonitor.Reset()
	}
}

// GetPerformanceMetrics returns current performance metrics
func (tc *ThreadingComponents) GetPerformanceMetrics() monitoring.RenderMetrics {
	if tc.PerformanceMonitor != nil {
		return tc.PerformanceMonitor.GetCurrentMetrics()
	}
	return monitoring.RenderMetrics{}
}

// CheckPerformanceAlerts returns any performance warnings
func (tc *ThreadingComponents) CheckPerformanceAlerts() []monitoring.PerformanceAlert {
	if tc.PerformanceMonitor != nil {
		return tc.PerformanceMonitor.CheckPerformanceAlerts()
	}
	return nil
}
