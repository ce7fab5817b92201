package monitoring

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// smoothing weight given to the newest sample in the running averages
const smoothing = 0.1

// PerformanceMonitor tracks frame and ray casting timings
type PerformanceMonitor struct {
	// Frame metrics
	frameCount atomic.Uint64
	frameTime  atomic.Uint64 // nanoseconds

	// Casting metrics
	raycastTime   atomic.Uint64
	raycastPasses atomic.Uint64
	columnsCast   atomic.Uint64

	// Statistics
	mutex          sync.RWMutex
	avgFrameTime   float64
	avgRaycastTime float64
	startTime      time.Time
}

// NewPerformanceMonitor creates a new performance monitor
func NewPerformanceMonitor() *PerformanceMonitor {
	return &PerformanceMonitor{
		startTime: time.Now(),
	}
}

// FrameTimer helps measure frame timing
type FrameTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartFrame begins frame timing
func (pm *PerformanceMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{
		monitor:   pm,
		startTime: time.Now(),
	}
}

// EndFrame completes frame timing
func (ft *FrameTimer) EndFrame() {
	ft.monitor.RecordFrame(time.Since(ft.startTime))
}

// RecordFrame stores one frame duration.
func (pm *PerformanceMonitor) RecordFrame(d time.Duration) {
	pm.frameTime.Store(uint64(d.Nanoseconds()))
	count := pm.frameCount.Add(1)

	pm.mutex.Lock()
	pm.avgFrameTime = average(pm.avgFrameTime, float64(d.Nanoseconds()), count)
	pm.mutex.Unlock()
}

// RaycastTimer helps measure raycasting performance
type RaycastTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartRaycast begins raycast timing
func (pm *PerformanceMonitor) StartRaycast() *RaycastTimer {
	return &RaycastTimer{
		monitor:   pm,
		startTime: time.Now(),
	}
}

// EndRaycast completes raycast timing for a pass that cast the given number of columns
func (rt *RaycastTimer) EndRaycast(columns int) {
	rt.monitor.RecordRaycast(time.Since(rt.startTime), columns)
}

// RecordRaycast stores the duration of one casting pass.
func (pm *PerformanceMonitor) RecordRaycast(d time.Duration, columns int) {
	pm.raycastTime.Store(uint64(d.Nanoseconds()))
	pm.columnsCast.Add(uint64(columns))
	passes := pm.raycastPasses.Add(1)

	pm.mutex.Lock()
	pm.avgRaycastTime = average(pm.avgRaycastTime, float64(d.Nanoseconds()), passes)
	pm.mutex.Unlock()
}

func average(prev, sample float64, count uint64) float64 {
	if count <= 1 || prev == 0 {
		return sample
	}
	return prev + smoothing*(sample-prev)
}

// RenderMetrics is a point-in-time view of the monitor
type RenderMetrics struct {
	Frames          uint64
	ColumnsCast     uint64
	FramesPerSecond float64
	AvgFrameTime    time.Duration
	AvgRaycastTime  time.Duration
	MemoryUsageMB   uint64
	Goroutines      int
}

// GetCurrentMetrics returns current performance metrics
func (pm *PerformanceMonitor) GetCurrentMetrics() RenderMetrics {
	pm.mutex.RLock()
	avgFrame := pm.avgFrameTime
	avgRaycast := pm.avgRaycastTime
	pm.mutex.RUnlock()

	fps := 0.0
	if avgFrame > 0 {
		fps = float64(time.Second) / avgFrame
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return RenderMetrics{
		Frames:          pm.frameCount.Load(),
		ColumnsCast:     pm.columnsCast.Load(),
		FramesPerSecond: fps,
		AvgFrameTime:    time.Duration(avgFrame),
		AvgRaycastTime:  time.Duration(avgRaycast),
		MemoryUsageMB:   memStats.Alloc / 1024 / 1024,
		Goroutines:      runtime.NumGoroutine(),
	}
}

// Fields renders the metrics as structured log fields.
func (m RenderMetrics) Fields() []zap.Field {
	return []zap.Field{
		zap.Uint64("frames", m.Frames),
		zap.Uint64("columns_cast", m.ColumnsCast),
		zap.Float64("fps", m.FramesPerSecond),
		zap.Duration("avg_frame", m.AvgFrameTime),
		zap.Duration("avg_raycast", m.AvgRaycastTime),
		zap.Uint64("memory_mb", m.MemoryUsageMB),
		zap.Int("goroutines", m.Goroutines),
	}
}

// Uptime reports the time since creation or the last Reset.
func (pm *PerformanceMonitor) Uptime() time.Duration {
	pm.mutex.RLock()
	defer pm.mutex.RUnlock()
	return time.Since(pm.startTime)
}

// PerformanceAlert represents a performance warning
type PerformanceAlert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
	Timestamp time.Time
}

// CheckPerformanceAlerts checks for performance issues and returns alerts
func (pm *PerformanceMonitor) CheckPerformanceAlerts() []PerformanceAlert {
	alerts := make([]PerformanceAlert, 0)
	currentTime := time.Now()

	m := pm.GetCurrentMetrics()
	if m.Frames > 0 && m.FramesPerSecond > 0 && m.FramesPerSecond < 30 {
		alerts = append(alerts, PerformanceAlert{
			Type:      "low_fps",
			Message:   "Frame rate is below 30 FPS",
			Value:     m.FramesPerSecond,
			Threshold: 30,
			Timestamp: currentTime,
		})
	}

	if m.MemoryUsageMB > 500 {
		alerts = append(alerts, PerformanceAlert{
			Type:      "high_memory",
			Message:   "Memory usage is above 500MB",
			Value:     float64(m.MemoryUsageMB),
			Threshold: 500,
			Timestamp: currentTime,
		})
	}

	return alerts
}

// Reset resets all performance counters
func (pm *PerformanceMonitor) Reset() {
	pm.frameCount.Store(0)
	pm.frameTime.Store(0)
	pm.raycastTime.Store(0)
	pm.raycastPasses.Store(0)
	pm.columnsCast.Store(0)

	pm.mutex.Lock()
	pm.avgFrameTime = 0
	pm.avgRaycastTime = 0
	pm.startTime = time.Now()
	pm.mutex.Unlock()
}
