package render

import (
	"sync/atomic"

	"go.uber.org/zap"

	"raycaster/internal/camera"
	"raycaster/internal/mathutil"
	"raycaster/internal/raycast"
	"raycaster/internal/threading/monitoring"
)

// column is one screen column's ray and what it found.
type column struct {
	angle float64 // degrees
	reach float64 // cast range
	hit   raycast.Hit
	ok    bool
}

// caster holds what both renderers share: the column buffer, the runner that
// fills it and the one-shot debug dump.
type caster struct {
	runner  ColumnRunner
	monitor *monitoring.PerformanceMonitor
	log     *zap.Logger
	dump    atomic.Bool
	columns []column
}

func (c *caster) setup(opts []Option) {
	c.runner = Sequential{}
	c.log = zap.NewNop()
	for _, opt := range opts {
		opt(c)
	}
}

// Option configures a renderer.
type Option func(*caster)

// WithRunner casts columns through r instead of sequentially.
func WithRunner(r ColumnRunner) Option {
	return func(c *caster) {
		if r != nil {
			c.runner = r
		}
	}
}

// WithLogger sets the logger used for debug dumps.
func WithLogger(log *zap.Logger) Option {
	return func(c *caster) {
		if log != nil {
			c.log = log
		}
	}
}

// WithMonitor records the duration of every casting pass.
func WithMonitor(m *monitoring.PerformanceMonitor) Option {
	return func(c *caster) { c.monitor = m }
}

// DumpNextFrame logs per-column details of the next rendered frame.
func (c *caster) DumpNextFrame() {
	c.dump.Store(true)
}

// castAll fills c.columns with one cast per screen column. reach gives the
// range for a column from its offset in [-1, 1).
func (c *caster) castAll(cam *camera.Camera, grid raycast.Grid, width int, reach func(offset float64) float64) []column {
	if cap(c.columns) < width {
		c.columns = make([]column, width)
	}
	cols := c.columns[:width]

	var timer *monitoring.RaycastTimer
	if c.monitor != nil {
		timer = c.monitor.StartRaycast()
	}
	origin := cam.Position
	c.runner.RunColumns(width, func(i int) {
		angle := ColumnAngle(cam.Facing, cam.FOV, i, width)
		r := reach(ColumnOffset(i, width))
		hit, ok := raycast.Cast(origin, mathutil.Radians(angle), r, grid)
		cols[i] = column{angle: angle, reach: r, hit: hit, ok: ok}
	})
	if timer != nil {
		timer.EndRaycast(width)
	}
	return cols
}

// takeDump reports whether this frame should be logged and clears the flag.
func (c *caster) takeDump() bool {
	return c.dump.CompareAndSwap(true, false)
}
