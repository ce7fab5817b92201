package render

import (
	"raycaster/internal/mathutil"
)

// ColumnOffset maps a screen column to [-1, 1): -1 at the left edge, 0 at
// the centre.
func ColumnOffset(column, width int) float64 {
	return (float64(column)/float64(width))*2 - 1
}

// ColumnAngle is the ray direction in degrees, in [0, 360), for a screen
// column of a view facing `facing` with the given field of view.
func ColumnAngle(facing, fov float64, column, width int) float64 {
	a := mathutil.WrapDegrees(facing + fov*0.5*ColumnOffset(column, width))
	if a < 0 || a >= 360 {
		a = mathutil.NormalizeDegrees(a)
	}
	return a
}

// ColumnRunner calls fn for every column in [0, n) and returns once all calls
// are done. Calls may run concurrently; each must only touch its own column.
type ColumnRunner interface {
	RunColumns(n int, fn func(column int))
}

// Sequential runs columns in order on the calling goroutine.
type Sequential struct{}

func (Sequential) RunColumns(n int, fn func(column int)) {
	for column := 0; column < n; column++ {
		fn(column)
	}
}
