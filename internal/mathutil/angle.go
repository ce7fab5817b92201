package mathutil

import "math"

// WrapDegrees brings an angle that is at most one turn out of range back into
// [0, 360) with a single add or subtract.
func WrapDegrees(deg float64) float64 {
	if deg >= 360 {
		deg -= 360
	} else if deg < 0 {
		deg += 360
	}
	return deg
}

// NormalizeDegrees maps any finite angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Deadzone returns v, or 0 when |v| is below threshold.
func Deadzone(v, threshold float64) float64 {
	if math.Abs(v) < threshold {
		return 0
	}
	return v
}
