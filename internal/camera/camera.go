package camera

import (
	"math"

	"raycaster/internal/mathutil"
	"raycaster/internal/world"
)

// Camera is the viewer's pose. Facing and FOV are in degrees; Facing stays in
// [0, 360).
type Camera struct {
	Position world.Point
	Facing   float64
	FOV      float64
}

// New creates a camera, normalizing facing into [0, 360).
func New(pos world.Point, facing, fov float64) *Camera {
	return &Camera{
		Position: pos,
		Facing:   mathutil.NormalizeDegrees(facing),
		FOV:      fov,
	}
}

// Forward returns the unit vector the camera faces.
func (c *Camera) Forward() (x, y float64) {
	sin, cos := math.Sincos(mathutil.Radians(c.Facing))
	return cos, sin
}

// Right returns the unit vector 90 degrees clockwise of Forward, the strafe
// direction.
func (c *Camera) Right() (x, y float64) {
	sin, cos := math.Sincos(mathutil.Radians(c.Facing + 90))
	return cos, sin
}

// AdjustFOV widens (positive delta) or narrows the field of view, keeping it
// within [min, max].
func (c *Camera) AdjustFOV(delta, min, max float64) {
	c.FOV = mathutil.Clamp(c.FOV+delta, min, max)
}
