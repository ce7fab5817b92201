package camera

import (
	"time"

	"raycaster/internal/mathutil"
)

// DefaultMaxStep caps the time a single tick may integrate.
const DefaultMaxStep = 250 * time.Millisecond

// Bounds is the extent positions are clamped to.
type Bounds interface {
	Width() int
	Height() int
}

// Axes is analog input (a gamepad), each axis in [-1, 1].
type Axes struct {
	Turn    float64
	Forward float64
	Strafe  float64
}

// Kinematics converts intents into pose changes. Speeds are per millisecond
// at full input: RotationSpeed in degrees, MoveSpeed in tiles.
type Kinematics struct {
	RotationSpeed float64
	MoveSpeed     float64
	TurnDeadzone  float64
	MoveDeadzone  float64
	MaxStep       time.Duration
}

// Advance integrates one tick. Rotation from the pad and the intent is applied
// first, then forward and strafe displacement along the new facing. Facing is
// wrapped back into [0, 360) once and the position is clamped to
// [0, width] x [0, height]; there is no wall collision.
func (k Kinematics) Advance(c *Camera, in Intent, pad Axes, elapsed time.Duration, bounds Bounds) {
	maxStep := k.MaxStep
	if maxStep <= 0 {
		maxStep = DefaultMaxStep
	}
	if elapsed > maxStep {
		elapsed = maxStep
	}
	if elapsed < 0 {
		elapsed = 0
	}
	ms := float64(elapsed) / float64(time.Millisecond)

	turn := mathutil.Clamp(mathutil.Deadzone(pad.Turn, k.TurnDeadzone), -1, 1) +
		mathutil.Clamp(in.Rotation, -1, 1)
	c.Facing += turn * k.RotationSpeed * ms

	forward := mathutil.Clamp(mathutil.Deadzone(pad.Forward, k.MoveDeadzone), -1, 1) +
		mathutil.Clamp(in.Forward, -1, 1)
	strafe := mathutil.Clamp(mathutil.Deadzone(pad.Strafe, k.MoveDeadzone), -1, 1) +
		mathutil.Clamp(in.Strafe, -1, 1)

	if forward != 0 {
		fx, fy := c.Forward()
		c.Position.X += fx * forward * k.MoveSpeed * ms
		c.Position.Y += fy * forward * k.MoveSpeed * ms
	}
	if strafe != 0 {
		rx, ry := c.Right()
		c.Position.X += rx * strafe * k.MoveSpeed * ms
		c.Position.Y += ry * strafe * k.MoveSpeed * ms
	}

	c.Facing = mathutil.WrapDegrees(c.Facing)
	if c.Facing < 0 || c.Facing >= 360 {
		// Only reachable when Facing was set out of range by hand, or when
		// -tiny+360 rounds up to exactly 360.
		c.Facing = mathutil.NormalizeDegrees(c.Facing)
	}
	c.Position.X = mathutil.Clamp(c.Position.X, 0, float64(bounds.Width()))
	c.Position.Y = mathutil.Clamp(c.Position.Y, 0, float64(bounds.Height()))
}
