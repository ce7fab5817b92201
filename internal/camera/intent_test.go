package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntentPressAndRelease(t *testing.T) {
	var in Intent
	assert.True(t, in.Idle())

	in = in.Apply(Press(TurnLeft))
	assert.Equal(t, -1.0, in.Rotation)
	in = in.Apply(Release(TurnLeft))
	assert.Equal(t, 0.0, in.Rotation)

	in = in.ApplyAll(Press(MoveForward), Press(StrafeRight))
	assert.Equal(t, Intent{Forward: 1, Strafe: 1}, in)

	in = in.ApplyAll(Release(MoveForward), Release(StrafeRight))
	assert.True(t, in.Idle())
}

func TestIntentOppositeKeys(t *testing.T) {
	// Holding left, then pressing right: right wins.
	in := Intent{}.ApplyAll(Press(TurnLeft), Press(TurnRight))
	assert.Equal(t, 1.0, in.Rotation)

	// Releasing the overridden key leaves the newer direction alone.
	in = in.Apply(Release(TurnLeft))
	assert.Equal(t, 1.0, in.Rotation)

	in = in.Apply(Release(TurnRight))
	assert.Equal(t, 0.0, in.Rotation)

	in = Intent{}.ApplyAll(Press(MoveForward), Press(MoveBackward), Release(MoveForward))
	assert.Equal(t, -1.0, in.Forward)

	in = Intent{}.ApplyAll(Press(StrafeRight), Press(StrafeLeft), Release(StrafeRight))
	assert.Equal(t, -1.0, in.Strafe)
}

func TestIntentAxesAreIndependent(t *testing.T) {
	in := Intent{}.ApplyAll(Press(TurnRight), Press(MoveBackward), Press(StrafeLeft))
	assert.Equal(t, Intent{Rotation: 1, Forward: -1, Strafe: -1}, in)

	in = in.Apply(Release(MoveBackward))
	assert.Equal(t, Intent{Rotation: 1, Strafe: -1}, in)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "strafe_left", StrafeLeft.String())
	assert.Equal(t, "unknown", Action(99).String())
}
