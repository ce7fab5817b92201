package camera

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"raycaster/internal/world"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference speeds: a full-scale input turns ~197 degrees and walks ~2.6
// tiles per second.
var testKinematics = Kinematics{
	RotationSpeed: 32767 * 0.0003 * 20 * 0.001,
	MoveSpeed:     32767 * 0.00008 * 0.001,
	TurnDeadzone:  2000.0 / 32767,
	MoveDeadzone:  3000.0 / 32767,
	MaxStep:       DefaultMaxStep,
}

func TestAdvance_Rotation(t *testing.T) {
	g := world.DefaultGrid()
	c := New(world.Point{X: 8.5, Y: 8.5}, 0, 75)

	testKinematics.Advance(c, Intent{Rotation: 1}, Axes{}, 100*time.Millisecond, g)
	assert.InDelta(t, testKinematics.RotationSpeed*100, c.Facing, 1e-9)
	assert.Equal(t, world.Point{X: 8.5, Y: 8.5}, c.Position)

	// Turning left from 0 wraps to just under 360.
	c.Facing = 0
	testKinematics.Advance(c, Intent{Rotation: -1}, Axes{}, 10*time.Millisecond, g)
	assert.InDelta(t, 360-testKinematics.RotationSpeed*10, c.Facing, 1e-9)
}

func TestAdvance_ForwardAndStrafe(t *testing.T) {
	g := world.DefaultGrid()
	step := testKinematics.MoveSpeed * 200

	c := New(world.Point{X: 8.5, Y: 8.5}, 0, 75)
	testKinematics.Advance(c, Intent{Forward: 1}, Axes{}, 200*time.Millisecond, g)
	assert.InDelta(t, 8.5+step, c.Position.X, 1e-9)
	assert.InDelta(t, 8.5, c.Position.Y, 1e-9)

	// Strafing right while facing east moves toward +y.
	c = New(world.Point{X: 8.5, Y: 8.5}, 0, 75)
	testKinematics.Advance(c, Intent{Strafe: 1}, Axes{}, 200*time.Millisecond, g)
	assert.InDelta(t, 8.5, c.Position.X, 1e-9)
	assert.InDelta(t, 8.5+step, c.Position.Y, 1e-9)

	// Facing south and walking backward moves toward -y.
	c = New(world.Point{X: 8.5, Y: 8.5}, 90, 75)
	testKinematics.Advance(c, Intent{Forward: -1}, Axes{}, 200*time.Millisecond, g)
	assert.InDelta(t, 8.5, c.Position.X, 1e-9)
	assert.InDelta(t, 8.5-step, c.Position.Y, 1e-9)
}

func TestAdvance_ZeroElapsedIsNoop(t *testing.T) {
	g := world.DefaultGrid()
	c := New(world.Point{X: 3, Y: 4}, 45, 75)
	testKinematics.Advance(c, Intent{Rotation: 1, Forward: 1, Strafe: -1}, Axes{Turn: 1}, 0, g)
	assert.Equal(t, world.Point{X: 3, Y: 4}, c.Position)
	assert.Equal(t, 45.0, c.Facing)
}

func TestAdvance_AnalogDeadzone(t *testing.T) {
	g := world.DefaultGrid()
	c := New(world.Point{X: 8.5, Y: 8.5}, 0, 75)

	testKinematics.Advance(c, Intent{}, Axes{Turn: 0.05, Forward: 0.08, Strafe: -0.09}, 100*time.Millisecond, g)
	assert.Equal(t, 0.0, c.Facing)
	assert.Equal(t, world.Point{X: 8.5, Y: 8.5}, c.Position)

	testKinematics.Advance(c, Intent{}, Axes{Forward: 0.5}, 100*time.Millisecond, g)
	assert.InDelta(t, 8.5+0.5*testKinematics.MoveSpeed*100, c.Position.X, 1e-9)
}

func TestAdvance_PadAndKeysSum(t *testing.T) {
	g := world.DefaultGrid()
	c := New(world.Point{X: 8.5, Y: 8.5}, 0, 75)

	testKinematics.Advance(c, Intent{Rotation: 1}, Axes{Turn: 0.5}, 10*time.Millisecond, g)
	assert.InDelta(t, 1.5*testKinematics.RotationSpeed*10, c.Facing, 1e-9)
}

func TestAdvance_ElapsedIsCapped(t *testing.T) {
	g := world.DefaultGrid()
	c := New(world.Point{X: 8.5, Y: 8.5}, 0, 75)

	testKinematics.Advance(c, Intent{Forward: 1}, Axes{}, 10*time.Second, g)
	assert.InDelta(t, 8.5+testKinematics.MoveSpeed*float64(DefaultMaxStep/time.Millisecond), c.Position.X, 1e-9)
}

func TestAdvance_ClampsToMapBounds(t *testing.T) {
	g := world.DefaultGrid()

	c := New(world.Point{X: 19.9, Y: 16.9}, 45, 75)
	testKinematics.Advance(c, Intent{Forward: 1}, Axes{}, 250*time.Millisecond, g)
	assert.Equal(t, 20.0, c.Position.X)
	assert.Equal(t, 17.0, c.Position.Y)

	c = New(world.Point{X: 0.1, Y: 0.1}, 225, 75)
	testKinematics.Advance(c, Intent{Forward: 1}, Axes{}, 250*time.Millisecond, g)
	assert.Equal(t, 0.0, c.Position.X)
	assert.Equal(t, 0.0, c.Position.Y)
}

func TestAdvance_InvariantsUnderRandomInput(t *testing.T) {
	g := world.DefaultGrid()
	rng := rand.New(rand.NewSource(7))
	c := New(world.Point{X: 8.5, Y: 8.5}, 0, 75)

	for i := 0; i < 5000; i++ {
		in := Intent{
			Rotation: float64(rng.Intn(3) - 1),
			Forward:  float64(rng.Intn(3) - 1),
			Strafe:   float64(rng.Intn(3) - 1),
		}
		pad := Axes{
			Turn:    rng.Float64()*2 - 1,
			Forward: rng.Float64()*2 - 1,
			Strafe:  rng.Float64()*2 - 1,
		}
		elapsed := time.Duration(rng.Intn(400)) * time.Millisecond

		testKinematics.Advance(c, in, pad, elapsed, g)

		require.GreaterOrEqual(t, c.Facing, 0.0)
		require.Less(t, c.Facing, 360.0)
		require.GreaterOrEqual(t, c.Position.X, 0.0)
		require.LessOrEqual(t, c.Position.X, 20.0)
		require.GreaterOrEqual(t, c.Position.Y, 0.0)
		require.LessOrEqual(t, c.Position.Y, 17.0)
		require.False(t, math.IsNaN(c.Position.X) || math.IsNaN(c.Position.Y))
	}
}

func TestAdvance_RecoversOutOfRangeFacing(t *testing.T) {
	g := world.DefaultGrid()
	c := &Camera{Position: world.Point{X: 1, Y: 1}, Facing: 1000, FOV: 75}
	testKinematics.Advance(c, Intent{}, Axes{}, time.Millisecond, g)
	assert.InDelta(t, 280.0, c.Facing, 1e-9)
}
