package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"raycaster/internal/camera"
	"raycaster/internal/game/keytracker"
)

// movementKeys are held controls feeding the camera intent.
var movementKeys = map[ebiten.Key]camera.Action{
	ebiten.KeyArrowLeft:  camera.TurnLeft,
	ebiten.KeyArrowRight: camera.TurnRight,
	ebiten.KeyW:          camera.MoveForward,
	ebiten.KeyS:          camera.MoveBackward,
	ebiten.KeyA:          camera.StrafeLeft,
	ebiten.KeyD:          camera.StrafeRight,
}

// trackedKeys lists every key the game reacts to, movement first.
var trackedKeys = []ebiten.Key{
	ebiten.KeyArrowLeft, ebiten.KeyArrowRight,
	ebiten.KeyW, ebiten.KeyS, ebiten.KeyA, ebiten.KeyD,
	ebiten.KeyM, ebiten.KeyP, ebiten.KeyT, ebiten.KeyY,
	ebiten.KeyEscape,
}

// handleKey applies one key edge. It returns ebiten.Termination when the
// player asked to quit.
func (g *Game) handleKey(e keytracker.Edge) error {
	if action, ok := movementKeys[e.Key]; ok {
		g.intent = g.intent.Apply(camera.Event{Action: action, Pressed: e.Pressed})
		return nil
	}
	if !e.Pressed {
		return nil
	}

	switch e.Key {
	case ebiten.KeyEscape:
		g.log.Info("quit requested")
		return ebiten.Termination
	case ebiten.KeyM:
		g.mode = g.mode.Toggle()
		g.log.Info("render mode changed", zap.Stringer("mode", g.mode))
	case ebiten.KeyP:
		g.renderer().DumpNextFrame()
		g.log.Info("dumping next frame",
			zap.Float64("x", g.camera.Position.X),
			zap.Float64("y", g.camera.Position.Y),
			zap.Float64("facing", g.camera.Facing),
			zap.Float64("fov", g.camera.FOV))
	case ebiten.KeyT:
		g.adjustFOV(-g.config.Camera.FOVStep)
	case ebiten.KeyY:
		g.adjustFOV(g.config.Camera.FOVStep)
	}
	return nil
}

func (g *Game) adjustFOV(delta float64) {
	g.camera.AdjustFOV(delta, g.config.Camera.FOVMin, g.config.Camera.FOVMax)
	g.log.Info("field of view changed", zap.Float64("fov", g.camera.FOV))
}

// readGamepad returns the analog axes of the first gamepad with the standard
// layout, or zero axes when there is none.
func (g *Game) readGamepad() camera.Axes {
	g.gamepads = ebiten.AppendGamepadIDs(g.gamepads[:0])
	for _, id := range g.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		if !g.padSeen {
			g.padSeen = true
			g.log.Info("gamepad connected", zap.String("name", ebiten.GamepadName(id)))
		}
		return camera.Axes{
			Turn: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal),
			// Stick up is negative.
			Forward: -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
			Strafe:  ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
		}
	}
	return camera.Axes{}
}
