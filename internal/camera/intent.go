package camera

// Action is a discrete motion control.
type Action int

const (
	TurnLeft Action = iota
	TurnRight
	MoveForward
	MoveBackward
	StrafeLeft
	StrafeRight
)

var actionNames = map[Action]string{
	TurnLeft:     "turn_left",
	TurnRight:    "turn_right",
	MoveForward:  "move_forward",
	MoveBackward: "move_backward",
	StrafeLeft:   "strafe_left",
	StrafeRight:  "strafe_right",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Event is a control being pressed or released.
type Event struct {
	Action  Action
	Pressed bool
}

// Press and Release build events.
func Press(a Action) Event   { return Event{Action: a, Pressed: true} }
func Release(a Action) Event { return Event{Action: a} }

// Intent holds the signed motion rates for the next tick, each in [-1, 1].
// Rotation is positive clockwise, Strafe positive to the right.
type Intent struct {
	Rotation float64
	Forward  float64
	Strafe   float64
}

// Apply returns the intent after ev. Pressing a control drives its axis to
// full rate in that direction; releasing it stops the axis only if the axis
// is still moving that way, so releasing a key that was overridden by its
// opposite has no effect.
func (in Intent) Apply(ev Event) Intent {
	switch ev.Action {
	case TurnLeft:
		in.Rotation = pressRelease(in.Rotation, -1, ev.Pressed)
	case TurnRight:
		in.Rotation = pressRelease(in.Rotation, 1, ev.Pressed)
	case MoveForward:
		in.Forward = pressRelease(in.Forward, 1, ev.Pressed)
	case MoveBackward:
		in.Forward = pressRelease(in.Forward, -1, ev.Pressed)
	case StrafeLeft:
		in.Strafe = pressRelease(in.Strafe, -1, ev.Pressed)
	case StrafeRight:
		in.Strafe = pressRelease(in.Strafe, 1, ev.Pressed)
	}
	return in
}

// ApplyAll folds a batch of events into the intent in order.
func (in Intent) ApplyAll(events ...Event) Intent {
	for _, ev := range events {
		in = in.Apply(ev)
	}
	return in
}

// Idle reports whether no axis has input.
func (in Intent) Idle() bool {
	return in.Rotation == 0 && in.Forward == 0 && in.Strafe == 0
}

func pressRelease(current, dir float64, pressed bool) float64 {
	if pressed {
		return dir
	}
	if current*dir > 0 {
		return 0
	}
	return current
}
