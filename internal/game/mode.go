package game

import (
	"fmt"

	"raycaster/internal/config"
)

// Mode selects which view is rendered each frame.
type Mode int

const (
	ModePerspective Mode = iota
	ModePlan
)

func (m Mode) String() string {
	if m == ModePlan {
		return config.ModePlan
	}
	return config.ModePerspective
}

// ParseMode reads a mode name from the configuration.
func ParseMode(s string) (Mode, error) {
	switch s {
	case config.ModePerspective, "":
		return ModePerspective, nil
	case config.ModePlan:
		return ModePlan, nil
	}
	return 0, fmt.Errorf("unknown render mode %q", s)
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModePlan {
		return ModePerspective
	}
	return ModePlan
}
