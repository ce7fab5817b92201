// Package keytracker turns polled key state into press and release edges.
// ebiten reports whether a key is held each tick; the frame loop wants the
// moments a key goes down or comes up.
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Edge is a change in a key's state since the previous poll.
type Edge struct {
	Key     ebiten.Key
	Pressed bool
}

// Tracker remembers the previous state of a fixed set of keys.
type Tracker struct {
	keys        []ebiten.Key
	isPressed   func(ebiten.Key) bool
	prevPressed map[ebiten.Key]bool
}

// New tracks keys using ebiten's keyboard state.
func New(keys ...ebiten.Key) *Tracker {
	return NewWithSource(ebiten.IsKeyPressed, keys...)
}

// NewWithSource tracks keys using isPressed as the key state.
func NewWithSource(isPressed func(ebiten.Key) bool, keys ...ebiten.Key) *Tracker {
	return &Tracker{
		keys:        append([]ebiten.Key(nil), keys...),
		isPressed:   isPressed,
		prevPressed: make(map[ebiten.Key]bool, len(keys)),
	}
}

// Poll returns the edges since the last call, in the order the keys were
// given to New.
func (t *Tracker) Poll() []Edge {
	var edges []Edge
	for _, key := range t.keys {
		pressed := t.isPressed(key)
		if pressed != t.prevPressed[key] {
			edges = append(edges, Edge{Key: key, Pressed: pressed})
		}
		t.prevPressed[key] = pressed
	}
	return edges
}
