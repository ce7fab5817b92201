// Package raycast finds the first wall a ray meets on a tile grid.
//
// The search walks grid-line crossings (DDA): it keeps the next crossing of a
// vertical grid line and the next crossing of a horizontal grid line, always
// examines whichever is nearer to the origin, and stops at the first crossing
// whose far-side cell holds a wall. All distances are compared squared.
package raycast

import (
	"math"

	"raycaster/internal/world"
)

// axisEpsilon is the smallest |sin| or |cos| treated as a real slope. Below it
// the ray runs parallel to that family of grid lines and never crosses one.
const axisEpsilon = 1e-12

// Grid is the read-only view of the map the caster needs.
type Grid interface {
	Width() int
	Height() int
	At(col, row int) world.Material
}

// Hit is where a ray met a wall and what the wall is made of.
type Hit struct {
	Point    world.Point
	Material world.Material
}

// Distance returns the straight-line distance from origin to the hit.
func (h Hit) Distance(origin world.Point) float64 {
	return math.Hypot(h.Point.X-origin.X, h.Point.Y-origin.Y)
}

// Step is the per-axis direction of travel: -1 toward smaller coordinates,
// 0 toward larger ones. It is also the offset from a grid line to the cell
// on its far side.
type Step struct {
	X, Y int
}

// StepDirection classifies an angle in [0, 2π) by the half-open quadrant it
// falls in.
func StepDirection(angle float64) Step {
	switch {
	case angle > math.Pi/2 && angle <= math.Pi:
		return Step{X: -1, Y: 0}
	case angle > math.Pi && angle <= 3*math.Pi/2:
		return Step{X: -1, Y: -1}
	case angle > 3*math.Pi/2 && angle <= 2*math.Pi:
		return Step{X: 0, Y: -1}
	default:
		return Step{X: 0, Y: 0}
	}
}

// crossing is the next intersection of the ray with one family of grid
// lines, and the fixed step to the one after it.
type crossing struct {
	at         world.Point
	dx, dy     float64
	disabled   bool
	distanceSq float64
}

func (c *crossing) measure(origin world.Point) {
	if c.disabled {
		c.distanceSq = math.Inf(1)
		return
	}
	dx := c.at.X - origin.X
	dy := c.at.Y - origin.Y
	c.distanceSq = dx*dx + dy*dy
}

func (c *crossing) advance(origin world.Point) {
	c.at.X += c.dx
	c.at.Y += c.dy
	c.measure(origin)
}

// Cast traces a ray from origin at angle (radians, expected in [0, 2π)) for at most
// maxDistance tiles and reports the first wall crossed. The boolean is false
// when nothing is hit within range.
func Cast(origin world.Point, angle, maxDistance float64, g Grid) (Hit, bool) {
	if angle < 0 || angle >= 2*math.Pi {
		angle = math.Mod(angle, 2*math.Pi)
		if angle < 0 {
			angle += 2 * math.Pi
		}
	}
	limit := math.Min(maxDistance, reach(origin, g))
	if !(limit > 0) {
		return Hit{}, false
	}
	limitSq := limit * limit

	step := StepDirection(angle)
	sin, cos := math.Sincos(angle)

	var tan, cot float64
	vertical := math.Abs(cos) < axisEpsilon
	horizontal := math.Abs(sin) < axisEpsilon
	if !vertical && !horizontal {
		tan = sin / cos
		cot = cos / sin
	}

	// Crossings of vertical grid lines (x is a whole number).
	xs := crossing{disabled: vertical, dx: 1, dy: tan}
	if step.X < 0 {
		xs.dx, xs.dy = -1, -tan
	}
	if !vertical {
		xs.at.X = math.Ceil(origin.X + float64(step.X))
		xs.at.Y = origin.Y + (xs.at.X-origin.X)*tan
	}
	xs.measure(origin)

	// Crossings of horizontal grid lines (y is a whole number).
	ys := crossing{disabled: horizontal, dx: cot, dy: 1}
	if step.Y < 0 {
		ys.dx, ys.dy = -cot, -1
	}
	if !horizontal {
		ys.at.Y = math.Ceil(origin.Y + float64(step.Y))
		ys.at.X = origin.X + (ys.at.Y-origin.Y)*cot
	}
	ys.measure(origin)

	width, height := g.Width(), g.Height()
	for xs.distanceSq <= limitSq || ys.distanceSq <= limitSq {
		// Ties sit on a grid corner; the vertical line is checked first.
		if xs.distanceSq <= ys.distanceSq {
			p := xs.at
			if inside(p.X, width) && inside(p.Y, height) {
				if m := g.At(int(p.X)+step.X, int(p.Y)); m != world.Empty {
					return Hit{Point: p, Material: m}, true
				}
			}
			xs.advance(origin)
		} else {
			p := ys.at
			if inside(p.X, width) && inside(p.Y, height) {
				if m := g.At(int(p.X), int(p.Y)+step.Y); m != world.Empty {
					return Hit{Point: p, Material: m}, true
				}
			}
			ys.advance(origin)
		}
	}
	return Hit{}, false
}

// inside reports whether v truncates to an index strictly between 0 and n.
// Crossings on the map's outer lines, or beyond them, are never probed.
func inside(v float64, n int) bool {
	return v >= 1 && v < float64(n)
}

// reach is the distance from origin to the farthest corner of the map. No
// wall can be hit beyond it, so it bounds the walk even for an infinite range.
func reach(origin world.Point, g Grid) float64 {
	fx := math.Max(math.Abs(origin.X), math.Abs(float64(g.Width())-origin.X))
	fy := math.Max(math.Abs(origin.Y), math.Abs(float64(g.Height())-origin.Y))
	return math.Hypot(fx, fy)
}
