package render

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"raycaster/internal/camera"
	"raycaster/internal/raycast"
)

// Perspective draws the first-person view: one vertical wall slab per screen
// column over a sky and floor background. Slab height is the surface height
// divided by the straight-line distance to the hit, so wide fields of view
// bend straight walls outward.
//
// A Perspective reuses its column buffer and must not render two frames at
// once.
type Perspective struct {
	Palette      Palette
	ViewDistance float64
	caster
}

// NewPerspective creates a perspective renderer casting rays up to
// viewDistance tiles.
func NewPerspective(p Palette, viewDistance float64, opts ...Option) *Perspective {
	r := &Perspective{Palette: p, ViewDistance: viewDistance}
	r.setup(opts)
	return r
}

// Slab returns the rows a wall at distance occupies on a screen of the given
// height. Walls at distance 1 or closer fill the column.
func Slab(distance float64, screenHeight int) (top, bottom int) {
	height := math.Min(float64(screenHeight)/distance, float64(screenHeight))
	top = max(0, screenHeight/2-int(height))
	return top, screenHeight - top
}

// Render draws one frame and presents it.
func (p *Perspective) Render(cam *camera.Camera, grid raycast.Grid, s Surface) error {
	w, h := s.Size()

	s.SetColor(p.Palette.Sky)
	s.FillRect(0, 0, w, h/2)
	s.SetColor(p.Palette.Floor)
	s.FillRect(0, h/2, w, h-h/2)

	cols := p.castAll(cam, grid, w, func(float64) float64 { return p.ViewDistance })
	dump := p.takeDump()

	for i, col := range cols {
		if !col.ok {
			continue
		}
		distance := col.hit.Distance(cam.Position)
		top, bottom := Slab(distance, h)
		if dump {
			p.log.Info("column",
				zap.Int("ray", i),
				zap.Float64("angle", col.angle),
				zap.Float64("distance", distance),
				zap.Int("top", top),
				zap.Uint8("material", uint8(col.hit.Material)))
		}
		s.SetColor(p.Palette.Material(col.hit.Material))
		s.DrawLine(float64(i), float64(top), float64(i), float64(bottom))
	}

	if err := s.Present(); err != nil {
		return fmt.Errorf("present perspective frame: %w", err)
	}
	return nil
}
