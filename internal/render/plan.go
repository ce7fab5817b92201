package render

import (
	"fmt"
	"image/color"
	"math"

	"go.uber.org/zap"

	"raycaster/internal/camera"
	"raycaster/internal/mathutil"
	"raycaster/internal/raycast"
	"raycaster/internal/world"
)

// Plan draws the map from above, each wall tile a filled rectangle, and one
// line per screen column from the camera to where that column's ray ends.
//
// Each ray's range is PlanDistance / cos(offset), where offset is the angle
// between the ray and the view direction, so unobstructed rays end on a line
// perpendicular to the view rather than on a circle.
type Plan struct {
	Palette      Palette
	PlanDistance float64
	caster
	ends []rayEnd
}

type rayEnd struct {
	at    world.Point // pixels
	color color.RGBA
}

// NewPlan creates a plan renderer whose centre ray reaches planDistance tiles.
func NewPlan(p Palette, planDistance float64, opts ...Option) *Plan {
	r := &Plan{Palette: p, PlanDistance: planDistance}
	r.setup(opts)
	return r
}

// Render draws one frame and presents it.
func (p *Plan) Render(cam *camera.Camera, grid raycast.Grid, s Surface) error {
	w, h := s.Size()
	s.SetColor(p.Palette.Background)
	s.FillRect(0, 0, w, h)

	// Whole pixels per tile; a surface narrower than the map draws nothing.
	unitX := w / grid.Width()
	unitY := h / grid.Height()
	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			if m := grid.At(col, row); m != world.Empty {
				s.SetColor(p.Palette.Material(m))
				s.FillRect(col*unitX, row*unitY, unitX, unitY)
			}
		}
	}

	halfFOV := mathutil.Radians(cam.FOV * 0.5)
	cols := p.castAll(cam, grid, w, func(offset float64) float64 {
		return p.PlanDistance / math.Cos(halfFOV*offset)
	})
	dump := p.takeDump()

	sx, sy := float64(unitX), float64(unitY)
	p.ends = p.ends[:0]
	for i, col := range cols {
		end := rayEnd{color: p.Palette.NoHit}
		if col.ok {
			end.at = world.Point{X: col.hit.Point.X * sx, Y: col.hit.Point.Y * sy}
			end.color = p.Palette.Material(col.hit.Material)
		} else {
			sin, cos := math.Sincos(mathutil.Radians(col.angle))
			end.at = world.Point{
				X: (cam.Position.X + cos*col.reach) * sx,
				Y: (cam.Position.Y + sin*col.reach) * sy,
			}
		}
		if dump {
			p.log.Info("ray",
				zap.Int("ray", i),
				zap.Float64("angle", col.angle),
				zap.Float64("far", col.reach),
				zap.Bool("hit", col.ok))
		}
		p.ends = append(p.ends, end)
	}

	fromX, fromY := cam.Position.X*sx, cam.Position.Y*sy
	for _, end := range p.ends {
		s.SetColor(end.color)
		s.DrawLine(fromX, fromY, end.at.X, end.at.Y)
	}

	if err := s.Present(); err != nil {
		return fmt.Errorf("present plan frame: %w", err)
	}
	return nil
}
