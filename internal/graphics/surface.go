package graphics

import (
	"errors"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ErrNoTarget is returned by Present when no screen has been bound.
var ErrNoTarget = errors.New("graphics: no screen bound for present")

// Surface draws onto an offscreen ebiten image and copies it to the screen on
// Present. The screen passed to Draw is only valid for that call, so it must
// be bound again before every Present.
type Surface struct {
	canvas *ebiten.Image
	target *ebiten.Image
	color  color.RGBA
}

// NewSurface creates a surface with a width x height canvas.
func NewSurface(width, height int) *Surface {
	return &Surface{
		canvas: ebiten.NewImage(width, height),
		color:  color.RGBA{A: 0xff},
	}
}

// Bind sets the screen the next Present copies to.
func (s *Surface) Bind(screen *ebiten.Image) {
	s.target = screen
}

func (s *Surface) Size() (int, int) {
	b := s.canvas.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) SetColor(c color.RGBA) {
	s.color = c
}

func (s *Surface) FillRect(x, y, width, height int) {
	vector.DrawFilledRect(s.canvas, float32(x), float32(y), float32(width), float32(height), s.color, false)
}

// DrawLine strokes a one pixel line through the pixel centres of both
// endpoints, extended by half a pixel at each end so both are covered.
func (s *Surface) DrawLine(x0, y0, x1, y1 float64) {
	dx, dy := x1-x0, y1-y0
	if l := math.Hypot(dx, dy); l > 0 {
		dx, dy = dx/l*0.5, dy/l*0.5
	} else {
		dx = 0.5
	}
	vector.StrokeLine(s.canvas,
		float32(x0+0.5-dx), float32(y0+0.5-dy),
		float32(x1+0.5+dx), float32(y1+0.5+dy),
		1, s.color, false)
}

// Present copies the canvas to the bound screen and unbinds it.
func (s *Surface) Present() error {
	if s.target == nil {
		return ErrNoTarget
	}
	s.target.DrawImage(s.canvas, nil)
	s.target = nil
	return nil
}
