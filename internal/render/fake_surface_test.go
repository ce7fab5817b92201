package render

import (
	"image/color"
)

type opKind int

const (
	opFill opKind = iota
	opLine
)

type op struct {
	kind           opKind
	color          color.RGBA
	x, y, w, h     int
	x0, y0, x1, y1 float64
}

// recordingSurface captures draw calls instead of drawing them.
type recordingSurface struct {
	width, height int
	current       color.RGBA
	ops           []op
	presents      int
	presentErr    error
}

func newRecordingSurface(w, h int) *recordingSurface {
	return &recordingSurface{width: w, height: h}
}

func (s *recordingSurface) Size() (int, int)      { return s.width, s.height }
func (s *recordingSurface) SetColor(c color.RGBA) { s.current = c }

func (s *recordingSurface) FillRect(x, y, w, h int) {
	s.ops = append(s.ops, op{kind: opFill, color: s.current, x: x, y: y, w: w, h: h})
}

func (s *recordingSurface) DrawLine(x0, y0, x1, y1 float64) {
	s.ops = append(s.ops, op{kind: opLine, color: s.current, x0: x0, y0: y0, x1: x1, y1: y1})
}

func (s *recordingSurface) Present() error {
	s.presents++
	return s.presentErr
}

func (s *recordingSurface) lines() []op { return s.filter(opLine) }
func (s *recordingSurface) fills() []op { return s.filter(opFill) }

func (s *recordingSurface) filter(k opKind) []op {
	var out []op
	for _, o := range s.ops {
		if o.kind == k {
			out = append(out, o)
		}
	}
	return out
}

var (
	red    = color.RGBA{R: 255, A: 255}
	yellow = color.RGBA{R: 255, G: 255, A: 255}
	blue   = color.RGBA{B: 255, A: 255}
	green  = color.RGBA{G: 255, A: 255}
	sky    = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	floor  = color.RGBA{R: 20, G: 20, B: 20, A: 255}
)

func testPalette() Palette {
	return Palette{
		Materials:  []color.RGBA{red, yellow, blue, green},
		Sky:        sky,
		Floor:      floor,
		Background: sky,
		NoHit:      green,
	}
}

// reverseRunner visits columns back to front.
type reverseRunner struct{}

func (reverseRunner) RunColumns(n int, fn func(int)) {
	for i := n - 1; i >= 0; i-- {
		fn(i)
	}
}
