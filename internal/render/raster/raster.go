// Package raster is an in-memory render.Surface backed by an image.RGBA. It
// needs no window, which makes it the target for snapshots and tests.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Surface draws into a back buffer and copies it to the presented frame on
// Present.
type Surface struct {
	back      *image.RGBA
	frame     *image.RGBA
	color     color.RGBA
	z         vector.Rasterizer
	presented int
	onPresent func(frame *image.RGBA) error
}

// Option configures a Surface.
type Option func(*Surface)

// OnPresent registers fn to run after every Present with the new frame. An
// error from fn is returned by Present.
func OnPresent(fn func(frame *image.RGBA) error) Option {
	return func(s *Surface) { s.onPresent = fn }
}

// New creates a width x height surface. Both frames start transparent black.
func New(width, height int, opts ...Option) *Surface {
	r := image.Rect(0, 0, max(width, 0), max(height, 0))
	s := &Surface{
		back:  image.NewRGBA(r),
		frame: image.NewRGBA(r),
		color: color.RGBA{A: 0xff},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Surface) Size() (int, int) {
	b := s.back.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) SetColor(c color.RGBA) { s.color = c }

// FillRect replaces the pixels of the rectangle with the current colour.
func (s *Surface) FillRect(x, y, width, height int) {
	r := image.Rect(x, y, x+width, y+height).Intersect(s.back.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.back, r, image.NewUniform(s.color), image.Point{}, draw.Src)
}

// DrawLine draws a one pixel wide segment between the centres of the pixels
// at (x0, y0) and (x1, y1), both ends included.
func (s *Surface) DrawLine(x0, y0, x1, y1 float64) {
	// Pixel centres.
	x0, y0, x1, y1 = x0+0.5, y0+0.5, x1+0.5, y1+0.5

	// Unit direction and half-width normal. Square caps extend each end by
	// half a pixel.
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		dx, dy = 1, 0
	} else {
		dx, dy = dx/length, dy/length
	}
	hx, hy := dx*0.5, dy*0.5
	nx, ny := -hy, hx

	quad := [4][2]float64{
		{x0 - hx + nx, y0 - hy + ny},
		{x1 + hx + nx, y1 + hy + ny},
		{x1 + hx - nx, y1 + hy - ny},
		{x0 - hx - nx, y0 - hy - ny},
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range quad {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}
	if math.IsNaN(minX) || math.IsInf(minX, 0) || math.IsInf(maxX, 0) ||
		math.IsNaN(minY) || math.IsInf(minY, 0) || math.IsInf(maxY, 0) {
		return
	}
	box := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(s.back.Bounds())
	if box.Empty() {
		return
	}

	// Rasterize only the clipped bounding box; the mask's origin is box.Min.
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	s.z.Reset(box.Dx(), box.Dy())
	s.z.DrawOp = draw.Over
	s.z.MoveTo(float32(quad[0][0]-ox), float32(quad[0][1]-oy))
	for _, p := range quad[1:] {
		s.z.LineTo(float32(p[0]-ox), float32(p[1]-oy))
	}
	s.z.ClosePath()
	s.z.Draw(s.back, box, image.NewUniform(s.color), image.Point{})
}

// Present publishes the back buffer as the current frame.
func (s *Surface) Present() error {
	copy(s.frame.Pix, s.back.Pix)
	s.presented++
	if s.onPresent != nil {
		if err := s.onPresent(s.frame); err != nil {
			return fmt.Errorf("present frame %d: %w", s.presented, err)
		}
	}
	return nil
}

// Frame returns the most recently presented frame. It is overwritten by the
// next Present.
func (s *Surface) Frame() *image.RGBA { return s.frame }

// Presented returns how many times Present has been called.
func (s *Surface) Presented() int { return s.presented }

// Digest is a hash of the presented frame's pixels. Identical frames have
// identical digests.
func (s *Surface) Digest() uint64 {
	return xxhash.Sum64(s.frame.Pix)
}

// WritePNG encodes the presented frame as PNG.
func (s *Surface) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.frame); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
