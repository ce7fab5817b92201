// Package render turns a camera pose and a tile grid into draw calls: a
// first-person wall projection or a top-down plan with the cast rays.
package render

import (
	"image/color"

	"raycaster/internal/config"
	"raycaster/internal/world"
)

// Surface is the drawing target. Coordinates are pixels with the origin at
// the top-left corner. Draw calls use the colour from the last SetColor.
type Surface interface {
	Size() (width, height int)
	SetColor(c color.RGBA)
	FillRect(x, y, width, height int)
	DrawLine(x0, y0, x1, y1 float64)
	// Present shows everything drawn since the previous Present.
	Present() error
}

// Palette assigns colours to materials and backgrounds.
type Palette struct {
	Materials  []color.RGBA
	Sky        color.RGBA
	Floor      color.RGBA
	Background color.RGBA
	NoHit      color.RGBA
}

// Material returns the colour of material id m. Ids past the end of the
// palette wrap around; Empty gets the background colour.
func (p Palette) Material(m world.Material) color.RGBA {
	if m == world.Empty || len(p.Materials) == 0 {
		return p.Background
	}
	return p.Materials[(int(m)-1)%len(p.Materials)]
}

// PaletteFromConfig builds the palette described by the graphics section.
func PaletteFromConfig(cfg *config.Config) Palette {
	p := Palette{
		Sky:        rgb(cfg.Graphics.Sky),
		Floor:      rgb(cfg.Graphics.Floor),
		Background: rgb(cfg.Graphics.PlanBackground),
		NoHit:      rgb(cfg.GetNoHitColor()),
	}
	for _, c := range cfg.Graphics.Palette {
		p.Materials = append(p.Materials, rgb(c))
	}
	return p
}

func rgb(c [3]int) color.RGBA {
	return color.RGBA{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2]), A: 0xff}
}
