package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"raycaster/internal/config"
	"raycaster/internal/world"
)

func TestPaletteMaterial(t *testing.T) {
	p := testPalette()

	assert.Equal(t, red, p.Material(1))
	assert.Equal(t, green, p.Material(4))
	assert.Equal(t, red, p.Material(5), "ids past the palette wrap")
	assert.Equal(t, p.Background, p.Material(world.Empty))
	assert.Equal(t, floor, Palette{Background: floor}.Material(1), "no materials falls back to the background")
}

func TestPaletteFromConfig(t *testing.T) {
	p := PaletteFromConfig(config.Default())

	assert.Equal(t, []color.RGBA{red, yellow, blue, green}, p.Materials)
	assert.Equal(t, sky, p.Sky)
	assert.Equal(t, floor, p.Floor)
	assert.Equal(t, green, p.NoHit, "unset no-hit colour is the fourth palette entry")
}
