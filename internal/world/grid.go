package world

import (
	"errors"
	"fmt"
)

// Material identifies what a cell is made of. Zero is empty space.
type Material uint8

// Empty is the passable material.
const Empty Material = 0

var (
	ErrEmptyMap  = errors.New("map has no cells")
	ErrRaggedRow = errors.New("map row has inconsistent width")
)

// Point is a position in tile space, one unit per tile.
type Point struct {
	X, Y float64
}

// Grid is an immutable rectangular tile map stored row-major.
type Grid struct {
	width  int
	height int
	cells  []Material
}

// NewGrid copies rows into a new Grid. Every row must have the same,
// non-zero length.
func NewGrid(rows [][]Material) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMap
	}
	width := len(rows[0])
	cells := make([]Material, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d: expected %d cells, got %d: %w", y, width, len(row), ErrRaggedRow)
		}
		cells = append(cells, row...)
	}
	return &Grid{width: width, height: len(rows), cells: cells}, nil
}

// MustGrid is NewGrid for static map data known to be valid.
func MustGrid(rows [][]Material) *Grid {
	g, err := NewGrid(rows)
	if err != nil {
		panic("invalid grid: " + err.Error())
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// At returns the material at (col, row), or Empty outside the map.
func (g *Grid) At(col, row int) Material {
	if col < 0 || row < 0 || col >= g.width || row >= g.height {
		return Empty
	}
	return g.cells[row*g.width+col]
}

// Solid reports whether the cell at (col, row) is a wall.
func (g *Grid) Solid(col, row int) bool {
	return g.At(col, row) != Empty
}

// Cells calls fn for every cell in row-major order.
func (g *Grid) Cells(fn func(col, row int, m Material)) {
	for i, m := range g.cells {
		fn(i%g.width, i/g.width, m)
	}
}

// Center returns the tile-space centre of the cell at (col, row).
func Center(col, row int) Point {
	return Point{X: float64(col) + 0.5, Y: float64(row) + 0.5}
}

// DefaultGrid returns the built-in 20x17 map used when no map file is
// configured.
func DefaultGrid() *Grid {
	return MustGrid([][]Material{
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 0, 0, 0, 0, 2, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 3, 3, 3, 3},
		{1, 0, 0, 0, 0, 2, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 3, 3, 3, 3},
		{1, 0, 0, 0, 0, 2, 2, 0, 3, 3, 0, 0, 0, 0, 0, 0, 3, 3, 3, 3},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 3, 3, 3},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4},
	})
}
