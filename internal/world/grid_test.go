package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid([][]Material{
		{1, 1, 1},
		{1, 0, 2},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, Material(2), g.At(2, 1))
	assert.Equal(t, Empty, g.At(1, 1))
	assert.True(t, g.Solid(0, 0))
	assert.False(t, g.Solid(1, 1))

	// Outside the map reads as empty rather than panicking.
	assert.Equal(t, Empty, g.At(-1, 0))
	assert.Equal(t, Empty, g.At(3, 0))
	assert.Equal(t, Empty, g.At(0, 2))
}

func TestNewGridRejectsBadShapes(t *testing.T) {
	_, err := NewGrid(nil)
	assert.ErrorIs(t, err, ErrEmptyMap)

	_, err = NewGrid([][]Material{{}})
	assert.ErrorIs(t, err, ErrEmptyMap)

	_, err = NewGrid([][]Material{{1, 1}, {1}})
	assert.ErrorIs(t, err, ErrRaggedRow)
}

func TestNewGridCopiesRows(t *testing.T) {
	rows := [][]Material{{1, 0}, {0, 1}}
	g := MustGrid(rows)
	rows[0][1] = 3
	assert.Equal(t, Empty, g.At(1, 0))
}

func TestCellsRowMajor(t *testing.T) {
	g := MustGrid([][]Material{{1, 2}, {3, 4}})

	var got []Material
	var coords [][2]int
	g.Cells(func(col, row int, m Material) {
		got = append(got, m)
		coords = append(coords, [2]int{col, row})
	})
	assert.Equal(t, []Material{1, 2, 3, 4}, got)
	assert.Equal(t, [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, coords)
}

func TestDefaultGrid(t *testing.T) {
	g := DefaultGrid()
	require.Equal(t, 20, g.Width())
	require.Equal(t, 17, g.Height())

	for row := 1; row <= 3; row++ {
		assert.Equal(t, Material(2), g.At(5, row), "interior wall at row %d", row)
	}
	assert.Equal(t, Material(1), g.At(19, 8))
	assert.Equal(t, Material(4), g.At(19, 16))
	assert.Equal(t, Empty, g.At(8, 8))
}
