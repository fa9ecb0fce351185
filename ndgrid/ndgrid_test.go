package ndgrid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndgridmap/ndgrid"
)

// newGrid builds an FMCell grid with ndims axes, failing the test on error.
func newGrid(t *testing.T, ndims int) *ndgrid.Grid[*ndgrid.FMCell] {
	t.Helper()
	g, err := ndgrid.New(ndgrid.NewFMCell, ndims)
	require.NoError(t, err)
	return g
}

//----------------------------------------------------------------------------//
// New and Resize Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects a nil factory and ndims < 1.
func TestNew_Errors(t *testing.T) {
	_, err := ndgrid.New[*ndgrid.FMCell](nil, 2)
	assert.ErrorIs(t, err, ndgrid.ErrNilFactory)

	_, err = ndgrid.New(ndgrid.NewFMCell, 0)
	assert.ErrorIs(t, err, ndgrid.ErrBadDims)
}

// TestNew_Empty checks the state of a grid before the first Resize.
func TestNew_Empty(t *testing.T) {
	g := newGrid(t, 2)
	assert.Equal(t, 2, g.Ndims())
	assert.Equal(t, []int{0, 0}, g.Dims())
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, 1.0, g.LeafSize())
	assert.Empty(t, g.OccupiedCells())
}

// TestResize_Errors verifies that invalid sizes are rejected and leave the grid untouched.
func TestResize_Errors(t *testing.T) {
	cases := []struct {
		name string
		dims []int
	}{
		{"NoSizes", nil},
		{"TooMany", []int{2, 2, 2}},
		{"Zero", []int{3, 0}},
		{"Negative", []int{-1, 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newGrid(t, 2)
			err := g.Resize(tc.dims...)
			assert.ErrorIs(t, err, ndgrid.ErrBadDims)
			assert.Equal(t, []int{0, 0}, g.Dims())
			assert.Equal(t, 0, g.Len())
		})
	}
}

// TestResize_PadsTrailingAxes checks that unspecified axes get size 1.
func TestResize_PadsTrailingAxes(t *testing.T) {
	g := newGrid(t, 3)
	require.NoError(t, g.Resize(4, 2))
	assert.Equal(t, []int{4, 2, 1}, g.Dims())
	assert.Equal(t, 8, g.Len())
}

// TestResize_ResetsCells verifies that every cell is back in the sentinel
// state after Resize, including when storage is reused.
func TestResize_ResetsCells(t *testing.T) {
	g := newGrid(t, 2)
	require.NoError(t, g.Resize(3, 3))
	for i := 0; i < g.Len(); i++ {
		c := g.At(i)
		c.SetOccupancy(false)
		c.SetVelocity(0.25)
		c.SetValue(7)
		c.SetState(ndgrid.Frozen)
	}
	g.SetOccupiedCells([]int{0, 1, 2})

	require.NoError(t, g.Resize(3, 3))
	for i := 0; i < g.Len(); i++ {
		c := g.At(i)
		assert.True(t, c.Occupancy(), "cell %d occupancy", i)
		assert.Equal(t, ndgrid.DefaultVelocity, c.Velocity(), "cell %d velocity", i)
		assert.True(t, math.IsInf(c.Value(), 1), "cell %d value", i)
		assert.Equal(t, ndgrid.Far, c.State(), "cell %d state", i)
	}
	assert.Empty(t, g.OccupiedCells(), "resize must drop the obstacle batch")

	require.NoError(t, g.Resize(5, 1))
	assert.Equal(t, 5, g.Len())
	assert.True(t, g.At(4).Occupancy())
}

//----------------------------------------------------------------------------//
// Indexing Tests
//----------------------------------------------------------------------------//

// TestIndexCoordinate_RoundTrip walks every cell of a 3D grid.
func TestIndexCoordinate_RoundTrip(t *testing.T) {
	g := newGrid(t, 3)
	require.NoError(t, g.Resize(4, 3, 2))

	for z := 0; z < 2; z++ {
		for y := 0; y < 3; y++ {
			for x := 0; x < 4; x++ {
				idx, err := g.Index(x, y, z)
				require.NoError(t, err)
				assert.Equal(t, x+4*(y+3*z), idx)

				coords, err := g.Coordinate(idx)
				require.NoError(t, err)
				assert.Equal(t, []int{x, y, z}, coords)
			}
		}
	}
}

// TestIndex_Errors covers wrong arity and out-of-range coordinates.
func TestIndex_Errors(t *testing.T) {
	g := newGrid(t, 2)
	require.NoError(t, g.Resize(3, 2))

	_, err := g.Index(1)
	assert.ErrorIs(t, err, ndgrid.ErrBadCoords)
	_, err = g.Index(3, 0)
	assert.ErrorIs(t, err, ndgrid.ErrBadCoords)
	_, err = g.Index(0, -1)
	assert.ErrorIs(t, err, ndgrid.ErrBadCoords)
	_, err = g.Coordinate(6)
	assert.ErrorIs(t, err, ndgrid.ErrBadCoords)

	assert.True(t, g.InBounds(5))
	assert.False(t, g.InBounds(6))
	assert.False(t, g.InBounds(-1))
}

// TestNeighbors checks border clipping on a 3×3 grid.
func TestNeighbors(t *testing.T) {
	g := newGrid(t, 2)
	require.NoError(t, g.Resize(3, 3))

	assert.Equal(t, []int{1, 3}, g.Neighbors(0), "bottom-left corner")
	assert.Equal(t, []int{3, 5, 1, 7}, g.Neighbors(4), "centre")
	assert.Equal(t, []int{7, 5}, g.Neighbors(8), "top-right corner")
	assert.Nil(t, g.Neighbors(9))
}

// TestNeighbors_UnitAxis ensures a size-1 axis contributes no neighbours.
func TestNeighbors_UnitAxis(t *testing.T) {
	g := newGrid(t, 3)
	require.NoError(t, g.Resize(2, 1))
	assert.Equal(t, []int{1}, g.Neighbors(0))
}

//----------------------------------------------------------------------------//
// Occupied cells and leaf size
//----------------------------------------------------------------------------//

// TestOccupiedCells_Copy verifies the batch is copied in both directions.
func TestOccupiedCells_Copy(t *testing.T) {
	g := newGrid(t, 2)
	require.NoError(t, g.Resize(2, 2))

	in := []int{3, 1}
	g.SetOccupiedCells(in)
	in[0] = 99
	out := g.OccupiedCells()
	assert.Equal(t, []int{3, 1}, out)
	out[1] = 42
	assert.Equal(t, []int{3, 1}, g.OccupiedCells())

	g.SetLeafSize(0.05)
	assert.Equal(t, 0.05, g.LeafSize())
}
