package ndgrid

import (
	"fmt"
)

// New constructs an empty grid with ndims axes. Every axis starts at size 0,
// so Len() is 0 until the first Resize. newCell is called once per cell on
// each reallocation.
// Returns ErrNilFactory if newCell is nil, ErrBadDims if ndims < 1.
func New[C Cell](newCell func() C, ndims int) (*Grid[C], error) {
	if newCell == nil {
		return nil, ErrNilFactory
	}
	if ndims < 1 {
		return nil, fmt.Errorf("%w: ndims=%d", ErrBadDims, ndims)
	}
	return &Grid[C]{
		newCell:  newCell,
		ndims:    ndims,
		dims:     make([]int, ndims),
		leafSize: 1,
	}, nil
}

// Ndims returns the number of axes.
func (g *Grid[C]) Ndims() int { return g.ndims }

// Dims returns a copy of the per-axis sizes.
func (g *Grid[C]) Dims() []int {
	out := make([]int, len(g.dims))
	copy(out, g.dims)
	return out
}

// Len returns the total number of cells, the product of all axis sizes.
func (g *Grid[C]) Len() int { return len(g.cells) }

// Resize sets the per-axis sizes and puts every cell into its sentinel
// state. Axes beyond len(dims) get size 1. The occupied-cell batch is
// cleared because its indices refer to the previous shape.
//
// Storage is reused when the cell count is unchanged; otherwise a fresh
// slice is filled through the cell factory.
// Returns ErrBadDims (grid untouched) if dims is empty, longer than
// Ndims(), or holds a non-positive size.
// Complexity: O(N).
func (g *Grid[C]) Resize(dims ...int) error {
	if len(dims) == 0 || len(dims) > g.ndims {
		return fmt.Errorf("%w: got %d sizes for %d axes", ErrBadDims, len(dims), g.ndims)
	}
	total := 1
	for i, d := range dims {
		if d <= 0 {
			return fmt.Errorf("%w: axis %d size %d", ErrBadDims, i, d)
		}
		total *= d
	}

	for i := range g.dims {
		if i < len(dims) {
			g.dims[i] = dims[i]
		} else {
			g.dims[i] = 1
		}
	}

	if len(g.cells) != total {
		g.cells = make([]C, total)
		for i := range g.cells {
			g.cells[i] = g.newCell()
		}
	}
	for _, c := range g.cells {
		c.Reset()
	}
	g.occupied = nil

	return nil
}

// At returns the cell at linear index idx. It panics if idx is out of
// range, like slice indexing.
func (g *Grid[C]) At(idx int) C { return g.cells[idx] }

// InBounds reports whether idx addresses a cell.
// Complexity: O(1).
func (g *Grid[C]) InBounds(idx int) bool {
	return idx >= 0 && idx < len(g.cells)
}

// Index maps per-axis coordinates to the linear index
// c0 + d0*(c1 + d1*(c2 + ...)).
// Returns ErrBadCoords if len(coords) != Ndims() or any coordinate is
// outside its axis.
// Complexity: O(ndims).
func (g *Grid[C]) Index(coords ...int) (int, error) {
	if len(coords) != g.ndims {
		return 0, fmt.Errorf("%w: got %d coordinates for %d axes", ErrBadCoords, len(coords), g.ndims)
	}
	idx := 0
	for i := g.ndims - 1; i >= 0; i-- {
		c := coords[i]
		if c < 0 || c >= g.dims[i] {
			return 0, fmt.Errorf("%w: axis %d coordinate %d not in [0,%d)", ErrBadCoords, i, c, g.dims[i])
		}
		idx = idx*g.dims[i] + c
	}
	return idx, nil
}

// Coordinate converts a linear index back to per-axis coordinates.
// Returns ErrBadCoords if idx is out of range.
// Complexity: O(ndims).
func (g *Grid[C]) Coordinate(idx int) ([]int, error) {
	if !g.InBounds(idx) {
		return nil, fmt.Errorf("%w: index %d not in [0,%d)", ErrBadCoords, idx, len(g.cells))
	}
	coords := make([]int, g.ndims)
	for i, d := range g.dims {
		coords[i] = idx % d
		idx /= d
	}
	return coords, nil
}

// Neighbors returns the face neighbours of idx: for every axis the cell one
// step below and one step above, skipping those outside the grid. The result
// is ordered by axis, lower neighbour first. An out-of-range idx yields nil.
// Complexity: O(ndims).
func (g *Grid[C]) Neighbors(idx int) []int {
	if !g.InBounds(idx) {
		return nil
	}
	out := make([]int, 0, 2*g.ndims)
	stride := 1
	for _, d := range g.dims {
		c := (idx / stride) % d
		if c > 0 {
			out = append(out, idx-stride)
		}
		if c < d-1 {
			out = append(out, idx+stride)
		}
		stride *= d
	}
	return out
}

// SetLeafSize records the physical extent of one cell.
func (g *Grid[C]) SetLeafSize(s float64) { g.leafSize = s }

// LeafSize returns the physical extent of one cell (1 by default).
func (g *Grid[C]) LeafSize() float64 { return g.leafSize }

// SetOccupiedCells registers the obstacle indices of a load as one batch.
// The slice is copied.
func (g *Grid[C]) SetOccupiedCells(idx []int) {
	g.occupied = make([]int, len(idx))
	copy(g.occupied, idx)
}

// OccupiedCells returns a copy of the registered obstacle indices, in the
// order they were registered.
func (g *Grid[C]) OccupiedCells() []int {
	out := make([]int, len(g.occupied))
	copy(out, g.occupied)
	return out
}
