package ndgrid

import (
	"math"

	"github.com/paulmach/orb"
)

// World coordinates cover the plane spanned by the first two axes. A grid
// with a single axis is treated as one row. Cell (0,0) is the bottom-left
// cell and its lower-left corner sits at Origin().

// SetOrigin places the lower-left corner of cell (0,0) in world coordinates.
func (g *Grid[C]) SetOrigin(p orb.Point) { g.origin = p }

// Origin returns the world position of the lower-left corner of cell (0,0).
func (g *Grid[C]) Origin() orb.Point { return g.origin }

// plane returns the sizes of the first two axes.
func (g *Grid[C]) plane() (w, h int) {
	w, h = g.dims[0], 1
	if g.ndims > 1 {
		h = g.dims[1]
	}
	return w, h
}

// Bound returns the world-space rectangle covered by the grid.
func (g *Grid[C]) Bound() orb.Bound {
	w, h := g.plane()
	return orb.Bound{
		Min: g.origin,
		Max: orb.Point{
			g.origin[0] + float64(w)*g.leafSize,
			g.origin[1] + float64(h)*g.leafSize,
		},
	}
}

// CellCenter returns the world position of the centre of cell idx, using
// its first two coordinates. ok is false when idx is out of range.
func (g *Grid[C]) CellCenter(idx int) (p orb.Point, ok bool) {
	if !g.InBounds(idx) {
		return orb.Point{}, false
	}
	w, h := g.plane()
	x, y := idx%w, (idx/w)%h
	return orb.Point{
		g.origin[0] + (float64(x)+0.5)*g.leafSize,
		g.origin[1] + (float64(y)+0.5)*g.leafSize,
	}, true
}

// CellAt returns the linear index of the cell containing p on the first
// plane of the grid (all higher coordinates 0). Points on the upper or right
// border fall outside. ok is false when p is outside Bound() or the leaf
// size is not positive.
func (g *Grid[C]) CellAt(p orb.Point) (idx int, ok bool) {
	if g.leafSize <= 0 || len(g.cells) == 0 {
		return 0, false
	}
	w, h := g.plane()
	x := int(math.Floor((p[0] - g.origin[0]) / g.leafSize))
	y := int(math.Floor((p[1] - g.origin[1]) / g.leafSize))
	if x < 0 || x >= w || y < 0 || y >= h {
		return 0, false
	}
	return x + y*w, true
}
