package maploader

import (
	"fmt"

	"github.com/katalvlaran/ndgridmap/ndgrid"
)

// FlipIndex maps a top-left-origin coordinate (x,y) of a w×h raster to the
// bottom-left-origin linear index w·(h−y−1)+x used by the grid.
// Callers guarantee 0 ≤ x < w and 0 ≤ y < h.
// Complexity: O(1).
func FlipIndex(w, h, x, y int) int {
	return w*(h-y-1) + x
}

// scanIndex returns the grid index of the i-th cell of a w×h map read in
// row-major, top-left-origin order.
func scanIndex(w, h, i int, flip bool) int {
	if !flip {
		return i
	}
	return FlipIndex(w, h, i%w, i/w)
}

// fitGrid prepares g for a w×h map. A grid of another shape is resized,
// which resets every cell and drops the obstacle batch. A grid that already
// has shape (w, h, 1, …) is left as is, so a loader only overwrites its own
// field and a velocity map can be layered over an occupancy map (or the
// other way round).
func fitGrid[C ndgrid.Cell](g *ndgrid.Grid[C], w, h int) error {
	if hasShape(g.Dims(), w, h) {
		return nil
	}
	if err := g.Resize(w, h); err != nil {
		return fmt.Errorf("maploader: resize grid: %w", err)
	}
	return nil
}

func hasShape(dims []int, w, h int) bool {
	if len(dims) < 2 || dims[0] != w || dims[1] != h {
		return false
	}
	for _, d := range dims[2:] {
		if d != 1 {
			return false
		}
	}
	return true
}
