package maploader_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndgridmap/ndgrid"
)

// newGrid returns an empty 2D FMCell grid.
func newGrid(t testing.TB) *ndgrid.Grid[*ndgrid.FMCell] {
	t.Helper()
	g, err := ndgrid.New(ndgrid.NewFMCell, 2)
	require.NoError(t, err)
	return g
}

// binaryImage builds a grayscale raster from rows of 0/1 values, top row
// first; 1 becomes white (free), 0 black (occupied).
func binaryImage(rows [][]int) *image.Gray {
	h, w := len(rows), len(rows[0])
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y, row := range rows {
		for x, v := range row {
			if v != 0 {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

// writePNG encodes img as PNG into dir/name and returns the path.
func writePNG(t testing.TB, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

// writeFile writes content into dir/name and returns the path.
func writeFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// occupancy returns the occupancy of every cell in index order.
func occupancy(g *ndgrid.Grid[*ndgrid.FMCell]) []bool {
	out := make([]bool, g.Len())
	for i := range out {
		out[i] = g.At(i).Occupancy()
	}
	return out
}
