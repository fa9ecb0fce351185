package maploader_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ndgridmap/maploader"
	"github.com/katalvlaran/ndgridmap/ndgrid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ReadMapText
////////////////////////////////////////////////////////////////////////////////

// ExampleReadMapText loads a 3×2 text map. Cells marked 0 are obstacles and
// their reading positions become the obstacle batch.
func ExampleReadMapText() {
	const text = `corridor map
0.5
2
3 2
1 0 1
0 1 1
`
	g, _ := ndgrid.New(ndgrid.NewFMCell, 2)
	if err := maploader.ReadMapText(strings.NewReader(text), g); err != nil {
		fmt.Println("load failed:", err)
		return
	}

	fmt.Println("dims:", g.Dims(), "leaf:", g.LeafSize())
	fmt.Println("obstacles:", g.OccupiedCells())
	ext := g.Bound().Max
	fmt.Println("world extent:", ext.X(), ext.Y())

	// Output:
	// dims: [3 2] leaf: 0.5
	// obstacles: [1 3]
	// world extent: 1.5 1
}

////////////////////////////////////////////////////////////////////////////////
// Example: FlipIndex
////////////////////////////////////////////////////////////////////////////////

// ExampleFlipIndex shows where the corners of a 4×3 raster land in the grid.
func ExampleFlipIndex() {
	fmt.Println(maploader.FlipIndex(4, 3, 0, 0)) // top-left pixel
	fmt.Println(maploader.FlipIndex(4, 3, 0, 2)) // bottom-left pixel

	// Output:
	// 8
	// 0
}
