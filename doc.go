// Package ndgridmap turns map files into N-dimensional grids ready for
// wavefront-propagation planners such as Fast Marching.
//
// What is in the box?
//
//	• ndgrid/     — the grid: generic cells, linear indexing, resize with
//	                sentinel reset, leaf size, world coordinates, neighbours,
//	                free-space components
//	• maploader/  — loaders: binary occupancy rasters, grayscale velocity
//	                rasters, the plain-text grid format, ROS map_server YAML
//	                descriptors, and a text writer
//	• examples/   — a runnable walkthrough comparing raster and text loading
//
// Orientation in one picture (3×2 raster, top row first → grid indices):
//
//	raster        grid
//	a b c         3 4 5   ← a b c
//	d e f         0 1 2   ← d e f
//
// Raster loaders flip Y so index 0 is the bottom-left cell. The text loader
// keeps reading order unless maploader.WithFlipY(true) is passed.
//
//	go get github.com/katalvlaran/ndgridmap
package ndgridmap
