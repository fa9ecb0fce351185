// Package maploader fills an ndgrid.Grid from map files: binary occupancy
// rasters, grayscale velocity rasters, the plain-text grid format and ROS
// map_server style YAML descriptors.
//
// Orientation:
//
// Raster rows are stored top row first, while the grid uses a bottom-left
// origin (increasing linear-index rows mean increasing Cartesian Y). Every
// raster loader converts pixel (x,y) with FlipIndex:
//
//	idx = W·(H − y − 1) + x
//
// The text loader writes cells in raw reading order (no flip) unless
// WithFlipY(true) is given, so the same map loaded from an image and from
// text lands with opposite vertical orientation by default.
//
// Loaders:
//
//   - LoadMapFromImage / DecodeMap: monochrome raster → occupancy + obstacle batch.
//   - LoadVelocitiesFromImage / DecodeVelocities: grayscale raster → velocity = sample/255.
//   - LoadMapFromText / ReadMapText: text grid → leaf size, occupancy + obstacle batch.
//   - LoadMapFromYAML: descriptor + image → thresholded occupancy, leaf size, origin.
//   - WriteMapText / SaveMapToText: grid → text grid.
//
// Shape:
//
// A loader resizes the grid to the map's (W, H) only when the grid has a
// different shape; Resize resets every cell and drops the obstacle batch.
// On a grid that already has the shape a loader overwrites just its own
// field, so an occupancy map and a velocity map of the same size can be
// loaded in either order. Call Resize first to start from a clean grid.
//
// Supported raster formats: PNG, JPEG, GIF, BMP, TIFF and WebP.
//
// Errors:
//
// Every loader returns nil or an error wrapping exactly one of
//
//   - ErrNotFound:  the file could not be opened.
//   - ErrDecode:    the raster could not be decoded.
//   - ErrMalformed: the text or YAML content is invalid.
//
// On error the grid is neither resized nor modified. Loads are synchronous;
// a grid must not be loaded into concurrently.
package maploader
