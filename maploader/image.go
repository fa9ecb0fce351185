package maploader

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"io"
	"os"

	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP

	"github.com/katalvlaran/ndgridmap/ndgrid"
)

// velocityScale normalises an 8-bit sample range to [0,1].
const velocityScale = 255.0

// LoadMapFromImage loads a monochrome raster into a 2D occupancy grid.
//
// Each pixel whose first channel is non-zero becomes a free cell, every
// other pixel an obstacle. Pixel (x,y) is written to FlipIndex(W,H,x,y) so
// that the bottom-left pixel lands at index 0. The obstacle indices are
// collected in scan order (y outer, x inner) and registered with
// g.SetOccupiedCells once the sweep is done.
//
// A grid not already shaped (W, H) is resized to it, which resets every
// cell; additional axes get size 1. A grid of that shape keeps its
// velocities, so the map can be layered over a velocity field.
// Errors: ErrNotFound if path cannot be opened, ErrDecode if it is not a
// decodable raster. The grid is untouched on error.
// Complexity: O(W×H).
func LoadMapFromImage[C ndgrid.OccupancyCell](path string, g *ndgrid.Grid[C]) error {
	img, err := openImage(path)
	if err != nil {
		return err
	}
	return fillOccupancy(img, g)
}

// DecodeMap is LoadMapFromImage for an already open raster stream.
func DecodeMap[C ndgrid.OccupancyCell](r io.Reader, g *ndgrid.Grid[C]) error {
	img, err := decodeImage(r, "stream")
	if err != nil {
		return err
	}
	return fillOccupancy(img, g)
}

// LoadVelocitiesFromImage loads a grayscale raster into the velocity field
// of a 2D grid. Every cell gets sample/255, where sample is the first
// channel at its native precision: 8-bit sources give [0,1], 16-bit sources
// can exceed 1 and are stored as is.
//
// When g already has shape (W, H) only velocities are written: occupancy
// and the obstacle batch of a previously loaded map survive. A grid of any
// other shape is resized first, which resets every cell to free and clears
// the obstacle batch.
//
// Errors: ErrNotFound, ErrDecode; the grid is untouched on error.
// Complexity: O(W×H).
func LoadVelocitiesFromImage[C ndgrid.VelocityCell](path string, g *ndgrid.Grid[C]) error {
	img, err := openImage(path)
	if err != nil {
		return err
	}
	return fillVelocity(img, g)
}

// DecodeVelocities is LoadVelocitiesFromImage for an open raster stream.
func DecodeVelocities[C ndgrid.VelocityCell](r io.Reader, g *ndgrid.Grid[C]) error {
	img, err := decodeImage(r, "stream")
	if err != nil {
		return err
	}
	return fillVelocity(img, g)
}

func fillOccupancy[C ndgrid.OccupancyCell](img image.Image, g *ndgrid.Grid[C]) error {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if err := fitGrid(g, w, h); err != nil {
		return err
	}

	var obs []int
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			free := firstChannel(img, b.Min.X+x, b.Min.Y+y) != 0
			idx := FlipIndex(w, h, x, y)
			g.At(idx).SetOccupancy(free)
			if !free {
				obs = append(obs, idx)
			}
		}
	}
	g.SetOccupiedCells(obs)

	return nil
}

func fillVelocity[C ndgrid.VelocityCell](img image.Image, g *ndgrid.Grid[C]) error {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if err := fitGrid(g, w, h); err != nil {
		return err
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := firstChannel(img, b.Min.X+x, b.Min.Y+y)
			g.At(FlipIndex(w, h, x, y)).SetVelocity(v / velocityScale)
		}
	}

	return nil
}

// openImage opens and decodes path, closing the file before returning.
func openImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	defer f.Close()

	return decodeImage(f, path)
}

// decodeImage decodes r and rejects empty rasters, which no grid can hold.
func decodeImage(r io.Reader, name string) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, name, err)
	}
	if b := img.Bounds(); b.Empty() {
		return nil, fmt.Errorf("%w: %s: empty %s raster", ErrDecode, name, format)
	}
	return img, nil
}

// firstChannel returns the first channel of pixel (x,y) at the source's
// native precision: 16-bit images report 0..65535, everything else 0..255.
// Colour pixels are read un-premultiplied so alpha does not scale the value.
func firstChannel(img image.Image, x, y int) float64 {
	switch m := img.(type) {
	case *image.Gray:
		return float64(m.GrayAt(x, y).Y)
	case *image.Gray16:
		return float64(m.Gray16At(x, y).Y)
	case *image.NRGBA64:
		return float64(m.NRGBA64At(x, y).R)
	case *image.RGBA64:
		return float64(color.NRGBA64Model.Convert(m.RGBA64At(x, y)).(color.NRGBA64).R)
	}
	return float64(color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA).R)
}
