package maploader

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ndgridmap/ndgrid"
)

// Thresholds used by LoadMapFromYAML when the descriptor omits them. A key
// that is present, even with value 0, is used as written.
const (
	DefaultOccupiedThresh = 0.65
	DefaultFreeThresh     = 0.196
)

// MapMetadata is a ROS map_server style map descriptor.
//
//	image: floor.png
//	resolution: 0.05
//	origin: [-10.0, -10.0, 0.0]
//	negate: 0
//	occupied_thresh: 0.65
//	free_thresh: 0.196
//
// Origin is the world pose (x, y, yaw) of the lower-left pixel; yaw is
// recorded but not applied.
type MapMetadata struct {
	Image          string    `yaml:"image"`
	Resolution     float64   `yaml:"resolution"`
	Origin         []float64 `yaml:"origin"`
	Negate         int       `yaml:"negate"`
	OccupiedThresh float64   `yaml:"occupied_thresh"`
	FreeThresh     float64   `yaml:"free_thresh"`
}

// mapDescriptor is the on-disk form of MapMetadata. Thresholds are pointers
// so that an explicit 0 can be told apart from an absent key.
type mapDescriptor struct {
	Image          string    `yaml:"image"`
	Resolution     float64   `yaml:"resolution"`
	Origin         []float64 `yaml:"origin"`
	Negate         int       `yaml:"negate"`
	OccupiedThresh *float64  `yaml:"occupied_thresh"`
	FreeThresh     *float64  `yaml:"free_thresh"`
}

// metadata fills default thresholds for absent keys.
func (d *mapDescriptor) metadata() *MapMetadata {
	m := &MapMetadata{
		Image:          d.Image,
		Resolution:     d.Resolution,
		Origin:         d.Origin,
		Negate:         d.Negate,
		OccupiedThresh: DefaultOccupiedThresh,
		FreeThresh:     DefaultFreeThresh,
	}
	if d.OccupiedThresh != nil {
		m.OccupiedThresh = *d.OccupiedThresh
	}
	if d.FreeThresh != nil {
		m.FreeThresh = *d.FreeThresh
	}
	return m
}

// validate checks the descriptor.
func (m *MapMetadata) validate() error {
	if m.Image == "" {
		return fmt.Errorf("%w: descriptor has no image", ErrMalformed)
	}
	if m.Resolution <= 0 {
		return fmt.Errorf("%w: resolution %v must be positive", ErrMalformed, m.Resolution)
	}
	if m.FreeThresh < 0 || m.FreeThresh > m.OccupiedThresh || m.OccupiedThresh > 1 {
		return fmt.Errorf("%w: need 0 <= free_thresh (%v) <= occupied_thresh (%v) <= 1",
			ErrMalformed, m.FreeThresh, m.OccupiedThresh)
	}
	if m.Negate != 0 && m.Negate != 1 {
		return fmt.Errorf("%w: negate %d must be 0 or 1", ErrMalformed, m.Negate)
	}
	return nil
}

// LoadMapFromYAML reads a map descriptor and loads the image it names
// (relative paths resolve against the descriptor's directory). The grid is
// resized only when its shape differs from the image's, as in
// LoadMapFromImage.
//
// For every pixel the occupancy probability is p = (255 − v)/255, or v/255
// when negate is 1, where v is the mean of the colour channels. Cells with
// p < free_thresh are free; everything else, including the unknown band
// between the two thresholds, is an obstacle. Pixels use the same Y flip as
// LoadMapFromImage. The leaf size is set to the resolution and the grid
// origin to (origin[0], origin[1]).
//
// Errors: ErrNotFound (descriptor or image), ErrMalformed (descriptor),
// ErrDecode (image). The grid is untouched on error.
// Complexity: O(W×H).
func LoadMapFromYAML[C ndgrid.OccupancyCell](path string, g *ndgrid.Grid[C]) (*MapMetadata, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	var d mapDescriptor
	if err = yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, path, err)
	}
	m := d.metadata()
	if err = m.validate(); err != nil {
		return nil, err
	}

	imgPath := m.Image
	if !filepath.IsAbs(imgPath) {
		imgPath = filepath.Join(filepath.Dir(path), imgPath)
	}
	img, err := openImage(imgPath)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if err = fitGrid(g, w, h); err != nil {
		return nil, err
	}
	g.SetLeafSize(m.Resolution)
	var origin orb.Point
	if len(m.Origin) >= 2 {
		origin = orb.Point{m.Origin[0], m.Origin[1]}
	}
	g.SetOrigin(origin)

	var obs []int
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			free := m.occupancyProb(img, b.Min.X+x, b.Min.Y+y) < m.FreeThresh
			idx := FlipIndex(w, h, x, y)
			g.At(idx).SetOccupancy(free)
			if !free {
				obs = append(obs, idx)
			}
		}
	}
	g.SetOccupiedCells(obs)

	return m, nil
}

// occupancyProb returns the occupancy probability of pixel (x,y).
func (m *MapMetadata) occupancyProb(img image.Image, x, y int) float64 {
	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	v := (float64(c.R) + float64(c.G) + float64(c.B)) / 3
	if m.Negate == 1 {
		return v / 255
	}
	return (255 - v) / 255
}
