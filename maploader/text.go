package maploader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/katalvlaran/ndgridmap/ndgrid"
)

// maxPrealloc caps the cell buffer allocated before any cell token is read.
const maxPrealloc = 1 << 16

// textMap is the fully parsed content of a text grid, built before the
// target grid is touched.
type textMap struct {
	leafSize      float64
	ndims         uint64
	width, height int
	free          []bool
}

// LoadMapFromText loads a text grid file into a 2D occupancy grid.
//
// Format (whitespace separated after the first line):
//
//	<header line, discarded>
//	<leafsize: float>
//	<ndims: unsigned int, informational>
//	<width: unsigned int>
//	<height: unsigned int>
//	<width×height cells: 0 = occupied, 1 = free, row-major, top row first>
//
// Cell i of the stream is written to grid index i, without the Y flip the
// raster loaders apply; WithFlipY(true) switches to FlipIndex. The grid is
// resized to (width, height) unless it already has that shape, its leaf size
// set, and the indices of the occupied cells registered with
// g.SetOccupiedCells.
//
// Errors: ErrNotFound if path cannot be opened, ErrMalformed for invalid
// content. The file is always closed and the grid is untouched on error.
// Complexity: O(W×H).
func LoadMapFromText[C ndgrid.OccupancyCell](path string, g *ndgrid.Grid[C], opts ...Option) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	defer f.Close()

	return ReadMapText(f, g, opts...)
}

// ReadMapText is LoadMapFromText for an open stream.
func ReadMapText[C ndgrid.OccupancyCell](r io.Reader, g *ndgrid.Grid[C], opts ...Option) error {
	cfg := applyOptions(opts)

	m, err := parseTextMap(r)
	if err != nil {
		return err
	}

	if err = fitGrid(g, m.width, m.height); err != nil {
		return err
	}
	g.SetLeafSize(m.leafSize)

	var obs []int
	for i, free := range m.free {
		idx := scanIndex(m.width, m.height, i, cfg.FlipY)
		g.At(idx).SetOccupancy(free)
		if !free {
			obs = append(obs, idx)
		}
	}
	g.SetOccupiedCells(obs)

	return nil
}

// parseTextMap reads the header line, the four metadata tokens and exactly
// width×height cell tokens. Trailing content is ignored.
func parseTextMap(r io.Reader) (*textMap, error) {
	br := bufio.NewReader(r)
	if _, err := br.ReadString('\n'); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header line", ErrMalformed)
		}
		return nil, fmt.Errorf("%w: read header: %w", ErrMalformed, err)
	}

	sc := bufio.NewScanner(br)
	sc.Split(bufio.ScanWords)
	next := func(what string) (string, error) {
		if sc.Scan() {
			return sc.Text(), nil
		}
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("%w: read %s: %w", ErrMalformed, what, err)
		}
		return "", fmt.Errorf("%w: missing %s", ErrMalformed, what)
	}

	m := &textMap{}
	tok, err := next("leafsize")
	if err != nil {
		return nil, err
	}
	if m.leafSize, err = strconv.ParseFloat(tok, 64); err != nil {
		return nil, fmt.Errorf("%w: leafsize %q", ErrMalformed, tok)
	}

	if tok, err = next("ndims"); err != nil {
		return nil, err
	}
	if m.ndims, err = strconv.ParseUint(tok, 10, 32); err != nil {
		return nil, fmt.Errorf("%w: ndims %q", ErrMalformed, tok)
	}

	if m.width, err = parseSize(next, "width"); err != nil {
		return nil, err
	}
	if m.height, err = parseSize(next, "height"); err != nil {
		return nil, err
	}

	if m.width > math.MaxInt/m.height {
		return nil, fmt.Errorf("%w: %d×%d cells overflow", ErrMalformed, m.width, m.height)
	}
	n := m.width * m.height
	// Grows with the tokens actually read; the header alone never sizes it.
	m.free = make([]bool, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		if tok, err = next("cell"); err != nil {
			return nil, fmt.Errorf("%w (%d of %d read)", err, i, n)
		}
		switch tok {
		case "0":
			m.free = append(m.free, false)
		case "1":
			m.free = append(m.free, true)
		default:
			return nil, fmt.Errorf("%w: cell %d: %q is not 0 or 1", ErrMalformed, i, tok)
		}
	}

	return m, nil
}

// parseSize reads a positive axis size.
func parseSize(next func(string) (string, error), what string) (int, error) {
	tok, err := next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(tok, 10, 31)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("%w: %s %q must be a positive integer", ErrMalformed, what, tok)
	}
	return int(v), nil
}
