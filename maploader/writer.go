package maploader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/ndgridmap/ndgrid"
)

// WriteMapText writes the occupancy of a 2D grid in the text format read by
// ReadMapText, one line of tokens per map row. Cells are emitted in the
// same order the reader consumes them, honouring WithFlipY, so
// ReadMapText(WriteMapText(g)) reproduces g with the same options.
//
// Returns ErrNotTwoD if the grid is empty or has a non-unit axis beyond
// the second.
func WriteMapText[C ndgrid.OccupancyCell](w io.Writer, g *ndgrid.Grid[C], opts ...Option) error {
	cfg := applyOptions(opts)

	dims := g.Dims()
	if g.Len() == 0 {
		return ErrNotTwoD
	}
	for i := 2; i < len(dims); i++ {
		if dims[i] != 1 {
			return fmt.Errorf("%w: axis %d has size %d", ErrNotTwoD, i, dims[i])
		}
	}
	width, height := dims[0], 1
	if len(dims) > 1 {
		height = dims[1]
	}

	bw := bufio.NewWriter(w)
	header := strings.NewReplacer("\r", " ", "\n", " ").Replace(cfg.Header)
	fmt.Fprintln(bw, header)
	fmt.Fprintln(bw, strconv.FormatFloat(g.LeafSize(), 'g', -1, 64))
	fmt.Fprintln(bw, 2)
	fmt.Fprintln(bw, width)
	fmt.Fprintln(bw, height)

	for i := 0; i < width*height; i++ {
		tok := byte('0')
		if g.At(scanIndex(width, height, i, cfg.FlipY)).Occupancy() {
			tok = '1'
		}
		bw.WriteByte(tok)
		if (i+1)%width == 0 {
			bw.WriteByte('\n')
		} else {
			bw.WriteByte(' ')
		}
	}

	return bw.Flush()
}

// SaveMapToText writes g to path with WriteMapText, creating or truncating
// the file.
func SaveMapToText[C ndgrid.OccupancyCell](path string, g *ndgrid.Grid[C], opts ...Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("maploader: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return WriteMapText(f, g, opts...)
}
