package ndgrid

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors for ndgrid operations.
var (
	// ErrBadDims indicates a non-positive axis size, or more axis sizes than grid dimensions.
	ErrBadDims = errors.New("ndgrid: axis sizes must be positive and at most ndims")
	// ErrBadCoords indicates a coordinate tuple of the wrong length or outside the grid.
	ErrBadCoords = errors.New("ndgrid: coordinates out of range")
	// ErrNilFactory indicates New was called with a nil cell factory.
	ErrNilFactory = errors.New("ndgrid: cell factory is nil")
)

// Cell is the minimal capability of a grid cell: returning to the
// sentinel state. Grid.Resize calls Reset on every cell.
type Cell interface {
	Reset()
}

// OccupancyCell is a Cell with a boolean occupancy. true means free
// (traversable), false means occupied (obstacle).
type OccupancyCell interface {
	Cell
	SetOccupancy(free bool)
	Occupancy() bool
}

// VelocityCell is a Cell carrying a non-negative propagation speed.
type VelocityCell interface {
	Cell
	SetVelocity(v float64)
	Velocity() float64
}

// State is the solver bookkeeping state of an FMCell.
type State int

const (
	// Far cells have not been reached by the front yet.
	Far State = iota
	// Narrow cells are on the propagating front (tentative value).
	Narrow
	// Frozen cells hold their final arrival value.
	Frozen
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Far:
		return "far"
	case Narrow:
		return "narrow"
	case Frozen:
		return "frozen"
	}
	return "unknown"
}

// Grid is an N-dimensional container of cells addressed by linear index.
// dims holds the per-axis sizes; a freshly built grid has all sizes 0.
// cells is allocated by Resize through newCell.
// occupied is the obstacle batch registered by the last SetOccupiedCells.
type Grid[C Cell] struct {
	newCell  func() C
	ndims    int
	dims     []int
	cells    []C
	leafSize float64
	origin   orb.Point
	occupied []int
}
