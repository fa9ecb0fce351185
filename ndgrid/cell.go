package ndgrid

import "math"

// DefaultVelocity is the propagation speed of a reset FMCell.
const DefaultVelocity = 1.0

// FMCell is the default cell type. It carries every capability the map
// loaders use plus the arrival value and state a Fast Marching solver needs.
//
// Sentinel state (after Reset): free, velocity DefaultVelocity,
// value +Inf, state Far.
type FMCell struct {
	free     bool
	velocity float64
	value    float64
	state    State
}

// NewFMCell returns a cell in the sentinel state. It is the usual factory
// passed to New.
func NewFMCell() *FMCell {
	c := &FMCell{}
	c.Reset()
	return c
}

// Reset puts the cell back into the sentinel state.
func (c *FMCell) Reset() {
	c.free = true
	c.velocity = DefaultVelocity
	c.value = math.Inf(1)
	c.state = Far
}

// SetOccupancy marks the cell free (true) or occupied (false).
func (c *FMCell) SetOccupancy(free bool) { c.free = free }

// Occupancy reports whether the cell is free.
func (c *FMCell) Occupancy() bool { return c.free }

// SetVelocity sets the propagation speed.
func (c *FMCell) SetVelocity(v float64) { c.velocity = v }

// Velocity returns the propagation speed.
func (c *FMCell) Velocity() float64 { return c.velocity }

// SetValue sets the arrival value.
func (c *FMCell) SetValue(v float64) { c.value = v }

// Value returns the arrival value; +Inf until a solver reaches the cell.
func (c *FMCell) Value() float64 { return c.value }

// SetState sets the solver state.
func (c *FMCell) SetState(s State) { c.state = s }

// State returns the solver state.
func (c *FMCell) State() State { return c.state }
