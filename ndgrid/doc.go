// Package ndgrid provides a dimension-generic grid of cells addressed by a
// single linear index, used as the input data model of wavefront-propagation
// solvers (Fast Marching and friends).
//
// What:
//
//   - Grid[C] stores Len() = d0·d1·…·dn cells of a caller-chosen cell type C.
//   - Cells are created through a factory and reset to a documented sentinel
//     state on every Resize, so no cell ever carries an incidental default.
//   - Linear index: c0 + d0·(c1 + d1·(c2 + …)), i.e. X varies fastest.
//   - Leaf size and origin map cell indices to world coordinates (orb.Point).
//   - The occupied-cell batch records the obstacle indices of the last load.
//
// Capabilities:
//
// Loaders and solvers need different things from a cell. Instead of
// assuming methods exist, they constrain C by one of the capability
// interfaces below, so an unsuitable cell type is rejected at compile time:
//
//   - Cell          – Reset() to the sentinel state.
//   - OccupancyCell – SetOccupancy / Occupancy (true = free).
//   - VelocityCell  – SetVelocity / Velocity.
//
// FMCell implements all of them and adds the solver-facing arrival value.
// C is expected to be a pointer type: Grid hands out the stored value and
// callers mutate it in place.
//
// Complexity:
//
//   - Resize:       O(N) time and memory, N = Len().
//   - Index/Coordinate: O(ndims).
//   - Neighbors:    O(ndims).
//
// Errors:
//
//   - ErrBadDims:    non-positive axis size or too many axes.
//   - ErrBadCoords:  coordinate count or value out of range.
//   - ErrNilFactory: New called without a cell factory.
//
// Grid performs no locking; a grid must not be shared by concurrent writers.
package ndgrid
