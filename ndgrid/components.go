package ndgrid

// FreeComponents finds the connected regions of free cells of g, using face
// connectivity (Neighbors). Each component lists its linear indices in BFS
// order starting from its lowest index; components are ordered by their
// lowest index. Occupied cells belong to no component.
//
// A solver seeded in one component can never reach another, so callers use
// this to check that start and goal share a region.
//
// Time:   O(N·ndims).
// Memory: O(N) for visited flags and output.
func FreeComponents[C OccupancyCell](g *Grid[C]) [][]int {
	seen := make([]bool, g.Len())
	var comps [][]int

	for i0 := 0; i0 < g.Len(); i0++ {
		if seen[i0] || !g.At(i0).Occupancy() {
			continue
		}
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.Neighbors(queue[qi]) {
				if seen[v] || !g.At(v).Occupancy() {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// ComponentLabels returns, for every cell, the position of its component
// in FreeComponents(g), or -1 for occupied cells.
func ComponentLabels[C OccupancyCell](g *Grid[C]) []int {
	labels := make([]int, g.Len())
	for i := range labels {
		labels[i] = -1
	}
	for ci, comp := range FreeComponents(g) {
		for _, idx := range comp {
			labels[idx] = ci
		}
	}
	return labels
}
