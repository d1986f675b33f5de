package maze

import "fmt"

// PickEndpoints chooses a distinct start and goal cell uniformly at random.
//
// When minDistance is greater than one, only pairs at least minDistance apart
// (Manhattan) are eligible. The bound is clamped to the largest distance the
// grid allows, so a pair always exists. Candidates are enumerated rather than
// sampled, which keeps the call bounded on large grids.
//
// Reachability needs no check: a perfect maze connects every pair of cells.
func PickEndpoints(m *Maze, rng Source, minDistance int) (Cell, Cell, error) {
	if m.Len() < 2 {
		return Cell{}, Cell{}, fmt.Errorf("%w: need at least two cells to pick endpoints, got %dx%d", ErrInvalidDimension, m.rows, m.cols)
	}

	maxDistance := (m.rows - 1) + (m.cols - 1)
	minDistance = max(1, min(minDistance, maxDistance))

	// farthest returns the largest distance from c to any cell, always a corner.
	farthest := func(c Cell) int {
		return max(c.X, m.cols-1-c.X) + max(c.Y, m.rows-1-c.Y)
	}

	starts := make([]Cell, 0, m.Len())
	for _, c := range m.Cells() {
		if farthest(c) >= minDistance {
			starts = append(starts, c)
		}
	}
	start := starts[rng.Intn(len(starts))]

	goals := make([]Cell, 0, m.Len())
	for _, c := range m.Cells() {
		if c != start && start.ManhattanDistance(c) >= minDistance {
			goals = append(goals, c)
		}
	}
	goal := goals[rng.Intn(len(goals))]

	return start, goal, nil
}
