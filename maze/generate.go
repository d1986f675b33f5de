package maze

// Source is the random source used for generation and endpoint selection.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Generate creates a perfect maze over a rows×cols grid using randomized
// recursive backtracking, starting from (0,0). The same Source state always
// yields the same maze.
func Generate(rows, cols int, rng Source) (*Maze, error) {
	m, err := newGrid(rows, cols)
	if err != nil {
		return nil, err
	}

	visited := make([]bool, m.Len())
	start := Cell{X: 0, Y: 0}
	visited[m.index(start)] = true
	stack := []Cell{start}

	candidates := make([]Direction, 0, 4)
	for len(stack) > 0 {
		current := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, d := range AllDirections {
			next := current.Neighbor(d)
			if m.Contains(next) && !visited[m.index(next)] {
				candidates = append(candidates, d)
			}
		}

		// Dead end: backtrack.
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		next := current.Neighbor(d)
		_ = m.openPassage(current, d)
		visited[m.index(next)] = true
		stack = append(stack, next)
	}

	return m, nil
}
