// Package domain holds the plain records exchanged between the service, its cache and the API.
package domain

import (
	"github.com/corbinmurray/Asterius/maze"
	"github.com/corbinmurray/Asterius/solver"
	"github.com/google/uuid"
)

// CellOpenings lists the open passages of one cell.
type CellOpenings struct {
	maze.Cell
	Open []maze.Direction `json:"open"`
}

// Puzzle is a generated maze with its endpoints and solution.
type Puzzle struct {
	ID           uuid.UUID      `json:"id"`
	Seed         int64          `json:"seed"`
	Rows         int            `json:"rows"`
	Cols         int            `json:"cols"`
	Cells        []CellOpenings `json:"cells"`
	Start        maze.Cell      `json:"start"`
	Goal         maze.Cell      `json:"goal"`
	SolutionPath []maze.Cell    `json:"solutionPath"`
	VisitedNodes []solver.Visit `json:"visitedNodes"`
}

// PuzzleRequest asks for a freshly generated puzzle.
type PuzzleRequest struct {
	Rows        int
	Cols        int
	Seed        *int64 // nil draws a new seed
	MinDistance *int   // nil uses the service default
}

// SolveRequest asks for a solution over a caller-supplied maze.
type SolveRequest struct {
	Rows  int
	Cols  int
	Cells []CellOpenings
	Start maze.Cell
	Goal  maze.Cell
}

// NewPuzzle assembles a Puzzle from the pipeline outputs.
func NewPuzzle(id uuid.UUID, seed int64, m *maze.Maze, start, goal maze.Cell, res *solver.Result) *Puzzle {
	return &Puzzle{
		ID:           id,
		Seed:         seed,
		Rows:         m.Rows(),
		Cols:         m.Cols(),
		Cells:        Openings(m),
		Start:        start,
		Goal:         goal,
		SolutionPath: res.SolutionPath,
		VisitedNodes: res.VisitedNodes,
	}
}

// Openings lists every cell of m with its open directions, row-major.
func Openings(m *maze.Maze) []CellOpenings {
	cells := make([]CellOpenings, 0, m.Len())
	for _, c := range m.Cells() {
		cells = append(cells, CellOpenings{Cell: c, Open: m.Open(c).List()})
	}
	return cells
}

// Passages converts cell openings into the passage list accepted by maze.Carve.
func Passages(cells []CellOpenings) []maze.Passage {
	var passages []maze.Passage
	for _, c := range cells {
		for _, d := range c.Open {
			passages = append(passages, maze.Passage{From: c.Cell, Direction: d})
		}
	}
	return passages
}

// Maze rebuilds the maze described by the puzzle.
func (p *Puzzle) Maze() (*maze.Maze, error) {
	return maze.Carve(p.Rows, p.Cols, Passages(p.Cells))
}

// Render draws the puzzle as ASCII: S marks the start, G the goal and
// * the rest of the solution path.
func (p *Puzzle) Render() (string, error) {
	m, err := p.Maze()
	if err != nil {
		return "", err
	}

	overlay := make(map[maze.Cell]rune, len(p.SolutionPath)+2)
	for _, c := range p.SolutionPath {
		overlay[c] = '*'
	}
	overlay[p.Start] = 'S'
	overlay[p.Goal] = 'G'
	return m.Render(overlay), nil
}
