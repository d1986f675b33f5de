/*
Package maze provides tools for creating and inspecting rectangular perfect mazes.

A Maze records, for every cell of a rows×cols grid, the set of directions in
which the cell has an open passage. Openness is always symmetric: if a cell
is open towards a neighbor, the neighbor is open back towards it.

Mazes are produced by Generate, which carves a spanning tree using randomized
recursive backtracking, or by Carve from an explicit passage list. Both return
a fresh value that is never modified afterwards.

PickEndpoints chooses a start and goal cell, and Render draws the maze as
ASCII for debugging.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDimension is returned for a grid with a non-positive side.
	ErrInvalidDimension = errors.New("invalid maze dimensions")

	// ErrUnknownCell is returned for a cell outside the grid.
	ErrUnknownCell = errors.New("cell is outside the maze")
)

// Maze is an immutable rectangular maze.
type Maze struct {
	rows int          // Number of rows (height)
	cols int          // Number of columns (width)
	open []Directions // Open passages per cell, row-major
}

// Passage is an opening from a cell in one direction.
type Passage struct {
	From      Cell      `json:"from"`
	Direction Direction `json:"direction"`
}

// newGrid allocates a fully walled rows×cols maze.
func newGrid(rows, cols int) (*Maze, error) {
	if min(rows, cols) <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}
	return &Maze{
		rows: rows,
		cols: cols,
		open: make([]Directions, rows*cols),
	}, nil
}

// Carve builds a maze with exactly the given passages opened. Each passage is
// opened on both sides. The result is symmetric but need not be a tree.
func Carve(rows, cols int, passages []Passage) (*Maze, error) {
	m, err := newGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	for _, p := range passages {
		if err := m.openPassage(p.From, p.Direction); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// openPassage removes the wall between from and its neighbor in direction d.
func (m *Maze) openPassage(from Cell, d Direction) error {
	to := from.Neighbor(d)
	if !m.Contains(from) {
		return fmt.Errorf("%w: %v", ErrUnknownCell, from)
	}
	if d.Inverse() == 0 {
		return fmt.Errorf("invalid direction %v at %v", d, from)
	}
	if !m.Contains(to) {
		return fmt.Errorf("%w: passage %v from %v leaves the grid", ErrUnknownCell, d, from)
	}

	m.open[m.index(from)] = m.open[m.index(from)].With(d)
	m.open[m.index(to)] = m.open[m.index(to)].With(d.Inverse())
	return nil
}

func (m *Maze) index(c Cell) int {
	return c.Y*m.cols + c.X
}

// Rows returns the number of rows.
func (m *Maze) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Maze) Cols() int { return m.cols }

// Len returns the number of cells.
func (m *Maze) Len() int { return m.rows * m.cols }

// Contains reports whether c lies within the grid.
func (m *Maze) Contains(c Cell) bool {
	return c.X >= 0 && c.X < m.cols && c.Y >= 0 && c.Y < m.rows
}

// Open returns the directions in which c has a passage.
// Cells outside the grid have none.
func (m *Maze) Open(c Cell) Directions {
	if !m.Contains(c) {
		return 0
	}
	return m.open[m.index(c)]
}

// HasPassage reports whether c is open towards d.
func (m *Maze) HasPassage(c Cell, d Direction) bool {
	return m.Open(c).Has(d)
}

// Cells returns every cell in row-major order.
func (m *Maze) Cells() []Cell {
	cells := make([]Cell, 0, m.Len())
	for y := 0; y < m.rows; y++ {
		for x := 0; x < m.cols; x++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}

// Passages returns the number of undirected passages.
func (m *Maze) Passages() int {
	n := 0
	for _, s := range m.open {
		n += s.Len()
	}
	return n / 2
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	return m.Render(nil)
}

// Render draws the maze as ASCII. Cells present in overlay show that rune in
// their centre.
func (m *Maze) Render(overlay map[Cell]rune) string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", m.cols) + "\n")

	for y := 0; y < m.rows; y++ {
		// Cell rows
		output.WriteString("|")
		for x := 0; x < m.cols; x++ {
			c := Cell{X: x, Y: y}
			if r, ok := overlay[c]; ok {
				output.WriteString(" " + string(r) + " ")
			} else {
				output.WriteString("   ")
			}

			if m.HasPassage(c, East) {
				output.WriteString(" ")
			} else {
				output.WriteString("|")
			}
		}
		output.WriteString("\n")

		// Wall rows
		output.WriteString("+")
		for x := 0; x < m.cols; x++ {
			if m.HasPassage(Cell{X: x, Y: y}, South) {
				output.WriteString("   +")
			} else {
				output.WriteString("---+")
			}
		}
		output.WriteString("\n")
	}

	return output.String()
}
