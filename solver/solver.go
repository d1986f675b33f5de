/*
Package solver finds shortest paths through a maze graph with A*.

Solve returns the optimal path together with the ordered trace of every cell
expanded during the search. Each traced cell carries an intensity equal to
its cost from the start at the moment it was expanded, which callers can map
onto a colour gradient to animate the search. When every traced cell has the
same intensity (for example start == goal) a min..max gradient is degenerate;
that case is left to the caller.

Ordering is deterministic: the frontier pops the smallest f = g + h first,
then the larger g, then the earlier insertion. Among equal-f candidates the
one further from the start is closer to the goal, so the search keeps
pushing along one path instead of widening across a tie.
*/
package solver

import (
	"errors"
	"fmt"
	"slices"

	"github.com/corbinmurray/Asterius/graph"
	"github.com/corbinmurray/Asterius/maze"
	"github.com/zyedidia/generic/mapset"
)

var (
	// ErrUnknownCell is returned when start or goal is not in the graph.
	ErrUnknownCell = maze.ErrUnknownCell

	// ErrUnreachable is returned when the frontier empties before the goal
	// is expanded.
	ErrUnreachable = errors.New("goal is unreachable from start")
)

// Visit is a cell expanded by the search.
type Visit struct {
	maze.Cell
	Intensity int `json:"intensity"` // g-score at expansion
}

// Result is the outcome of a search.
type Result struct {
	SolutionPath []maze.Cell `json:"solutionPath"` // start to goal inclusive
	VisitedNodes []Visit     `json:"visitedNodes"` // in expansion order
}

// Heuristic is the Manhattan distance, admissible and consistent for unit
// moves without diagonals.
func Heuristic(c, goal maze.Cell) int {
	return c.ManhattanDistance(goal)
}

// Solve runs A* over g from start to goal.
func Solve(g *graph.Graph, start, goal maze.Cell) (*Result, error) {
	if !g.Has(start) {
		return nil, fmt.Errorf("%w: start %v", ErrUnknownCell, start)
	}
	if !g.Has(goal) {
		return nil, fmt.Errorf("%w: goal %v", ErrUnknownCell, goal)
	}

	gScore := map[maze.Cell]int{start: 0}
	cameFrom := make(map[maze.Cell]maze.Cell)
	closed := mapset.New[maze.Cell]()

	open := &frontier{}
	open.push(start, 0, Heuristic(start, goal))

	result := &Result{}
	for open.Len() > 0 {
		current := open.pop()

		// Stale entry: the cell was finalized or reached more cheaply since.
		if closed.Has(current.cell) || current.g > gScore[current.cell] {
			continue
		}
		closed.Put(current.cell)
		result.VisitedNodes = append(result.VisitedNodes, Visit{Cell: current.cell, Intensity: current.g})

		if current.cell == goal {
			result.SolutionPath = reconstruct(cameFrom, start, goal)
			return result, nil
		}

		neighbors, _ := g.Neighbors(current.cell)
		for _, neighbor := range neighbors {
			if closed.Has(neighbor) {
				continue
			}
			tentative := current.g + 1
			if old, seen := gScore[neighbor]; !seen || tentative < old {
				gScore[neighbor] = tentative
				cameFrom[neighbor] = current.cell
				open.push(neighbor, tentative, tentative+Heuristic(neighbor, goal))
			}
		}
	}

	return nil, fmt.Errorf("%w: %v to %v after %d expansions", ErrUnreachable, start, goal, len(result.VisitedNodes))
}

// reconstruct walks cameFrom back from goal to start and reverses the walk.
func reconstruct(cameFrom map[maze.Cell]maze.Cell, start, goal maze.Cell) []maze.Cell {
	path := []maze.Cell{goal}
	for current := goal; current != start; {
		current = cameFrom[current]
		path = append(path, current)
	}
	slices.Reverse(path)
	return path
}
