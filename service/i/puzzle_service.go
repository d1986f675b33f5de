package i

import (
	"context"

	dmn "github.com/corbinmurray/Asterius/domain"
)

// PuzzleService generates and solves mazes.
type PuzzleService interface {
	// New generates, picks endpoints for and solves a maze.
	New(context.Context, dmn.PuzzleRequest) (*dmn.Puzzle, error)

	// Batch runs several requests concurrently. Results keep request order.
	Batch(context.Context, []dmn.PuzzleRequest) ([]*dmn.Puzzle, error)

	// Solve searches a caller-supplied maze.
	Solve(context.Context, dmn.SolveRequest) (*dmn.Puzzle, error)
}
