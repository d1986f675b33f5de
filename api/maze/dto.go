// Package mazeapi exposes puzzle generation and solving over HTTP.
package mazeapi

import (
	dmn "github.com/corbinmurray/Asterius/domain"
	"github.com/corbinmurray/Asterius/maze"
)

// PuzzleRequest represents a request to generate a new puzzle.
type PuzzleRequest struct {
	Rows        int    `json:"rows" form:"rows" binding:"required,min=1"`
	Cols        int    `json:"cols" form:"cols" binding:"required,min=1"`
	Seed        *int64 `json:"seed" form:"seed"`
	MinDistance *int   `json:"min_distance" form:"min_distance" binding:"omitempty,min=0"`
}

// BatchRequest represents a request to generate several puzzles at once.
type BatchRequest struct {
	Requests []PuzzleRequest `json:"requests" binding:"required,min=1,dive"`
}

// BatchResponse holds the generated puzzles in request order.
type BatchResponse struct {
	Puzzles []*dmn.Puzzle `json:"puzzles"`
}

// SolveRequest represents a request to solve a caller-supplied maze.
type SolveRequest struct {
	Rows  int                `json:"rows" binding:"required,min=1"`
	Cols  int                `json:"cols" binding:"required,min=1"`
	Cells []dmn.CellOpenings `json:"cells"`
	Start *maze.Cell         `json:"start" binding:"required"`
	Goal  *maze.Cell         `json:"goal" binding:"required"`
}

func (r PuzzleRequest) toDomain() dmn.PuzzleRequest {
	return dmn.PuzzleRequest{
		Rows:        r.Rows,
		Cols:        r.Cols,
		Seed:        r.Seed,
		MinDistance: r.MinDistance,
	}
}

func (r SolveRequest) toDomain() dmn.SolveRequest {
	return dmn.SolveRequest{
		Rows:  r.Rows,
		Cols:  r.Cols,
		Cells: r.Cells,
		Start: *r.Start,
		Goal:  *r.Goal,
	}
}
