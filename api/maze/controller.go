package mazeapi

import (
	"errors"
	"net/http"

	dmn "github.com/corbinmurray/Asterius/domain"
	"github.com/corbinmurray/Asterius/maze"
	"github.com/corbinmurray/Asterius/service"
	"github.com/corbinmurray/Asterius/service/i"
	"github.com/corbinmurray/Asterius/solver"
	"github.com/gin-gonic/gin"
)

// PuzzleController serves puzzle generation and solving.
type PuzzleController struct {
	puzzles i.PuzzleService
}

// NewPuzzleController initializes a PuzzleController.
func NewPuzzleController(ps i.PuzzleService) (*PuzzleController, error) {
	if ps == nil {
		return nil, errors.New("puzzle service is required")
	}
	return &PuzzleController{puzzles: ps}, nil
}

// Register registers the maze routes.
func (pc *PuzzleController) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", pc.create)
		mazes.POST("/batch", pc.batch)
		mazes.POST("/solve", pc.solve)
		mazes.GET("/render", pc.render)
	}
}

// create handles single puzzle generation.
func (pc *PuzzleController) create(ctx *gin.Context) {
	var request PuzzleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	puzzle, err := pc.puzzles.New(ctx.Request.Context(), request.toDomain())
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, puzzle)
}

// batch handles concurrent generation of several puzzles.
func (pc *PuzzleController) batch(ctx *gin.Context) {
	var request BatchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reqs := make([]dmn.PuzzleRequest, 0, len(request.Requests))
	for _, r := range request.Requests {
		reqs = append(reqs, r.toDomain())
	}

	puzzles, err := pc.puzzles.Batch(ctx.Request.Context(), reqs)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, &BatchResponse{Puzzles: puzzles})
}

// solve handles solving a maze supplied by the client.
func (pc *PuzzleController) solve(ctx *gin.Context) {
	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	puzzle, err := pc.puzzles.Solve(ctx.Request.Context(), request.toDomain())
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, puzzle)
}

// render generates a puzzle and returns it drawn as ASCII.
func (pc *PuzzleController) render(ctx *gin.Context) {
	var request PuzzleRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	puzzle, err := pc.puzzles.New(ctx.Request.Context(), request.toDomain())
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	out, err := puzzle.Render()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(out))
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, maze.ErrInvalidDimension),
		errors.Is(err, maze.ErrUnknownCell),
		errors.Is(err, service.ErrInvalidBatch):
		return http.StatusBadRequest
	case errors.Is(err, solver.ErrUnreachable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
