package mazeapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/corbinmurray/Asterius/api"
	apii "github.com/corbinmurray/Asterius/api/i"
	dmn "github.com/corbinmurray/Asterius/domain"
	"github.com/corbinmurray/Asterius/logger"
	"github.com/corbinmurray/Asterius/maze"
	"github.com/corbinmurray/Asterius/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l, err := logger.New("TEST", "", io.Discard)
	require.NoError(t, err)
	svc, err := service.NewPuzzles(&service.Config{Logger: l, MaxDimension: 30})
	require.NoError(t, err)
	controller, err := NewPuzzleController(svc)
	require.NoError(t, err)

	router := api.NewRouter(api.Config{
		BaseURL:     "/api",
		Controllers: []apii.Controller{controller},
	})
	return router.Engine()
}

func do(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestNewPuzzleControllerRequiresService(t *testing.T) {
	_, err := NewPuzzleController(nil)
	assert.Error(t, err)
}

func TestCreate(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("generates a puzzle", func(t *testing.T) {
		rec := do(t, engine, http.MethodPost, "/api/v1/mazes", `{"rows": 5, "cols": 6, "seed": 3}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var puzzle dmn.Puzzle
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &puzzle))
		assert.Equal(t, int64(3), puzzle.Seed)
		assert.Equal(t, 5, puzzle.Rows)
		assert.Equal(t, 6, puzzle.Cols)
		assert.Len(t, puzzle.Cells, 30)
		assert.Equal(t, puzzle.Start, puzzle.SolutionPath[0])
		assert.Equal(t, puzzle.Goal, puzzle.SolutionPath[len(puzzle.SolutionPath)-1])

		m, err := puzzle.Maze()
		require.NoError(t, err)
		assert.Equal(t, 29, m.Passages())
	})

	t.Run("same seed, same maze", func(t *testing.T) {
		a := do(t, engine, http.MethodPost, "/api/v1/mazes", `{"rows": 7, "cols": 7, "seed": 11}`)
		b := do(t, engine, http.MethodPost, "/api/v1/mazes", `{"rows": 7, "cols": 7, "seed": 11}`)
		var pa, pb dmn.Puzzle
		require.NoError(t, json.Unmarshal(a.Body.Bytes(), &pa))
		require.NoError(t, json.Unmarshal(b.Body.Bytes(), &pb))
		assert.Equal(t, pa.Cells, pb.Cells)
		assert.Equal(t, pa.VisitedNodes, pb.VisitedNodes)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		for _, body := range []string{`{`, `{"rows": 0, "cols": 4}`, `{"rows": 4}`, `{"rows": 31, "cols": 4}`, `{"rows": 3, "cols": 3, "min_distance": -1}`} {
			rec := do(t, engine, http.MethodPost, "/api/v1/mazes", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, body)
			assert.Contains(t, rec.Body.String(), `"error"`)
		}
	})
}

func TestBatch(t *testing.T) {
	engine := newTestEngine(t)

	rec := do(t, engine, http.MethodPost, "/api/v1/mazes/batch",
		`{"requests": [{"rows": 3, "cols": 3, "seed": 1}, {"rows": 4, "cols": 5, "seed": 2}, {"rows": 1, "cols": 1}]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var response BatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.Puzzles, 3)
	assert.Equal(t, 3, response.Puzzles[0].Rows)
	assert.Equal(t, 5, response.Puzzles[1].Cols)
	assert.Equal(t, []maze.Cell{{}}, response.Puzzles[2].SolutionPath)

	rec = do(t, engine, http.MethodPost, "/api/v1/mazes/batch", `{"requests": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSolve(t *testing.T) {
	engine := newTestEngine(t)
	corridor := `[{"x": 0, "y": 0, "open": ["East"]}, {"x": 1, "y": 0, "open": ["East"]}]`

	t.Run("solves", func(t *testing.T) {
		body := `{"rows": 1, "cols": 3, "cells": ` + corridor + `, "start": {"x": 0, "y": 0}, "goal": {"x": 2, "y": 0}}`
		rec := do(t, engine, http.MethodPost, "/api/v1/mazes/solve", body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var puzzle dmn.Puzzle
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &puzzle))
		assert.Equal(t, []maze.Cell{{X: 0}, {X: 1}, {X: 2}}, puzzle.SolutionPath)
		assert.Len(t, puzzle.VisitedNodes, 3)
		assert.Equal(t, 2, puzzle.VisitedNodes[2].Intensity)
	})

	t.Run("unreachable", func(t *testing.T) {
		body := `{"rows": 2, "cols": 3, "cells": ` + corridor + `, "start": {"x": 0, "y": 0}, "goal": {"x": 2, "y": 1}}`
		rec := do(t, engine, http.MethodPost, "/api/v1/mazes/solve", body)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("unknown cell", func(t *testing.T) {
		body := `{"rows": 1, "cols": 3, "cells": ` + corridor + `, "start": {"x": 0, "y": 0}, "goal": {"x": 9, "y": 0}}`
		rec := do(t, engine, http.MethodPost, "/api/v1/mazes/solve", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing endpoints", func(t *testing.T) {
		body := `{"rows": 1, "cols": 3, "cells": ` + corridor + `}`
		rec := do(t, engine, http.MethodPost, "/api/v1/mazes/solve", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown direction", func(t *testing.T) {
		body := `{"rows": 1, "cols": 2, "cells": [{"x": 0, "y": 0, "open": ["Up"]}], "start": {"x": 0, "y": 0}, "goal": {"x": 1, "y": 0}}`
		rec := do(t, engine, http.MethodPost, "/api/v1/mazes/solve", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRender(t *testing.T) {
	engine := newTestEngine(t)

	rec := do(t, engine, http.MethodGet, "/api/v1/mazes/render?rows=4&cols=4&seed=8", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	out := rec.Body.String()
	assert.True(t, strings.HasPrefix(out, "+---+---+---+---+\n"))
	assert.Contains(t, out, "S")
	assert.Contains(t, out, "G")
	assert.Equal(t, 9, bytes.Count(rec.Body.Bytes(), []byte("\n")))

	rec = do(t, engine, http.MethodGet, "/api/v1/mazes/render?rows=x", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
