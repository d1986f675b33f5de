package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	dmn "github.com/corbinmurray/Asterius/domain"
	"github.com/corbinmurray/Asterius/graph"
	"github.com/corbinmurray/Asterius/maze"
	"github.com/corbinmurray/Asterius/service/i"
	"github.com/corbinmurray/Asterius/solver"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	defaultMaxDimension = 50
	maxBatchSize        = 16

	cacheKeyPrefix = "asterius:puzzle"
)

var (
	// ErrDimensionTooLarge is returned when a side exceeds the configured limit.
	ErrDimensionTooLarge = fmt.Errorf("%w: exceeds the size limit", maze.ErrInvalidDimension)

	// ErrInvalidBatch is returned for an empty or oversized batch.
	ErrInvalidBatch = errors.New("invalid batch")
)

// Puzzles runs the generate, pick, build and solve pipeline.
// It is safe for concurrent use; every request gets its own random source.
type Puzzles struct {
	logger       i.Logger
	cache        i.PuzzleCache
	maxDimension int
	minDistance  int
	seeder       func() int64
	batchLimit   int
}

// Config configures a Puzzles service.
type Config struct {
	Logger       i.Logger      // Required
	Cache        i.PuzzleCache // Optional; nil disables caching
	MaxDimension int           // Largest side accepted; defaults to 50
	MinDistance  int           // Default start/goal separation
	Seeder       func() int64  // Seed source for requests without one; defaults to the clock
	BatchLimit   int           // Concurrent batch workers; defaults to the CPU count
}

var _ i.PuzzleService = &Puzzles{}

// NewPuzzles creates a Puzzles service.
func NewPuzzles(c *Config) (*Puzzles, error) {
	if c == nil || c.Logger == nil {
		return nil, errors.New("puzzle service requires a logger")
	}

	p := &Puzzles{
		logger:       c.Logger,
		cache:        c.Cache,
		maxDimension: c.MaxDimension,
		minDistance:  c.MinDistance,
		seeder:       c.Seeder,
		batchLimit:   c.BatchLimit,
	}
	if p.maxDimension <= 0 {
		p.maxDimension = defaultMaxDimension
	}
	if p.seeder == nil {
		p.seeder = func() int64 { return time.Now().UnixNano() }
	}
	if p.batchLimit <= 0 {
		p.batchLimit = runtime.NumCPU()
	}
	return p, nil
}

// New implements i.PuzzleService.
func (p *Puzzles) New(ctx context.Context, req dmn.PuzzleRequest) (*dmn.Puzzle, error) {
	if err := p.checkDimensions(req.Rows, req.Cols); err != nil {
		return nil, err
	}

	minDistance := p.minDistance
	if req.MinDistance != nil {
		minDistance = *req.MinDistance
	}

	// Only explicitly seeded requests are reproducible, so only they are cached.
	if req.Seed == nil || p.cache == nil {
		seed := p.seeder()
		if req.Seed != nil {
			seed = *req.Seed
		}
		return p.generate(ctx, req.Rows, req.Cols, seed, minDistance)
	}

	key := cacheKey(req.Rows, req.Cols, *req.Seed, minDistance)
	if puzzle, ok := p.cached(ctx, key); ok {
		return puzzle, nil
	}

	unlock, err := p.cache.Lock(ctx, key)
	if err != nil {
		p.logger.Warn(fmt.Sprintf("locking %s: %v", key, err))
	} else {
		defer func() {
			if err := unlock(); err != nil {
				p.logger.Warn(fmt.Sprintf("unlocking %s: %v", key, err))
			}
		}()
		// Another worker may have filled the entry while we waited.
		if puzzle, ok := p.cached(ctx, key); ok {
			return puzzle, nil
		}
	}

	puzzle, err := p.generate(ctx, req.Rows, req.Cols, *req.Seed, minDistance)
	if err != nil {
		return nil, err
	}
	if err := p.cache.Set(ctx, key, puzzle); err != nil {
		p.logger.Warn(fmt.Sprintf("caching %s: %v", key, err))
	}
	return puzzle, nil
}

// Batch implements i.PuzzleService.
func (p *Puzzles) Batch(ctx context.Context, reqs []dmn.PuzzleRequest) ([]*dmn.Puzzle, error) {
	if len(reqs) == 0 || len(reqs) > maxBatchSize {
		return nil, fmt.Errorf("%w: %d requests, want 1 to %d", ErrInvalidBatch, len(reqs), maxBatchSize)
	}

	results := make([]*dmn.Puzzle, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.batchLimit)
	for idx, req := range reqs {
		idx, req := idx, req
		g.Go(func() error {
			puzzle, err := p.New(gctx, req)
			if err != nil {
				return fmt.Errorf("request %d: %w", idx, err)
			}
			results[idx] = puzzle
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	p.logger.Info(fmt.Sprintf("generated batch of %d puzzles", len(results)))
	return results, nil
}

// Solve implements i.PuzzleService.
func (p *Puzzles) Solve(ctx context.Context, req dmn.SolveRequest) (*dmn.Puzzle, error) {
	if err := p.checkDimensions(req.Rows, req.Cols); err != nil {
		return nil, err
	}

	m, err := maze.Carve(req.Rows, req.Cols, dmn.Passages(req.Cells))
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g := graph.Build(m)
	res, err := solver.Solve(g, req.Start, req.Goal)
	if errors.Is(err, solver.ErrUnreachable) {
		p.logger.Warn(fmt.Sprintf("supplied %dx%d maze: goal %v unreachable, %d of %d cells connected to start %v",
			req.Rows, req.Cols, req.Goal, len(g.Distances(req.Start)), g.Len(), req.Start))
	}
	if err != nil {
		return nil, err
	}

	puzzle := dmn.NewPuzzle(uuid.New(), 0, m, req.Start, req.Goal, res)
	p.logger.Info(fmt.Sprintf("solved supplied %dx%d maze %s (%d passages): path %d, expanded %d",
		req.Rows, req.Cols, puzzle.ID, g.Edges(), len(res.SolutionPath), len(res.VisitedNodes)))
	return puzzle, nil
}

// generate runs the full pipeline for one seed.
func (p *Puzzles) generate(ctx context.Context, rows, cols int, seed int64, minDistance int) (*dmn.Puzzle, error) {
	rng := rand.New(rand.NewSource(seed))

	m, err := maze.Generate(rows, cols, rng)
	if err != nil {
		return nil, err
	}

	start, goal := maze.Cell{}, maze.Cell{}
	if m.Len() > 1 {
		start, goal, err = maze.PickEndpoints(m, rng, minDistance)
		if err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g := graph.Build(m)
	res, err := solver.Solve(g, start, goal)
	if err != nil {
		p.logger.Error(fmt.Sprintf("solving %dx%d maze with seed %d: %v", rows, cols, seed, err))
		return nil, err
	}

	puzzle := dmn.NewPuzzle(uuid.New(), seed, m, start, goal, res)
	p.logger.Info(fmt.Sprintf("generated %dx%d puzzle %s (seed %d, %d passages): path %d, expanded %d",
		rows, cols, puzzle.ID, seed, g.Edges(), len(res.SolutionPath), len(res.VisitedNodes)))
	return puzzle, nil
}

// cached looks key up, treating cache failures as misses.
func (p *Puzzles) cached(ctx context.Context, key string) (*dmn.Puzzle, bool) {
	puzzle, ok, err := p.cache.Get(ctx, key)
	if err != nil {
		p.logger.Warn(fmt.Sprintf("reading %s: %v", key, err))
		return nil, false
	}
	return puzzle, ok
}

func (p *Puzzles) checkDimensions(rows, cols int) error {
	if min(rows, cols) <= 0 {
		return fmt.Errorf("%w: %dx%d", maze.ErrInvalidDimension, rows, cols)
	}
	if max(rows, cols) > p.maxDimension {
		return fmt.Errorf("%w: %dx%d, limit %d", ErrDimensionTooLarge, rows, cols, p.maxDimension)
	}
	return nil
}

func cacheKey(rows, cols int, seed int64, minDistance int) string {
	return fmt.Sprintf("%s:%dx%d:%d:%d", cacheKeyPrefix, rows, cols, seed, minDistance)
}
