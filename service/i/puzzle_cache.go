package i

import (
	"context"

	dmn "github.com/corbinmurray/Asterius/domain"
)

// PuzzleCache stores generated puzzles for a limited time.
type PuzzleCache interface {
	// Get returns the puzzle stored under key. The boolean is false on a miss.
	Get(ctx context.Context, key string) (*dmn.Puzzle, bool, error)

	// Set stores the puzzle under key.
	Set(ctx context.Context, key string, p *dmn.Puzzle) error

	// Lock takes an exclusive lock on key and returns the function releasing it.
	// The release function reports a lock that expired before it was released.
	Lock(ctx context.Context, key string) (func() error, error)
}
