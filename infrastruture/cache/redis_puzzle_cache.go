package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/corbinmurray/Asterius/domain"
	"github.com/corbinmurray/Asterius/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const lockExpiry = 5 * time.Second

// RedisPuzzleCache keeps generated puzzles in Redis for a fixed TTL.
type RedisPuzzleCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

var _ i.PuzzleCache = &RedisPuzzleCache{}

// NewRedisPuzzleCache initializes a RedisPuzzleCache with the provided Redis client and TTL.
func NewRedisPuzzleCache(client *redis.Client, ttlSeconds int) (*RedisPuzzleCache, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if ttlSeconds <= 0 {
		return nil, fmt.Errorf("cache ttl must be positive, got %d", ttlSeconds)
	}

	cache := &RedisPuzzleCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// Get returns the puzzle stored under key.
func (c *RedisPuzzleCache) Get(ctx context.Context, key string) (*dmn.Puzzle, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var puzzle dmn.Puzzle
	if err := json.Unmarshal(data, &puzzle); err != nil {
		return nil, false, fmt.Errorf("decoding cached puzzle %s: %w", key, err)
	}
	return &puzzle, true, nil
}

// Set stores the puzzle under key with the cache TTL.
func (c *RedisPuzzleCache) Set(ctx context.Context, key string, p *dmn.Puzzle) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// Lock acquires a distributed lock on key so only one worker generates it.
// The returned function fails if the lock expired before it was released.
func (c *RedisPuzzleCache) Lock(ctx context.Context, key string) (func() error, error) {
	mutex := c.locker.NewMutex(key+":lock", redsync.WithExpiry(lockExpiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	return func() error {
		ok, err := mutex.Unlock()
		if ok {
			return nil
		}
		if err == nil {
			err = redsync.ErrLockAlreadyExpired
		}
		return fmt.Errorf("releasing lock on %s: %w", key, err)
	}, nil
}
