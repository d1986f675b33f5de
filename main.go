package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/corbinmurray/Asterius/api"
	api_i "github.com/corbinmurray/Asterius/api/i"
	mazeapi "github.com/corbinmurray/Asterius/api/maze"
	"github.com/corbinmurray/Asterius/config"
	dmn "github.com/corbinmurray/Asterius/domain"
	"github.com/corbinmurray/Asterius/infrastruture/cache"
	"github.com/corbinmurray/Asterius/logger"
	"github.com/corbinmurray/Asterius/service"
	"github.com/corbinmurray/Asterius/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Global variables for dependencies
var (
	redisClient      *redis.Client
	puzzleCache      i.PuzzleCache
	puzzleService    i.PuzzleService
	puzzleController api_i.Controller
	router           *api.Router
	appLogger        *logger.Logger
)

// newLogger creates a named stdout logger or exits.
func newLogger(name, color string) *logger.Logger {
	l, err := logger.New(name, color, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating %s logger: %v\n", name, err)
		os.Exit(1)
	}
	return l
}

func initRedis(ctx context.Context) {
	cacheLogger := newLogger("CACHE", config.ColorMagenta)
	if config.Envs.RedisAddr == "" {
		cacheLogger.Info("REDIS_ADDR not set, puzzle cache disabled")
		return
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		cacheLogger.Warn(fmt.Sprintf("Redis ping failed, puzzle cache disabled: %v", err))
		_ = redisClient.Close()
		redisClient = nil
		return
	}

	c, err := cache.NewRedisPuzzleCache(redisClient, config.Envs.CacheTTLSeconds)
	if err != nil {
		cacheLogger.Error(fmt.Sprintf("Creating puzzle cache: %v", err))
		os.Exit(1)
	}
	puzzleCache = c
	cacheLogger.Info(fmt.Sprintf("Connected to Redis at %s, ttl %ds", config.Envs.RedisAddr, config.Envs.CacheTTLSeconds))
}

func initPuzzleService() {
	var err error
	puzzleService, err = service.NewPuzzles(&service.Config{
		Logger:       newLogger("PUZZLES", config.ColorCyan),
		Cache:        puzzleCache,
		MaxDimension: config.Envs.MaxMazeDimension,
		MinDistance:  config.Envs.MinEndpointDistance,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating puzzle service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Puzzle service initialized")
}

func initPuzzleController() {
	var err error
	puzzleController, err = mazeapi.NewPuzzleController(puzzleService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating puzzle controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Puzzle controller initialized")
}

func initRouter() {
	httpLogger := newLogger("HTTP", config.ColorBlue)
	gin.SetMode(config.Envs.GinMode)
	addr := fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort)
	router = api.NewRouter(api.Config{
		Addr:        addr,
		BaseURL:     "/api",
		Controllers: []api_i.Controller{puzzleController},
	})
	httpLogger.Info(fmt.Sprintf("Router initialized, listening on %s in %s mode", addr, config.Envs.GinMode))
}

// printPuzzle generates one puzzle and writes it to stdout as ASCII.
func printPuzzle(ctx context.Context, rows, cols int, seed int64) error {
	req := dmn.PuzzleRequest{Rows: rows, Cols: cols}
	if seed != 0 {
		req.Seed = &seed
	}

	puzzle, err := puzzleService.New(ctx, req)
	if err != nil {
		return err
	}
	out, err := puzzle.Render()
	if err != nil {
		return err
	}

	fmt.Printf("seed %d, start %v, goal %v, path %d, expanded %d\n",
		puzzle.Seed, puzzle.Start, puzzle.Goal, len(puzzle.SolutionPath), len(puzzle.VisitedNodes))
	fmt.Print(out)
	return nil
}

func main() {
	printOnly := flag.Bool("print", false, "print one solved maze instead of serving HTTP")
	rows := flag.Int("rows", 10, "maze rows for -print")
	cols := flag.Int("cols", 10, "maze columns for -print")
	seed := flag.Int64("seed", 0, "seed for -print (0 draws one)")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	appLogger = newLogger("APP", config.ColorGreen)

	if *printOnly {
		initPuzzleService()
		if err := printPuzzle(ctx, *rows, *cols, *seed); err != nil {
			appLogger.Error(fmt.Sprintf("Printing puzzle: %v", err))
			os.Exit(1)
		}
		return
	}

	initRedis(ctx)
	if redisClient != nil {
		defer redisClient.Close()
	}

	initPuzzleService()
	initPuzzleController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
