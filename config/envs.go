package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP              string // Host IP for the server
	RESTPort            int    // Port for the REST API
	GinMode             string // Mode for the Gin framework (e.g., release, debug, test)
	MaxMazeDimension    int    // Largest accepted row or column count
	MinEndpointDistance int    // Default minimum Manhattan distance between start and goal
	RedisAddr           string // Address of the Redis cache; empty disables caching
	RedisPassword       string // Password for the Redis cache
	CacheTTLSeconds     int    // Lifetime of a cached puzzle
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:              getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:            getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:             getEnvWithDefault("GIN_MODE", "release"),
		MaxMazeDimension:    getEnvAsIntWithDefault("MAX_MAZE_DIMENSION", 50),
		MinEndpointDistance: getEnvAsIntWithDefault("MIN_ENDPOINT_DISTANCE", 0),
		RedisAddr:           getEnvWithDefault("REDIS_ADDR", ""),
		RedisPassword:       getEnvWithDefault("REDIS_PASSWORD", ""),
		CacheTTLSeconds:     getEnvAsIntWithDefault("CACHE_TTL_SECONDS", 300),
	}
}

// getEnvAsIntWithDefault retrieves an environment variable as an integer, or returns defaultValue if it is not set.
// A value that cannot be parsed is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
