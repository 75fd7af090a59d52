package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// HTTP server config
const SERVER_ADDRESS = ":8080"

// Busyness aggregation config
const AGGREGATION_WINDOW_DAYS_DEFAULT = 7
const AGGREGATION_WINDOW_DAYS_MAX = 90

// Live-estimate cache config
const LIVE_ESTIMATE_CACHE_TTL_MINUTES = 10

// Curve refresher config
const CURVE_REFRESHER_SCHEDULE_MINUTES = 30
const SEED_LOOKBACK_HOURS = 24

// Synthetic generator jitter range (+/- percentage points per hour)
const SYNTHETIC_JITTER_RANGE = 5

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const STATIC_VENUES_RESOURCE = "static_venues.json"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}

// GetEnv returns the value of the environment variable or the fallback.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvInt returns the integer value of the environment variable or the fallback.
func GetEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

// LiveCacheTTL resolves the live-estimate cache TTL with an env override.
func LiveCacheTTL() time.Duration {
	minutes := GetEnvInt("LIVE_CACHE_TTL_MINUTES", LIVE_ESTIMATE_CACHE_TTL_MINUTES)
	return time.Duration(minutes) * time.Minute
}

// RefresherInterval resolves the curve refresher schedule with an env override.
func RefresherInterval() time.Duration {
	minutes := GetEnvInt("REFRESH_INTERVAL_MINUTES", CURVE_REFRESHER_SCHEDULE_MINUTES)
	return time.Duration(minutes) * time.Minute
}

// RedisAddress resolves the Redis address with an env override.
func RedisAddress() string {
	return GetEnv("REDIS_ADDR", REDIS_DB_ADDRESS)
}

// ServerAddress resolves the HTTP listen address with an env override.
func ServerAddress() string {
	return GetEnv("SERVER_ADDR", SERVER_ADDRESS)
}
