package db

import "context"

// RedisClientInterface defines the methods available in the RedisClient
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error
	GetLocationsWithinRadius(key string, lat, lon, radius float64) ([]string, error)

	// Time-series operations back the append-only occupancy snapshot log:
	// members are JSON blobs scored by unix timestamp.
	AddTimeSeriesEntry(ctx context.Context, key string, score float64, data interface{}) error
	GetTimeSeriesRange(key string, min, max float64) ([]string, error)

	GetContext() context.Context
	Ping() error
	Keys(pattern string) ([]string, error)
	Del(key string) error
}
