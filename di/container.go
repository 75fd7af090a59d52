package di

import (
	"context"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"buzz-server/busyness"
	"buzz-server/cache"
	"buzz-server/config"
	"buzz-server/dao/redis"
	"buzz-server/db"
	"buzz-server/server"
	"buzz-server/server/handlers"
	services "buzz-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient           db.RedisClient
	RedisVenueDao         *redis.RedisVenueDAO
	RedisSnapshotDao      *redis.RedisSnapshotDAO
	Generator             *busyness.Generator
	LiveCache             *cache.TTLCache
	BusynessService       *services.BusynessService
	CurveRefresherService *services.CurveRefresherService
	VenueHandler          *handlers.VenueHandler
	BusynessHandler       *handlers.BusynessHandler
	MuxRouter             *mux.Router
	Router                *server.Router
	BuzzHttpServer        *server.BuzzHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// Initialize Redis Client internals
	var redisClient db.RedisClient
	if env == "test" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using mock redis client")
	} else {
		internalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.RedisAddress(),
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		redisClient = db.NewGeoRedisClient(ctx, internalClient)
	}
	if err := redisClient.Ping(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize DAOs
	redisVenueDao := redis.NewRedisVenueDAO(redisClient)
	redisSnapshotDao := redis.NewRedisSnapshotDAO(redisClient)

	// Initialize synthetic generator and live-estimate cache
	generator := busyness.NewGenerator(time.Now().UnixNano(), config.SYNTHETIC_JITTER_RANGE)
	liveCache := cache.NewTTLCache(config.LiveCacheTTL())

	// Initialize service layer
	busynessService := services.NewBusynessService(redisVenueDao, redisSnapshotDao, generator, liveCache)
	curveRefresherService := services.NewCurveRefresherService(redisVenueDao, redisSnapshotDao, busynessService)

	// Initialize handlers
	venueHandler := handlers.NewVenueHandler(busynessService)
	busynessHandler := handlers.NewBusynessHandler(busynessService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(venueHandler, busynessHandler, muxRouter)

	// Initialize the http server
	buzzHttpServer := server.NewBuzzHttpServer(config.ServerAddress(), router, muxRouter)

	return &Container{
		RedisClient:           redisClient,
		RedisVenueDao:         redisVenueDao,
		RedisSnapshotDao:      redisSnapshotDao,
		Generator:             generator,
		LiveCache:             liveCache,
		BusynessService:       busynessService,
		CurveRefresherService: curveRefresherService,
		VenueHandler:          venueHandler,
		BusynessHandler:       busynessHandler,
		MuxRouter:             muxRouter,
		Router:                router,
		BuzzHttpServer:        buzzHttpServer,
	}
}
