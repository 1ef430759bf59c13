// The worker binary runs the asynq consumer that pre-resolves campus
// distances for listings. It shares the geo stack with the API server but
// serves no HTTP traffic.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"roommatch_backend/internal/geo"
	"roommatch_backend/internal/scheduler"
	"roommatch_backend/platform/config"
	"roommatch_backend/platform/db"
	"roommatch_backend/platform/logger"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting distance warm worker", "env", cfg.Env)

	if !cfg.IsRedisEnabled() {
		panic("REDIS_URL is required for the worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		panic("invalid REDIS_URL: " + err.Error())
	}
	rdb := redis.NewClient(opt)
	defer func() {
		_ = rdb.Close()
	}()

	estimator := geo.NewEstimator(cfg, log)
	cache := geo.NewDistanceCache(rdb, cfg.DistanceCacheTTL, log)
	resolver := geo.NewResolver(cfg, estimator, cache, log)

	worker, err := scheduler.NewWorker(cfg, pool, resolver, log)
	if err != nil {
		log.Error("failed to initialize worker", "error", err)
		panic("failed to initialize worker: " + err.Error())
	}

	log.Info("worker running")
	worker.Run(ctx)
	log.Info("worker stopped")
}
