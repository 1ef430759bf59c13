package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roommatch_backend/internal/events"
	"roommatch_backend/internal/geo"
	apphttp "roommatch_backend/internal/http"
	"roommatch_backend/internal/http/router"
	"roommatch_backend/internal/listings"
	"roommatch_backend/internal/matching"
	"roommatch_backend/internal/questionnaire"
	"roommatch_backend/internal/scheduler"
	"roommatch_backend/platform/config"
	"roommatch_backend/platform/db"
	"roommatch_backend/platform/logger"
	"roommatch_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	// Shared validator instance for dependency injection
	val := validator.New()

	// Geo stack: straight-line estimator, optional redis cache, and the
	// road-distance resolver that degrades to the estimator.
	estimator := geo.NewEstimator(cfg, log)
	distanceCache, closeRedis := initDistanceCache(cfg, log)
	if closeRedis != nil {
		defer closeRedis()
	}
	resolver := geo.NewResolver(cfg, estimator, distanceCache, log)
	if cfg.IsRoutingEnabled() {
		log.Info("routing service enabled", "baseUrl", cfg.RoutingBaseURL)
	} else {
		log.Warn("routing service not configured; distances use straight-line estimates")
	}

	// Background distance warm-up over asynq, when redis is available.
	closeScheduler := initWarmScheduler(cfg, eventBus, log)
	if closeScheduler != nil {
		defer closeScheduler()
	}

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	listingsModule := listings.NewModule(pool, eventBus, val, log)
	questionnaireModule := questionnaire.NewModule(pool, eventBus, val, log)
	matchingModule := matching.NewModule(
		listingsModule.Repository(),
		questionnaireModule.Repository(),
		resolver,
		cfg,
		log,
	)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   db.NewPoolAdapter(pool),
		EventBus: eventBus,
		Modules: []apphttp.Module{
			listingsModule,
			questionnaireModule,
			matchingModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func initDistanceCache(cfg *config.Config, log *logger.Logger) (*geo.DistanceCache, func()) {
	if !cfg.IsRedisEnabled() {
		log.Warn("REDIS_URL not configured; distance cache disabled")
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Error("invalid REDIS_URL; distance cache disabled", "error", err)
		return nil, nil
	}

	rdb := redis.NewClient(opt)
	cache := geo.NewDistanceCache(rdb, cfg.DistanceCacheTTL, log)

	return cache, func() {
		_ = rdb.Close()
	}
}

func initWarmScheduler(cfg config.SchedulerConfig, bus events.Bus, log *logger.Logger) func() {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; distance warm-up disabled")
		return nil
	}

	client, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize distance warm scheduler", "error", err)
		return nil
	}

	client.RegisterHandlers(bus, log)

	return func() {
		_ = client.Close()
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return fmt.Errorf("%s: %w", name, lastErr)
}
