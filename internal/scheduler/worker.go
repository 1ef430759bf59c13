package scheduler

import (
	"context"
	"fmt"

	"roommatch_backend/internal/geo"
	"roommatch_backend/internal/listings/repository"
	"roommatch_backend/platform/config"
	"roommatch_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Worker struct {
	server   *asynq.Server
	mux      *asynq.ServeMux
	repo     *repository.Repository
	resolver *geo.Resolver
	log      *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, pool *pgxpool.Pool, resolver *geo.Resolver, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL)
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server:   server,
		mux:      mux,
		repo:     repository.New(pool),
		resolver: resolver,
		log:      log,
	}

	mux.HandleFunc(TaskDistanceWarm, w.handleDistanceWarm)

	return w, nil
}

// handleDistanceWarm resolves a listing's campus distance so the result sits
// in the cache before any user requests a match list. A listing that has
// disappeared or lost its coordinates is not an error.
func (w *Worker) handleDistanceWarm(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseDistanceWarmPayload(task)
	if err != nil {
		return err
	}

	listingID, err := uuid.Parse(payload.ListingID)
	if err != nil {
		return err
	}

	listing, err := w.repo.GetByID(ctx, listingID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil
		}
		return err
	}

	if listing.Latitude == nil || listing.Longitude == nil {
		return nil
	}

	dist, ok := w.resolver.Resolve(ctx, *listing.Latitude, *listing.Longitude)
	if !ok {
		return nil
	}

	w.log.Info("distance warmed", "listingId", listingID, "miles", dist.Miles, "estimate", dist.Estimate)
	return nil
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}
