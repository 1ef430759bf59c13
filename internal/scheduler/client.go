// Package scheduler runs background work over asynq: pre-resolving campus
// distances for listings so the first match-list request does not pay the
// routing-service latency.
package scheduler

import (
	"context"
	"fmt"

	"roommatch_backend/internal/events"
	"roommatch_backend/platform/config"
	"roommatch_backend/platform/logger"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

type Client struct {
	client *asynq.Client
	queue  string
}

func NewClient(cfg config.SchedulerConfig) (*Client, error) {
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

	return &Client{
		client: asynq.NewClient(opt),
		queue:  queue,
	}, nil
}

func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// EnqueueDistanceWarm queues a distance warm-up for one listing.
func (c *Client) EnqueueDistanceWarm(ctx context.Context, listingID string) error {
	if c == nil || c.client == nil {
		return nil
	}

	task, err := NewDistanceWarmTask(DistanceWarmPayload{ListingID: listingID})
	if err != nil {
		return err
	}

	_, err = c.client.EnqueueContext(ctx, task, asynq.Queue(c.queue))
	return err
}

// RegisterHandlers subscribes to listing events so every created or updated
// listing with coordinates gets its distance pre-resolved.
func (c *Client) RegisterHandlers(bus events.Bus, log *logger.Logger) {
	bus.Subscribe(events.ListingCreated{}.EventName(), events.HandlerFunc(func(ctx context.Context, event events.Event) error {
		e, ok := event.(events.ListingCreated)
		if !ok || !e.HasCoords {
			return nil
		}
		if err := c.EnqueueDistanceWarm(ctx, e.ListingID.String()); err != nil {
			log.Error("enqueue distance warm failed", "error", err, "listingId", e.ListingID)
		}
		return nil
	}))

	bus.Subscribe(events.ListingUpdated{}.EventName(), events.HandlerFunc(func(ctx context.Context, event events.Event) error {
		e, ok := event.(events.ListingUpdated)
		if !ok || !e.HasCoords {
			return nil
		}
		if err := c.EnqueueDistanceWarm(ctx, e.ListingID.String()); err != nil {
			log.Error("enqueue distance warm failed", "error", err, "listingId", e.ListingID)
		}
		return nil
	}))
}

func redisClientOpt(redisURL string) (asynq.RedisClientOpt, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return asynq.RedisClientOpt{}, err
	}

	return asynq.RedisClientOpt{
		Addr:      opt.Addr,
		Username:  opt.Username,
		Password:  opt.Password,
		DB:        opt.DB,
		TLSConfig: opt.TLSConfig,
	}, nil
}
