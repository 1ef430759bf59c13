package http

import (
	"context"

	"roommatch_backend/internal/events"
	"roommatch_backend/platform/config"
	"roommatch_backend/platform/logger"
)

// RouterConfig is the slice of configuration the router actually reads.
type RouterConfig interface {
	config.HTTPConfig
	config.JWTConfig
}

// HealthChecker reports backing-store health for the readiness endpoint.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// App is the assembled application handed from main to the router. main is
// the composition root; nothing here constructs its own dependencies.
type App struct {
	Config   RouterConfig
	Logger   *logger.Logger
	Health   HealthChecker
	EventBus events.Bus
	// Modules are mounted in order at startup.
	Modules []Module
}
