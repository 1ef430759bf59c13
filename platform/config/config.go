// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// JWTConfig provides JWT validation settings for middleware.
type JWTConfig interface {
	GetJWTAccessSecret() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// RoutingConfig provides settings for the external driving-directions service.
type RoutingConfig interface {
	GetRoutingAPIKey() string
	GetRoutingBaseURL() string
	GetRoutingRateLimit() float64
	GetCampusLat() float64
	GetCampusLng() float64
	IsRoutingEnabled() bool
}

// MatchingConfig provides tuning parameters for the compatibility engine.
type MatchingConfig interface {
	GetProximityBonusWeight() float64
	GetProximityRadiusMiles() float64
	GetOnCampusRadiusMiles() float64
	GetMaxConcurrentScores() int
}

// RedisConfig provides settings for the redis-backed distance cache.
type RedisConfig interface {
	GetRedisURL() string
	GetDistanceCacheTTL() time.Duration
	IsRedisEnabled() bool
}

// SchedulerConfig provides settings for the asynq background scheduler.
type SchedulerConfig interface {
	GetRedisURL() string
	GetAsynqQueueName() string
	GetAsynqConcurrency() int
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env             string
	HTTPAddr        string
	DatabaseURL     string
	JWTAccessSecret string
	CORSAllowAll    bool
	CORSOrigins     []string
	CORSAllowCreds  bool

	// Routing service (driving distances from campus)
	RoutingAPIKey    string
	RoutingBaseURL   string
	RoutingRateLimit float64
	CampusLat        float64
	CampusLng        float64

	// Matching engine tuning parameters. The proximity bonus constants are
	// empirically chosen, so they are exposed here rather than hard-coded.
	ProximityBonusWeight float64
	ProximityRadiusMiles float64
	OnCampusRadiusMiles  float64
	MaxConcurrentScores  int

	// Redis / background jobs
	RedisURL         string
	DistanceCacheTTL time.Duration
	AsynqQueueName   string
	AsynqConcurrency int
}

// =============================================================================
// Interface Implementations
// =============================================================================

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// JWTConfig implementation
func (c *Config) GetJWTAccessSecret() string { return c.JWTAccessSecret }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// RoutingConfig implementation
func (c *Config) GetRoutingAPIKey() string     { return c.RoutingAPIKey }
func (c *Config) GetRoutingBaseURL() string    { return c.RoutingBaseURL }
func (c *Config) GetRoutingRateLimit() float64 { return c.RoutingRateLimit }
func (c *Config) GetCampusLat() float64        { return c.CampusLat }
func (c *Config) GetCampusLng() float64        { return c.CampusLng }
func (c *Config) IsRoutingEnabled() bool {
	return c.RoutingAPIKey != "" && !isPlaceholderKey(c.RoutingAPIKey)
}

// MatchingConfig implementation
func (c *Config) GetProximityBonusWeight() float64 { return c.ProximityBonusWeight }
func (c *Config) GetProximityRadiusMiles() float64 { return c.ProximityRadiusMiles }
func (c *Config) GetOnCampusRadiusMiles() float64  { return c.OnCampusRadiusMiles }
func (c *Config) GetMaxConcurrentScores() int      { return c.MaxConcurrentScores }

// RedisConfig implementation
func (c *Config) GetRedisURL() string                { return c.RedisURL }
func (c *Config) GetDistanceCacheTTL() time.Duration { return c.DistanceCacheTTL }
func (c *Config) IsRedisEnabled() bool               { return c.RedisURL != "" }

// SchedulerConfig implementation
func (c *Config) GetAsynqQueueName() string { return c.AsynqQueueName }
func (c *Config) GetAsynqConcurrency() int  { return c.AsynqConcurrency }

// placeholderKeys are credential values left behind by templates and sample
// env files. Treat them the same as an absent credential.
var placeholderKeys = []string{
	"your_api_key",
	"your_api_key_here",
	"changeme",
	"placeholder",
}

func isPlaceholderKey(key string) bool {
	lowered := strings.ToLower(strings.TrimSpace(key))
	for _, placeholder := range placeholderKeys {
		if lowered == placeholder {
			return true
		}
	}
	return false
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:             getEnv("APP_ENV", "development"),
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		JWTAccessSecret: getEnv("JWT_ACCESS_SECRET", ""),
		CORSAllowAll:    corsAllowAll,
		CORSOrigins:     corsOrigins,
		CORSAllowCreds:  strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),

		RoutingAPIKey:    getEnv("ROUTING_API_KEY", ""),
		RoutingBaseURL:   getEnv("ROUTING_BASE_URL", "https://api.openrouteservice.org"),
		RoutingRateLimit: mustFloat(getEnv("ROUTING_RATE_LIMIT", "20")),
		CampusLat:        mustFloat(getEnv("CAMPUS_LAT", "33.7756")),
		CampusLng:        mustFloat(getEnv("CAMPUS_LNG", "-84.3963")),

		ProximityBonusWeight: mustFloat(getEnv("PROXIMITY_BONUS_WEIGHT", "0.5")),
		ProximityRadiusMiles: mustFloat(getEnv("PROXIMITY_RADIUS_MILES", "1.0")),
		OnCampusRadiusMiles:  mustFloat(getEnv("ON_CAMPUS_RADIUS_MILES", "0.1")),
		MaxConcurrentScores:  mustInt(getEnv("MAX_CONCURRENT_SCORES", "8")),

		RedisURL:         getEnv("REDIS_URL", ""),
		DistanceCacheTTL: mustDuration(getEnv("DISTANCE_CACHE_TTL", "15m")),
		AsynqQueueName:   getEnv("ASYNQ_QUEUE", "default"),
		AsynqConcurrency: mustInt(getEnv("ASYNQ_CONCURRENCY", "10")),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTAccessSecret == "" {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if cfg.ProximityRadiusMiles <= cfg.OnCampusRadiusMiles {
		return nil, fmt.Errorf("PROXIMITY_RADIUS_MILES must be greater than ON_CAMPUS_RADIUS_MILES")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
