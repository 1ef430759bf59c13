package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"roommatch_backend/platform/logger"
)

func newTestResolver(cfg stubRoutingConfig) *Resolver {
	log := logger.New("development")
	return NewResolver(cfg, NewEstimator(cfg, log), nil, log)
}

func TestResolveFromRoutingService(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_key") != "test-key" {
			t.Errorf("missing api key in request: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		// 3218.68 meters is exactly 2 miles.
		_, _ = w.Write([]byte(`{"features":[{"properties":{"summary":{"distance":3218.68}}}]}`))
	}))
	defer server.Close()

	cfg := stubRoutingConfig{
		apiKey:    "test-key",
		baseURL:   server.URL,
		rateLimit: 100,
		campusLat: 33.7756,
		campusLng: -84.3963,
		enabled:   true,
	}
	resolver := newTestResolver(cfg)

	dist, ok := resolver.Resolve(context.Background(), 33.78, -84.40)
	if !ok {
		t.Fatal("resolve failed for valid coordinates")
	}
	if dist.Miles != 2.0 {
		t.Errorf("resolved %.1f miles, want 2.0", dist.Miles)
	}
	if dist.Estimate {
		t.Error("routing-service distance flagged as estimate")
	}
}

func TestResolveFallsBackOnUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := stubRoutingConfig{
		apiKey:    "test-key",
		baseURL:   server.URL,
		rateLimit: 100,
		campusLat: 33.7756,
		campusLng: -84.3963,
		enabled:   true,
	}
	resolver := newTestResolver(cfg)

	dist, ok := resolver.Resolve(context.Background(), 33.9526, -84.5499)
	if !ok {
		t.Fatal("resolve failed for valid coordinates")
	}
	if !dist.Estimate {
		t.Error("fallback distance not flagged as estimate")
	}

	want := NewEstimator(cfg, logger.New("development")).Estimate(33.7756, -84.3963, 33.9526, -84.5499)
	if dist.Miles != want {
		t.Errorf("fallback distance %.1f, want estimator value %.1f", dist.Miles, want)
	}
}

func TestResolveFallsBackOnEmptyRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"features":[]}`))
	}))
	defer server.Close()

	cfg := stubRoutingConfig{
		apiKey:    "test-key",
		baseURL:   server.URL,
		rateLimit: 100,
		campusLat: 33.7756,
		campusLng: -84.3963,
		enabled:   true,
	}
	resolver := newTestResolver(cfg)

	dist, ok := resolver.Resolve(context.Background(), 33.9526, -84.5499)
	if !ok {
		t.Fatal("resolve failed for valid coordinates")
	}
	if !dist.Estimate {
		t.Error("empty-route fallback not flagged as estimate")
	}
}

func TestResolveWithoutCredentials(t *testing.T) {
	cfg := stubRoutingConfig{
		rateLimit: 100,
		campusLat: 33.7756,
		campusLng: -84.3963,
		enabled:   false,
	}
	resolver := newTestResolver(cfg)

	dist, ok := resolver.Resolve(context.Background(), 33.9526, -84.5499)
	if !ok {
		t.Fatal("resolve failed for valid coordinates")
	}
	if !dist.Estimate {
		t.Error("credential-less resolve not flagged as estimate")
	}
}

func TestResolveInvalidCoordinates(t *testing.T) {
	resolver := newTestResolver(stubRoutingConfig{rateLimit: 100})

	if _, ok := resolver.Resolve(context.Background(), 0, 0); ok {
		t.Error("resolve accepted the (0,0) sentinel")
	}
}
