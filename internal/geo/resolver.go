package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"roommatch_backend/platform/config"
	"roommatch_backend/platform/logger"

	"golang.org/x/time/rate"
)

// Distance is a resolved travel distance with its provenance: Estimate is
// true when the value came from the straight-line fallback rather than the
// routing service.
type Distance struct {
	Miles    float64 `json:"miles"`
	Estimate bool    `json:"estimate"`
}

// Resolver obtains driving distance between campus and a target coordinate
// from the routing service, degrading to the straight-line estimate on any
// failure. It never returns an error: every failure path produces an
// estimate flagged as such.
type Resolver struct {
	estimator *Estimator
	client    *http.Client
	cache     *DistanceCache
	limiter   *rate.Limiter
	cfg       config.RoutingConfig
	log       *logger.Logger
}

// NewResolver creates a resolver. cache may be nil when redis is not
// configured; the limiter bounds outbound calls to the routing service's
// documented rate limit.
func NewResolver(cfg config.RoutingConfig, estimator *Estimator, cache *DistanceCache, log *logger.Logger) *Resolver {
	perSecond := cfg.GetRoutingRateLimit()
	if perSecond <= 0 {
		perSecond = 1
	}
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}

	return &Resolver{
		estimator: estimator,
		client:    &http.Client{Timeout: 5 * time.Second},
		cache:     cache,
		limiter:   rate.NewLimiter(rate.Limit(perSecond), burst),
		cfg:       cfg,
		log:       log,
	}
}

// Resolve returns the driving distance from campus to the target coordinate.
// The second return value is false only when the coordinates are invalid.
func (r *Resolver) Resolve(ctx context.Context, lat, lng float64) (Distance, bool) {
	if !ValidCoords(lat, lng) {
		return Distance{}, false
	}

	if r.cache != nil {
		if cached, ok := r.cache.Get(ctx, lat, lng); ok {
			return cached, true
		}
	}

	var dist Distance
	if !r.cfg.IsRoutingEnabled() {
		dist = r.estimateDistance(lat, lng)
	} else if miles, err := r.fetchRoadDistance(ctx, lat, lng); err != nil {
		r.log.RoutingFallback(err.Error(), lat, lng)
		dist = r.estimateDistance(lat, lng)
	} else {
		dist = Distance{Miles: miles}
	}

	if r.cache != nil {
		r.cache.Set(ctx, lat, lng, dist)
	}

	return dist, true
}

func (r *Resolver) estimateDistance(lat, lng float64) Distance {
	miles := r.estimator.Estimate(r.cfg.GetCampusLat(), r.cfg.GetCampusLng(), lat, lng)
	return Distance{Miles: miles, Estimate: true}
}

// directionsResponse mirrors the relevant parts of the routing service's
// GeoJSON directions payload.
type directionsResponse struct {
	Features []struct {
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"`
			} `json:"summary"`
		} `json:"properties"`
	} `json:"features"`
}

func (r *Resolver) fetchRoadDistance(ctx context.Context, lat, lng float64) (float64, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	// The directions API takes lng,lat pairs.
	reqURL := fmt.Sprintf("%s/v2/directions/driving-car?api_key=%s&start=%f,%f&end=%f,%f",
		r.cfg.GetRoutingBaseURL(), r.cfg.GetRoutingAPIKey(),
		r.cfg.GetCampusLng(), r.cfg.GetCampusLat(), lng, lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("routing upstream status %d", resp.StatusCode)
	}

	var payload directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, err
	}

	if len(payload.Features) == 0 {
		return 0, fmt.Errorf("no route in response")
	}

	meters := payload.Features[0].Properties.Summary.Distance
	return roundMiles(meters / metersPerMile), nil
}
