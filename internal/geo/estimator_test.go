package geo

import (
	"math"
	"testing"

	"roommatch_backend/platform/logger"
)

type stubRoutingConfig struct {
	apiKey    string
	baseURL   string
	rateLimit float64
	campusLat float64
	campusLng float64
	enabled   bool
}

func (c stubRoutingConfig) GetRoutingAPIKey() string     { return c.apiKey }
func (c stubRoutingConfig) GetRoutingBaseURL() string    { return c.baseURL }
func (c stubRoutingConfig) GetRoutingRateLimit() float64 { return c.rateLimit }
func (c stubRoutingConfig) GetCampusLat() float64        { return c.campusLat }
func (c stubRoutingConfig) GetCampusLng() float64        { return c.campusLng }
func (c stubRoutingConfig) IsRoutingEnabled() bool       { return c.enabled }

func testEstimator() *Estimator {
	cfg := stubRoutingConfig{campusLat: 33.7756, campusLng: -84.3963}
	return NewEstimator(cfg, logger.New("development"))
}

func TestEstimateOneDegreeOfLatitude(t *testing.T) {
	e := testEstimator()

	// One degree of latitude is about 69.1 miles great-circle, 89.8 with
	// the road correction.
	got := e.Estimate(40, -80, 41, -80)
	if got != 89.8 {
		t.Errorf("Estimate(40,-80 -> 41,-80) = %.1f, want 89.8", got)
	}
}

func TestEstimateIsSymmetric(t *testing.T) {
	e := testEstimator()

	forward := e.Estimate(33.7756, -84.3963, 33.9526, -84.5499)
	backward := e.Estimate(33.9526, -84.5499, 33.7756, -84.3963)

	if forward != backward {
		t.Errorf("estimate not symmetric: %.1f vs %.1f", forward, backward)
	}
}

func TestEstimateSamePointIsZero(t *testing.T) {
	e := testEstimator()

	if got := e.Estimate(33.7756, -84.3963, 33.7756, -84.3963); got != 0 {
		t.Errorf("same point estimate = %.1f, want 0", got)
	}
}

func TestEstimateInvalidCoordinates(t *testing.T) {
	e := testEstimator()

	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
	}{
		{"zero origin", 0, 0, 33.7756, -84.3963},
		{"zero target", 33.7756, -84.3963, 0, 0},
		{"nan latitude", math.NaN(), -84.3963, 33.7756, -84.3963},
		{"latitude out of range", 91, -84.3963, 33.7756, -84.3963},
		{"longitude out of range", 33.7756, -181, 33.7756, -84.3963},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Estimate(tt.lat1, tt.lng1, tt.lat2, tt.lng2); got != 0 {
				t.Errorf("invalid coordinates estimated %.1f, want 0", got)
			}
		})
	}
}

func TestDistanceFromCampus(t *testing.T) {
	e := testEstimator()

	if got := e.DistanceFromCampus(0, 0); got != nil {
		t.Errorf("invalid coordinates returned %v, want nil", *got)
	}

	got := e.DistanceFromCampus(33.9526, -84.5499)
	if got == nil {
		t.Fatal("valid coordinates returned nil")
	}
	if *got <= 0 {
		t.Errorf("distance from campus = %.1f, want positive", *got)
	}
}

func TestValidCoords(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
		want     bool
	}{
		{"atlanta", 33.7756, -84.3963, true},
		{"null island", 0, 0, false},
		{"equator nonzero longitude", 0, -84.3963, true},
		{"north pole", 90, 0, true},
		{"past the pole", 90.1, 0, false},
		{"nan", math.NaN(), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidCoords(tt.lat, tt.lng); got != tt.want {
				t.Errorf("ValidCoords(%v, %v) = %v, want %v", tt.lat, tt.lng, got, tt.want)
			}
		})
	}
}
