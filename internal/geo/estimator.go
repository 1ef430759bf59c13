// Package geo computes travel distances between listings and the campus
// reference point: a haversine estimator with a road-distance correction,
// a road-distance resolver backed by an external routing service, and a
// redis cache in front of both.
package geo

import (
	"math"

	"roommatch_backend/platform/config"
	"roommatch_backend/platform/logger"
)

const (
	// earthRadiusMiles is the Earth radius used by the haversine formula.
	earthRadiusMiles = 3959
	// roadFactor approximates driving distance from the great-circle distance.
	roadFactor = 1.3
	// metersPerMile converts routing-service responses to miles.
	metersPerMile = 1609.34
)

// ValidCoords reports whether a coordinate pair is usable. (0,0) is treated
// as an unset sentinel, not the Gulf of Guinea.
func ValidCoords(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return false
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return false
	}
	if lat == 0 && lng == 0 {
		return false
	}
	return true
}

// Estimator approximates driving distance from straight-line geometry.
type Estimator struct {
	campusLat float64
	campusLng float64
	log       *logger.Logger
}

// NewEstimator creates an estimator anchored at the configured campus.
func NewEstimator(cfg config.RoutingConfig, log *logger.Logger) *Estimator {
	return &Estimator{
		campusLat: cfg.GetCampusLat(),
		campusLng: cfg.GetCampusLng(),
		log:       log,
	}
}

// Estimate returns the approximate driving distance in miles between two
// points: haversine great-circle distance times the road correction factor,
// rounded to one decimal. Invalid coordinates yield 0 with a warning, never
// an error.
func (e *Estimator) Estimate(lat1, lng1, lat2, lng2 float64) float64 {
	if !ValidCoords(lat1, lng1) || !ValidCoords(lat2, lng2) {
		e.log.Warn("distance estimate skipped for invalid coordinates",
			"lat1", lat1, "lng1", lng1, "lat2", lat2, "lng2", lng2)
		return 0
	}

	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return roundMiles(earthRadiusMiles * c * roadFactor)
}

// DistanceFromCampus returns the estimated driving distance from campus, or
// nil when the coordinates are invalid or missing.
func (e *Estimator) DistanceFromCampus(lat, lng float64) *float64 {
	if !ValidCoords(lat, lng) {
		return nil
	}
	miles := e.Estimate(e.campusLat, e.campusLng, lat, lng)
	return &miles
}

func roundMiles(miles float64) float64 {
	return math.Round(miles*10) / 10
}
