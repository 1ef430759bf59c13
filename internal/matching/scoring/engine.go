package scoring

import (
	"context"
	"fmt"
	"math"

	"roommatch_backend/internal/geo"
	"roommatch_backend/internal/matching/domain"
	"roommatch_backend/platform/config"
	"roommatch_backend/platform/logger"
)

const (
	// neutralScore is credited for categories where either side lacks data.
	neutralScore = 50
	// distanceWeight applies when the user declared a maximum distance.
	distanceWeight = 3
	// dealBreakerFloor is the category score below which a deal breaker
	// caps the overall result.
	dealBreakerFloor = 30
	// dealBreakerCap is the ceiling imposed by a violated deal breaker.
	dealBreakerCap = 40
	// categoryMatchThreshold and categoryConflictThreshold bound which
	// per-category outcomes earn an explanatory note.
	categoryMatchThreshold    = 70
	categoryConflictThreshold = 40
	// distanceMatchThreshold and distanceConflictThreshold do the same for
	// the distance sub-score.
	distanceMatchThreshold    = 80
	distanceConflictThreshold = 50
)

// DistanceResolver yields the travel distance from campus to a coordinate.
// The boolean is false when the coordinates are unusable.
type DistanceResolver interface {
	Resolve(ctx context.Context, lat, lng float64) (geo.Distance, bool)
}

// Engine scores a single user preference profile against a single listing.
// It is stateless and safe for concurrent use.
type Engine struct {
	resolver DistanceResolver
	cfg      config.MatchingConfig
	log      *logger.Logger
}

// NewEngine creates a scoring engine. resolver may be nil, in which case
// distance never contributes to scores.
func NewEngine(resolver DistanceResolver, cfg config.MatchingConfig, log *logger.Logger) *Engine {
	return &Engine{resolver: resolver, cfg: cfg, log: log}
}

// Score computes the weighted compatibility between prefs and listing,
// returning a 0-100 score with human-readable match and conflict notes.
func (e *Engine) Score(ctx context.Context, prefs domain.UserPreferences, listing domain.ListingAttributes) domain.Result {
	var (
		totalScore  float64
		totalWeight float64
		matches     []string
		conflicts   []string
		comparable  int
		missing     int
		capped      []domain.Category
	)

	for _, cat := range domain.Categories {
		weight := prefs.PriorityFor(cat).Weight()
		score, userHas, listingHas := e.evaluateCategory(cat, prefs, listing)

		if !userHas || !listingHas {
			missing++
			if !userHas {
				conflicts = append(conflicts, fmt.Sprintf("Your %s preference is not set", cat.Label()))
			}
			if !listingHas {
				conflicts = append(conflicts, fmt.Sprintf("Listing %s information is not provided", cat.Label()))
			}
			totalScore += neutralScore * weight
			totalWeight += weight
			continue
		}

		comparable++
		totalScore += score * weight
		totalWeight += weight

		if prefs.PriorityFor(cat) == domain.PriorityDealBreaker && score < dealBreakerFloor {
			capped = append(capped, cat)
		}

		switch {
		case score > categoryMatchThreshold:
			matches = append(matches, fmt.Sprintf("Compatible %s preferences", cat.Label()))
		case score < categoryConflictThreshold:
			conflicts = append(conflicts, fmt.Sprintf("Conflicting %s preferences", cat.Label()))
		}
	}

	distanceScored := e.scoreDistance(ctx, prefs, listing, &totalScore, &totalWeight, &matches, &conflicts)

	if comparable == 0 && !distanceScored {
		// Nothing to compare on either axis. Crediting neutral points here
		// would report a meaningless 50, so report 0 and say why.
		return domain.Result{
			Score:     0,
			Matches:   []string{},
			Conflicts: []string{"Not enough information to calculate compatibility"},
		}
	}

	final := 0.0
	if totalWeight > 0 {
		final = totalScore / totalWeight
	}

	for _, cat := range capped {
		conflicts = append(conflicts, fmt.Sprintf("Deal breaker: incompatible %s preferences", cat.Label()))
		if final > dealBreakerCap {
			final = dealBreakerCap
		}
	}

	if missing > 0 {
		conflicts = append(conflicts, fmt.Sprintf("%d categories could not be compared due to missing information", missing))
	}

	if final < 0 {
		final = 0
	}
	if final > 100 {
		final = 100
	}

	if matches == nil {
		matches = []string{}
	}
	if conflicts == nil {
		conflicts = []string{}
	}

	return domain.Result{
		Score:     int(math.Round(final)),
		Matches:   matches,
		Conflicts: conflicts,
	}
}

// evaluateCategory returns the raw category score and whether each side
// supplied enough data to compare.
func (e *Engine) evaluateCategory(cat domain.Category, prefs domain.UserPreferences, listing domain.ListingAttributes) (score float64, userHas, listingHas bool) {
	switch cat {
	case domain.CategorySleepSchedule:
		return MatchCategory(cat, prefs.SleepSchedule, listing.SleepSchedule),
			prefs.SleepSchedule != "", listing.SleepSchedule != ""
	case domain.CategoryWakeSchedule:
		return MatchCategory(cat, prefs.WakeSchedule, listing.WakeSchedule),
			prefs.WakeSchedule != "", listing.WakeSchedule != ""
	case domain.CategoryCleanliness:
		return MatchCategory(cat, prefs.Cleanliness, listing.Cleanliness),
			prefs.Cleanliness != "", listing.Cleanliness != ""
	case domain.CategoryNoise:
		return MatchCategory(cat, prefs.Noise, listing.Noise),
			prefs.Noise != "", listing.Noise != ""
	case domain.CategoryVisitors:
		return MatchCategory(cat, prefs.Visitors, listing.Visitors),
			prefs.Visitors != "", listing.Visitors != ""
	case domain.CategoryPets:
		return MatchPets(prefs.HasPets, prefs.OkWithPets, listing.PetsAllowed),
			prefs.HasPets != "" || prefs.OkWithPets != "", true
	case domain.CategoryLifestyle:
		return MatchLifestyle(prefs.LifestyleTags, listing.LifestyleTags),
			len(prefs.LifestyleTags) > 0, len(listing.LifestyleTags) > 0
	case domain.CategoryStudy:
		return MatchCategory(cat, prefs.Study, listing.Study),
			prefs.Study != "", listing.Study != ""
	}
	return 0, false, false
}

// scoreDistance folds the distance signal into the running totals. When the
// user declared a maximum acceptable distance it is a full weighted
// sub-score; otherwise listings near campus earn a small proximity bonus.
// Returns whether any distance contribution was made.
func (e *Engine) scoreDistance(ctx context.Context, prefs domain.UserPreferences, listing domain.ListingAttributes, totalScore, totalWeight *float64, matches, conflicts *[]string) bool {
	if e.resolver == nil || listing.Latitude == nil || listing.Longitude == nil {
		return false
	}

	dist, ok := e.resolver.Resolve(ctx, *listing.Latitude, *listing.Longitude)
	if !ok {
		return false
	}

	if prefs.MaxDistanceMiles != nil && *prefs.MaxDistanceMiles > 0 {
		score := distanceScore(dist.Miles, *prefs.MaxDistanceMiles)
		*totalScore += score * distanceWeight
		*totalWeight += distanceWeight

		qualifier := ""
		if dist.Estimate {
			qualifier = "approximately "
		}
		switch {
		case score > distanceMatchThreshold:
			*matches = append(*matches, fmt.Sprintf("Location is %s%.1f miles from campus, within your %.1f mile limit", qualifier, dist.Miles, *prefs.MaxDistanceMiles))
		case score < distanceConflictThreshold:
			*conflicts = append(*conflicts, fmt.Sprintf("Location is %s%.1f miles from campus, beyond your %.1f mile limit", qualifier, dist.Miles, *prefs.MaxDistanceMiles))
		}
		return true
	}

	// No declared limit. Being close to campus is a lightly weighted bonus;
	// farther listings contribute nothing in either direction.
	onCampus := e.cfg.GetOnCampusRadiusMiles()
	radius := e.cfg.GetProximityRadiusMiles()
	bonusWeight := e.cfg.GetProximityBonusWeight()

	switch {
	case dist.Miles < onCampus:
		*totalScore += 100 * bonusWeight
		*totalWeight += bonusWeight
		*matches = append(*matches, "Located on campus")
		return true
	case dist.Miles < radius:
		// Linear from 100 at the on-campus edge down to 20 at the radius.
		score := 100 - (dist.Miles-onCampus)/(radius-onCampus)*80
		*totalScore += score * bonusWeight
		*totalWeight += bonusWeight
		*matches = append(*matches, fmt.Sprintf("Walking distance to campus (%.1f miles)", dist.Miles))
		return true
	}

	return false
}

// distanceScore maps the ratio of actual distance to the user's declared
// maximum onto a 0-100 sub-score. Within the limit scores stay high; past
// it the score decays in steepening bands.
func distanceScore(miles, maxMiles float64) float64 {
	ratio := miles / maxMiles
	switch {
	case ratio <= 1:
		return 100 - ratio*20
	case ratio <= 1.5:
		return 80 - (ratio-1)*60
	case ratio <= 2:
		return 50 - (ratio-1.5)*40
	default:
		return math.Max(0, 30-(ratio-2)*10)
	}
}
