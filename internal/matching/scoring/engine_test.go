package scoring

import (
	"context"
	"strings"
	"testing"

	"roommatch_backend/internal/geo"
	"roommatch_backend/internal/matching/domain"
	"roommatch_backend/platform/logger"
)

type stubResolver struct {
	dist geo.Distance
	ok   bool
}

func (s *stubResolver) Resolve(_ context.Context, _, _ float64) (geo.Distance, bool) {
	return s.dist, s.ok
}

type stubMatchingConfig struct{}

func (stubMatchingConfig) GetProximityBonusWeight() float64 { return 0.5 }
func (stubMatchingConfig) GetProximityRadiusMiles() float64 { return 1.0 }
func (stubMatchingConfig) GetOnCampusRadiusMiles() float64  { return 0.1 }
func (stubMatchingConfig) GetMaxConcurrentScores() int      { return 4 }

func newTestEngine(resolver DistanceResolver) *Engine {
	return NewEngine(resolver, stubMatchingConfig{}, logger.New("development"))
}

func fullPreferences() domain.UserPreferences {
	return domain.UserPreferences{
		SleepSchedule: Sleep10To12,
		WakeSchedule:  Wake7To9,
		Cleanliness:   CleanModerate,
		Noise:         NoiseBackground,
		Visitors:      VisitorsSometimes,
		HasPets:       PetsYes,
		OkWithPets:    OkWithPetsYes,
		Study:         StudyLibrary,
		LifestyleTags: []string{"quiet", "early riser"},
	}
}

func matchingListing() domain.ListingAttributes {
	return domain.ListingAttributes{
		SleepSchedule: Sleep10To12,
		WakeSchedule:  Wake7To9,
		Cleanliness:   CleanModerate,
		Noise:         NoiseBackground,
		Visitors:      VisitorsSometimes,
		Study:         StudyLibrary,
		LifestyleTags: []string{"quiet", "early riser"},
		PetsAllowed:   true,
	}
}

func containsNote(notes []string, substr string) bool {
	for _, note := range notes {
		if strings.Contains(note, substr) {
			return true
		}
	}
	return false
}

func TestScorePerfectMatch(t *testing.T) {
	engine := newTestEngine(nil)

	result := engine.Score(context.Background(), fullPreferences(), matchingListing())

	if result.Score != 100 {
		t.Fatalf("perfect match scored %d, want 100", result.Score)
	}
	if len(result.Matches) == 0 {
		t.Error("perfect match produced no match notes")
	}
	if len(result.Conflicts) != 0 {
		t.Errorf("perfect match produced conflicts: %v", result.Conflicts)
	}
}

func TestScoreNoComparableData(t *testing.T) {
	engine := newTestEngine(nil)

	result := engine.Score(context.Background(), domain.UserPreferences{}, domain.ListingAttributes{})

	if result.Score != 0 {
		t.Fatalf("empty inputs scored %d, want 0", result.Score)
	}
	if !containsNote(result.Conflicts, "Not enough information") {
		t.Errorf("expected explanatory conflict, got %v", result.Conflicts)
	}
	if len(result.Matches) != 0 {
		t.Errorf("empty inputs produced match notes: %v", result.Matches)
	}
}

func TestScoreMissingCategoriesAreNeutral(t *testing.T) {
	engine := newTestEngine(nil)

	prefs := domain.UserPreferences{SleepSchedule: Sleep10To12}
	result := engine.Score(context.Background(), prefs, matchingListing())

	// One exact match at 100, seven neutral categories at 50, equal weights.
	want := 56
	if result.Score != want {
		t.Fatalf("partial data scored %d, want %d", result.Score, want)
	}
	if !containsNote(result.Conflicts, "7 categories could not be compared") {
		t.Errorf("expected missing-data note, got %v", result.Conflicts)
	}
}

func TestScoreDealBreakerCapsResult(t *testing.T) {
	engine := newTestEngine(nil)

	prefs := fullPreferences()
	prefs.Cleanliness = CleanVeryTidy
	prefs.Priorities = map[domain.Category]domain.Priority{
		domain.CategoryCleanliness: domain.PriorityDealBreaker,
	}

	listing := matchingListing()
	listing.Cleanliness = CleanMessy

	result := engine.Score(context.Background(), prefs, listing)

	if result.Score > 40 {
		t.Fatalf("violated deal breaker scored %d, want at most 40", result.Score)
	}
	if !containsNote(result.Conflicts, "Deal breaker") {
		t.Errorf("expected deal breaker conflict, got %v", result.Conflicts)
	}
}

func TestScoreDealBreakerSatisfiedDoesNotCap(t *testing.T) {
	engine := newTestEngine(nil)

	prefs := fullPreferences()
	prefs.Priorities = map[domain.Category]domain.Priority{
		domain.CategoryCleanliness: domain.PriorityDealBreaker,
	}

	result := engine.Score(context.Background(), prefs, matchingListing())

	if result.Score != 100 {
		t.Fatalf("satisfied deal breaker scored %d, want 100", result.Score)
	}
}

func TestScorePriorityWeighting(t *testing.T) {
	engine := newTestEngine(nil)

	// The conflicting category dragged down harder when it matters more.
	listing := matchingListing()
	listing.Noise = NoiseLoud

	low := fullPreferences()
	low.Noise = NoiseSilent

	high := fullPreferences()
	high.Noise = NoiseSilent
	high.Priorities = map[domain.Category]domain.Priority{
		domain.CategoryNoise: domain.PriorityVeryImportant,
	}

	lowResult := engine.Score(context.Background(), low, listing)
	highResult := engine.Score(context.Background(), high, listing)

	if highResult.Score >= lowResult.Score {
		t.Errorf("raising priority of a conflict should lower the score: low=%d high=%d",
			lowResult.Score, highResult.Score)
	}
}

func TestScoreDistanceWithinLimit(t *testing.T) {
	engine := newTestEngine(&stubResolver{dist: geo.Distance{Miles: 2.0}, ok: true})

	prefs := fullPreferences()
	maxMiles := 5.0
	prefs.MaxDistanceMiles = &maxMiles

	listing := matchingListing()
	lat, lng := 33.78, -84.40
	listing.Latitude = &lat
	listing.Longitude = &lng

	result := engine.Score(context.Background(), prefs, listing)

	if !containsNote(result.Matches, "2.0 miles") {
		t.Errorf("expected distance match note, got %v", result.Matches)
	}
	if result.Score < 90 {
		t.Errorf("near listing with generous limit scored %d, want at least 90", result.Score)
	}
}

func TestScoreDistanceBeyondLimit(t *testing.T) {
	engine := newTestEngine(&stubResolver{dist: geo.Distance{Miles: 12.0, Estimate: true}, ok: true})

	prefs := fullPreferences()
	maxMiles := 5.0
	prefs.MaxDistanceMiles = &maxMiles

	listing := matchingListing()
	lat, lng := 33.60, -84.60
	listing.Latitude = &lat
	listing.Longitude = &lng

	result := engine.Score(context.Background(), prefs, listing)

	if !containsNote(result.Conflicts, "beyond your") {
		t.Errorf("expected distance conflict note, got %v", result.Conflicts)
	}
	if !containsNote(result.Conflicts, "approximately") {
		t.Errorf("estimated distance should be qualified, got %v", result.Conflicts)
	}
	if result.Score >= 100 {
		t.Errorf("far listing scored %d, want penalty applied", result.Score)
	}
}

func TestScoreProximityBonusOnCampus(t *testing.T) {
	engine := newTestEngine(&stubResolver{dist: geo.Distance{Miles: 0.05}, ok: true})

	listing := matchingListing()
	lat, lng := 33.7756, -84.3963
	listing.Latitude = &lat
	listing.Longitude = &lng

	result := engine.Score(context.Background(), fullPreferences(), listing)

	if !containsNote(result.Matches, "Located on campus") {
		t.Errorf("expected on-campus note, got %v", result.Matches)
	}
}

func TestScoreProximityBonusWalkingDistance(t *testing.T) {
	engine := newTestEngine(&stubResolver{dist: geo.Distance{Miles: 0.5}, ok: true})

	listing := matchingListing()
	lat, lng := 33.78, -84.39
	listing.Latitude = &lat
	listing.Longitude = &lng

	result := engine.Score(context.Background(), fullPreferences(), listing)

	if !containsNote(result.Matches, "Walking distance") {
		t.Errorf("expected walking-distance note, got %v", result.Matches)
	}
}

func TestScoreProximityBonusIgnoresFarListings(t *testing.T) {
	engine := newTestEngine(&stubResolver{dist: geo.Distance{Miles: 3.0}, ok: true})

	listing := matchingListing()
	lat, lng := 33.70, -84.30
	listing.Latitude = &lat
	listing.Longitude = &lng

	result := engine.Score(context.Background(), fullPreferences(), listing)

	// Far listings with no declared limit are neither helped nor hurt.
	if result.Score != 100 {
		t.Errorf("far listing without a distance limit scored %d, want 100", result.Score)
	}
	if containsNote(result.Matches, "campus") || containsNote(result.Conflicts, "campus") {
		t.Errorf("far listing produced distance notes: %v %v", result.Matches, result.Conflicts)
	}
}

func TestScoreMissingSideNotes(t *testing.T) {
	engine := newTestEngine(nil)

	prefs := fullPreferences()
	prefs.Noise = ""

	listing := matchingListing()
	listing.Cleanliness = ""

	result := engine.Score(context.Background(), prefs, listing)

	if !containsNote(result.Conflicts, "Your noise level preference is not set") {
		t.Errorf("expected user-side missing note, got %v", result.Conflicts)
	}
	if !containsNote(result.Conflicts, "Listing cleanliness information is not provided") {
		t.Errorf("expected listing-side missing note, got %v", result.Conflicts)
	}
	if !containsNote(result.Conflicts, "2 categories could not be compared") {
		t.Errorf("expected summary note, got %v", result.Conflicts)
	}
}

func TestScoreDistanceAloneNeverZeroesOut(t *testing.T) {
	// A listing with coordinates but no max-distance preference and far from
	// campus contributes no distance signal at all.
	engine := newTestEngine(&stubResolver{dist: geo.Distance{Miles: 5.0}, ok: true})

	listing := domain.ListingAttributes{}
	lat, lng := 34.0, -85.0
	listing.Latitude = &lat
	listing.Longitude = &lng

	result := engine.Score(context.Background(), domain.UserPreferences{}, listing)

	if result.Score != 0 {
		t.Fatalf("no comparable data and no distance signal scored %d, want 0", result.Score)
	}
	if !containsNote(result.Conflicts, "Not enough information") {
		t.Errorf("expected explanatory conflict, got %v", result.Conflicts)
	}
}

func TestDistanceScoreBands(t *testing.T) {
	tests := []struct {
		name  string
		miles float64
		max   float64
		want  float64
	}{
		{"at the door", 0, 10, 100},
		{"half the limit", 5, 10, 90},
		{"exactly at limit", 10, 10, 80},
		{"25 percent over", 12.5, 10, 65},
		{"50 percent over", 15, 10, 50},
		{"double the limit", 20, 10, 30},
		{"triple the limit", 30, 10, 20},
		{"absurdly far", 100, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := distanceScore(tt.miles, tt.max)
			if diff := got - tt.want; diff > 0.001 || diff < -0.001 {
				t.Errorf("distanceScore(%.1f, %.1f) = %.2f, want %.2f", tt.miles, tt.max, got, tt.want)
			}
		})
	}
}
