package scoring

import (
	"testing"

	"roommatch_backend/internal/matching/domain"
)

func TestMatchCategoryExactMatch(t *testing.T) {
	for _, cat := range domain.Categories {
		score := MatchCategory(cat, "Anything", "Anything")
		if score != 100 {
			t.Errorf("category %s: identical values scored %.0f, want 100", cat.Key(), score)
		}
	}
}

func TestMatchCategoryNoPreference(t *testing.T) {
	score := MatchCategory(domain.CategoryCleanliness, domain.NoPreference, CleanMessy)
	if score != 70 {
		t.Errorf("no preference scored %.0f, want 70", score)
	}
}

func TestMatchCategorySleepSchedule(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		listing string
		want    float64
	}{
		{"same early class", SleepBefore10, Sleep10To12, 80},
		{"same late class", Sleep12To2, SleepAfter2, 80},
		{"opposite extremes", SleepBefore10, SleepAfter2, 20},
		{"opposite extremes reversed", SleepAfter2, SleepBefore10, 20},
		{"extreme vs opposite middle", SleepBefore10, Sleep12To2, 40},
		{"adjacent middles", Sleep10To12, Sleep12To2, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchCategory(domain.CategorySleepSchedule, tt.user, tt.listing)
			if got != tt.want {
				t.Errorf("MatchCategory(%q, %q) = %.0f, want %.0f", tt.user, tt.listing, got, tt.want)
			}
		})
	}
}

func TestMatchCategoryCleanlinessIsDirectional(t *testing.T) {
	tidyFacingModerate := MatchCategory(domain.CategoryCleanliness, CleanVeryTidy, CleanModerate)
	moderateFacingTidy := MatchCategory(domain.CategoryCleanliness, CleanModerate, CleanVeryTidy)

	if tidyFacingModerate != 70 {
		t.Errorf("tidy user facing moderate listing scored %.0f, want 70", tidyFacingModerate)
	}
	if moderateFacingTidy != 80 {
		t.Errorf("moderate user facing tidy listing scored %.0f, want 80", moderateFacingTidy)
	}

	tidyFacingMessy := MatchCategory(domain.CategoryCleanliness, CleanVeryTidy, CleanMessy)
	messyFacingTidy := MatchCategory(domain.CategoryCleanliness, CleanMessy, CleanVeryTidy)

	if tidyFacingMessy != 10 {
		t.Errorf("tidy user facing messy listing scored %.0f, want 10", tidyFacingMessy)
	}
	if messyFacingTidy != 40 {
		t.Errorf("messy user facing tidy listing scored %.0f, want 40", messyFacingTidy)
	}
}

func TestMatchCategoryNoise(t *testing.T) {
	tests := []struct {
		user    string
		listing string
		want    float64
	}{
		{NoiseSilent, NoiseBackground, 40},
		{NoiseBackground, NoiseSilent, 70},
		{NoiseSilent, NoiseLoud, 10},
		{NoiseLoud, NoiseSilent, 20},
	}

	for _, tt := range tests {
		got := MatchCategory(domain.CategoryNoise, tt.user, tt.listing)
		if got != tt.want {
			t.Errorf("noise %q vs %q = %.0f, want %.0f", tt.user, tt.listing, got, tt.want)
		}
	}
}

func TestMatchCategoryVisitorBands(t *testing.T) {
	adjacent := MatchCategory(domain.CategoryVisitors, VisitorsRarely, VisitorsSometimes)
	if adjacent < 60 || adjacent > 80 {
		t.Errorf("adjacent visitor bands scored %.0f, want 60-80", adjacent)
	}

	distant := MatchCategory(domain.CategoryVisitors, VisitorsNever, VisitorsOften)
	if distant < 30 || distant > 40 {
		t.Errorf("distant visitor bands scored %.0f, want 30-40", distant)
	}
}

func TestMatchCategoryStudyDifferentLocations(t *testing.T) {
	got := MatchCategory(domain.CategoryStudy, StudyAtHome, StudyLibrary)
	if got != 80 {
		t.Errorf("different study locations scored %.0f, want 80", got)
	}
}

func TestMatchCategoryUnknownValueFallsBack(t *testing.T) {
	got := MatchCategory(domain.CategorySleepSchedule, "Whenever", SleepBefore10)
	if got != 30 {
		t.Errorf("unknown value scored %.0f, want fallback 30", got)
	}
}
