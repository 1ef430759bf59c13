package domain

import "testing"

func TestCategoryKeyRoundTrip(t *testing.T) {
	for _, cat := range Categories {
		parsed, ok := ParseCategory(cat.Key())
		if !ok {
			t.Errorf("ParseCategory(%q) failed", cat.Key())
			continue
		}
		if parsed != cat {
			t.Errorf("ParseCategory(%q) = %v, want %v", cat.Key(), parsed, cat)
		}
	}
}

func TestParseCategoryUnknown(t *testing.T) {
	if _, ok := ParseCategory("horoscope"); ok {
		t.Error("ParseCategory accepted an unknown key")
	}
}

func TestPriorityWeights(t *testing.T) {
	tests := []struct {
		label string
		want  float64
	}{
		{"Not Important", 1},
		{"Somewhat Important", 2},
		{"Very Important", 3},
		{"Deal Breaker", 4},
	}

	for _, tt := range tests {
		priority, ok := ParsePriority(tt.label)
		if !ok {
			t.Errorf("ParsePriority(%q) failed", tt.label)
			continue
		}
		if priority.Weight() != tt.want {
			t.Errorf("%s weight = %v, want %v", tt.label, priority.Weight(), tt.want)
		}
		if priority.Label() != tt.label {
			t.Errorf("label round trip: %q became %q", tt.label, priority.Label())
		}
	}
}

func TestParsePriorityUnknown(t *testing.T) {
	if _, ok := ParsePriority("Mildly Relevant"); ok {
		t.Error("ParsePriority accepted an unknown label")
	}
}

func TestPriorityForDefaultsToNotImportant(t *testing.T) {
	var prefs UserPreferences
	if got := prefs.PriorityFor(CategoryNoise); got != PriorityNotImportant {
		t.Errorf("unset priority = %v, want PriorityNotImportant", got)
	}

	prefs.Priorities = map[Category]Priority{CategoryNoise: PriorityDealBreaker}
	if got := prefs.PriorityFor(CategoryNoise); got != PriorityDealBreaker {
		t.Errorf("set priority = %v, want PriorityDealBreaker", got)
	}
}
