package scoring

import "testing"

func TestMatchLifestyle(t *testing.T) {
	tests := []struct {
		name    string
		user    []string
		listing []string
		want    float64
	}{
		{"identical sets", []string{"quiet", "vegetarian"}, []string{"quiet", "vegetarian"}, 100},
		{"no overlap", []string{"gamer"}, []string{"athlete"}, 0},
		{"half overlap", []string{"quiet", "gamer"}, []string{"quiet", "athlete"}, 100.0 / 3.0},
		{"user empty", nil, []string{"quiet"}, 0},
		{"listing empty", []string{"quiet"}, nil, 0},
		{"both empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchLifestyle(tt.user, tt.listing)
			if diff := got - tt.want; diff > 0.001 || diff < -0.001 {
				t.Errorf("MatchLifestyle(%v, %v) = %.2f, want %.2f", tt.user, tt.listing, got, tt.want)
			}
		})
	}
}

func TestMatchLifestyleNormalizesTags(t *testing.T) {
	got := MatchLifestyle([]string{" Quiet ", "QUIET", "quiet"}, []string{"quiet"})
	if got != 100 {
		t.Errorf("normalized duplicate tags scored %.2f, want 100", got)
	}
}

func TestMatchLifestyleIsSymmetric(t *testing.T) {
	a := []string{"quiet", "early riser", "vegetarian"}
	b := []string{"quiet", "gamer"}

	if MatchLifestyle(a, b) != MatchLifestyle(b, a) {
		t.Error("lifestyle overlap should not depend on argument order")
	}
}
