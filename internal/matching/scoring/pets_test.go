package scoring

import "testing"

func TestMatchPets(t *testing.T) {
	tests := []struct {
		name       string
		hasPets    string
		okWithPets string
		allowed    bool
		want       float64
	}{
		{"pet owner in no-pets listing", PetsYes, OkWithPetsYes, false, 0},
		{"pet owner in pet-friendly listing", PetsYes, OkWithPetsYes, true, 100},
		{"pet averse in pet-friendly listing", PetsNo, OkWithPetsNo, true, 20},
		{"pet averse in no-pets listing", PetsNo, OkWithPetsNo, false, 100},
		{"no pets but likes them", PetsNo, OkWithPetsYes, true, 90},
		{"no pets but likes them no pets allowed", PetsNo, OkWithPetsYes, false, 90},
		{"depends with pets allowed", PetsNo, OkWithPetsDepends, true, 60},
		{"depends without pets allowed", PetsNo, OkWithPetsDepends, false, 90},
		{"prefers not with pets allowed", PetsNo, OkWithPetsPreferNot, true, 30},
		{"prefers not without pets allowed", PetsNo, OkWithPetsPreferNot, false, 100},
		{"unrecognized answers", "Maybe", "Sort of", true, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchPets(tt.hasPets, tt.okWithPets, tt.allowed)
			if got != tt.want {
				t.Errorf("MatchPets(%q, %q, %v) = %.0f, want %.0f",
					tt.hasPets, tt.okWithPets, tt.allowed, got, tt.want)
			}
		})
	}
}

func TestMatchPetsHardIncompatibilityOverridesOpenness(t *testing.T) {
	// A pet owner cannot live where pets are banned regardless of how the
	// openness question was answered.
	for _, answer := range []string{OkWithPetsYes, OkWithPetsDepends, OkWithPetsPreferNot, OkWithPetsNo, ""} {
		if got := MatchPets(PetsYes, answer, false); got != 0 {
			t.Errorf("pet owner with okWithPets=%q in no-pets listing scored %.0f, want 0", answer, got)
		}
	}
}
