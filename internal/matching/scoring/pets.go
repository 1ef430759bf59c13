package scoring

// Questionnaire answers for pet ownership and tolerance.
const (
	PetsYes = "Yes"
	PetsNo  = "No"

	OkWithPetsYes       = "Yes"
	OkWithPetsDepends   = "Depends"
	OkWithPetsPreferNot = "Prefer not"
	OkWithPetsNo        = "No"
)

// MatchPets scores pet compatibility. The rules are ordered: owning pets in
// a no-pets listing is a hard incompatibility, a flat "No" to living with
// pets in a pet-friendly listing is nearly as bad, and the remaining ladder
// covers the tolerance shades for users without pets.
func MatchPets(userHasPets, userOkWithPets string, listingAllowsPets bool) float64 {
	hasPets := userHasPets == PetsYes

	switch {
	case hasPets && !listingAllowsPets:
		return 0
	case userOkWithPets == OkWithPetsNo && listingAllowsPets:
		return 20
	case hasPets && listingAllowsPets:
		return 100
	}

	if userHasPets == PetsNo {
		switch userOkWithPets {
		case OkWithPetsYes:
			return 90
		case OkWithPetsDepends:
			if listingAllowsPets {
				return 60
			}
			return 90
		case OkWithPetsPreferNot:
			if listingAllowsPets {
				return 30
			}
			return 100
		case OkWithPetsNo:
			return 100
		}
	}

	// Unclassified combination: neutral fallback.
	return 50
}
