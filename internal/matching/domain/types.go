// Package domain defines the core types of the compatibility model:
// categories, priorities, questionnaire preferences, listing attributes,
// and the scoring result.
package domain

// Category is one fixed axis of roommate/listing compatibility.
type Category int

const (
	CategorySleepSchedule Category = iota
	CategoryWakeSchedule
	CategoryCleanliness
	CategoryNoise
	CategoryVisitors
	CategoryPets
	CategoryLifestyle
	CategoryStudy
)

// Categories lists every category in the fixed evaluation order. The order
// does not affect the math but keeps test fixtures deterministic.
var Categories = [...]Category{
	CategorySleepSchedule,
	CategoryWakeSchedule,
	CategoryCleanliness,
	CategoryNoise,
	CategoryVisitors,
	CategoryPets,
	CategoryLifestyle,
	CategoryStudy,
}

// Key returns the category's wire identifier, used in priority maps and DTOs.
func (c Category) Key() string {
	switch c {
	case CategorySleepSchedule:
		return "sleepSchedule"
	case CategoryWakeSchedule:
		return "wakeSchedule"
	case CategoryCleanliness:
		return "cleanliness"
	case CategoryNoise:
		return "noise"
	case CategoryVisitors:
		return "visitors"
	case CategoryPets:
		return "pets"
	case CategoryLifestyle:
		return "lifestyle"
	case CategoryStudy:
		return "study"
	default:
		return "unknown"
	}
}

// Label returns the human-readable category name used in result notes.
func (c Category) Label() string {
	switch c {
	case CategorySleepSchedule:
		return "sleep schedule"
	case CategoryWakeSchedule:
		return "wake-up schedule"
	case CategoryCleanliness:
		return "cleanliness"
	case CategoryNoise:
		return "noise level"
	case CategoryVisitors:
		return "visitor policy"
	case CategoryPets:
		return "pets"
	case CategoryLifestyle:
		return "lifestyle"
	case CategoryStudy:
		return "study habits"
	default:
		return "unknown"
	}
}

// ParseCategory maps a wire identifier back to its Category.
func ParseCategory(key string) (Category, bool) {
	for _, cat := range Categories {
		if cat.Key() == key {
			return cat, true
		}
	}
	return 0, false
}

// Priority is the importance a user assigns to a category.
type Priority int

const (
	PriorityNotImportant Priority = iota + 1
	PrioritySomewhatImportant
	PriorityVeryImportant
	PriorityDealBreaker
)

// priorityLabels maps questionnaire answers to priority levels.
var priorityLabels = map[string]Priority{
	"Not Important":      PriorityNotImportant,
	"Somewhat Important": PrioritySomewhatImportant,
	"Very Important":     PriorityVeryImportant,
	"Deal Breaker":       PriorityDealBreaker,
}

// ParsePriority maps a questionnaire answer to its Priority.
func ParsePriority(label string) (Priority, bool) {
	p, ok := priorityLabels[label]
	return p, ok
}

// Label returns the questionnaire wording for the priority.
func (p Priority) Label() string {
	switch p {
	case PrioritySomewhatImportant:
		return "Somewhat Important"
	case PriorityVeryImportant:
		return "Very Important"
	case PriorityDealBreaker:
		return "Deal Breaker"
	default:
		return "Not Important"
	}
}

// Weight returns the multiplier the priority carries in the weighted average.
func (p Priority) Weight() float64 {
	if p < PriorityNotImportant || p > PriorityDealBreaker {
		return 1
	}
	return float64(p)
}

// NoPreference is the questionnaire answer that short-circuits category
// matching to a fixed score regardless of the other side.
const NoPreference = "No preference"

// UserPreferences is a user's questionnaire: one value per category, a
// priority per category, and an optional maximum acceptable distance from
// campus. Empty strings mean the question was not answered.
type UserPreferences struct {
	SleepSchedule    string
	WakeSchedule     string
	Cleanliness      string
	Noise            string
	Visitors         string
	HasPets          string
	OkWithPets       string
	Study            string
	LifestyleTags    []string
	MaxDistanceMiles *float64
	Priorities       map[Category]Priority
}

// PriorityFor returns the declared priority for a category, defaulting to
// Not Important when unset.
func (p UserPreferences) PriorityFor(cat Category) Priority {
	if priority, ok := p.Priorities[cat]; ok {
		return priority
	}
	return PriorityNotImportant
}

// ListingAttributes mirrors the questionnaire shape on the listing side.
// The pets flag is always explicit; everything else is optional.
type ListingAttributes struct {
	SleepSchedule string
	WakeSchedule  string
	Cleanliness   string
	Noise         string
	Visitors      string
	Study         string
	LifestyleTags []string
	PetsAllowed   bool
	Latitude      *float64
	Longitude     *float64
}

// Result is the outcome of scoring one (user, listing) pair. It is computed
// on demand and never persisted.
type Result struct {
	// Score is the aggregate compatibility, 0-100, rounded.
	Score int
	// Matches explains why the pairing is favorable.
	Matches []string
	// Conflicts explains why the pairing is unfavorable or incomplete.
	Conflicts []string
}
