package scoring

import "roommatch_backend/internal/matching/domain"

const (
	// exactMatchScore is returned when both sides gave the same answer.
	exactMatchScore = 100
	// noPreferenceScore is returned when either side answered "No preference".
	noPreferenceScore = 70
	// defaultPartialScore is the explicit fallback for pairings not covered
	// by a compatibility table. A weak partial match, not an error.
	defaultPartialScore = 30
)

// Questionnaire answers per category. The listing side uses the same values.
const (
	SleepBefore10  = "Before 10pm"
	Sleep10To12    = "10pm - 12am"
	Sleep12To2     = "12am - 2am"
	SleepAfter2    = "After 2am"
	WakeBefore7    = "Before 7am"
	Wake7To9       = "7am - 9am"
	Wake9To11      = "9am - 11am"
	WakeAfter11    = "After 11am"
	CleanVeryTidy  = "Very tidy"
	CleanModerate  = "Moderately tidy"
	CleanMessy     = "Messy"
	NoiseSilent    = "Silent"
	NoiseBackground = "Background noise"
	NoiseLoud      = "Loud music"
	VisitorsNever     = "Never"
	VisitorsRarely    = "Rarely"
	VisitorsSometimes = "Sometimes"
	VisitorsOften     = "Often"
	StudyAtHome  = "At home"
	StudyLibrary = "Library"
	StudyCafes   = "Coffee shops"
)

// matrix maps user value -> listing value -> score. Direction matters: rows
// are the user's answer, columns the listing's. Diagonal entries are omitted
// because exact equality is handled before the table lookup.
type matrix map[string]map[string]int

// Sleep and wake schedules share a band structure: two early bands and two
// late bands. Same class scores 80, opposite extremes 20, an extreme against
// the opposite middle band 40, adjacent middle bands 60.
var sleepMatrix = matrix{
	SleepBefore10: {Sleep10To12: 80, Sleep12To2: 40, SleepAfter2: 20},
	Sleep10To12:   {SleepBefore10: 80, Sleep12To2: 60, SleepAfter2: 40},
	Sleep12To2:    {SleepBefore10: 40, Sleep10To12: 60, SleepAfter2: 80},
	SleepAfter2:   {SleepBefore10: 20, Sleep10To12: 40, Sleep12To2: 80},
}

var wakeMatrix = matrix{
	WakeBefore7: {Wake7To9: 80, Wake9To11: 40, WakeAfter11: 20},
	Wake7To9:    {WakeBefore7: 80, Wake9To11: 60, WakeAfter11: 40},
	Wake9To11:   {WakeBefore7: 40, Wake7To9: 60, WakeAfter11: 80},
	WakeAfter11: {WakeBefore7: 20, Wake7To9: 40, Wake9To11: 80},
}

// Cleanliness is asymmetric: a messy person tolerating a tidy space scores
// higher than a tidy person facing a messy one.
var cleanlinessMatrix = matrix{
	CleanVeryTidy: {CleanModerate: 70, CleanMessy: 10},
	CleanModerate: {CleanVeryTidy: 80, CleanMessy: 40},
	CleanMessy:    {CleanVeryTidy: 40, CleanModerate: 60},
}

// Noise tolerance is asymmetric in the same direction: the quieter party
// suffers more from the mismatch.
var noiseMatrix = matrix{
	NoiseSilent:     {NoiseBackground: 40, NoiseLoud: 10},
	NoiseBackground: {NoiseSilent: 70, NoiseLoud: 50},
	NoiseLoud:       {NoiseSilent: 20, NoiseBackground: 60},
}

// Visitor frequency bands: adjacent bands 70, two apart 40, extremes 30.
var visitorsMatrix = matrix{
	VisitorsNever:     {VisitorsRarely: 70, VisitorsSometimes: 40, VisitorsOften: 30},
	VisitorsRarely:    {VisitorsNever: 70, VisitorsSometimes: 70, VisitorsOften: 40},
	VisitorsSometimes: {VisitorsNever: 40, VisitorsRarely: 70, VisitorsOften: 70},
	VisitorsOften:     {VisitorsNever: 30, VisitorsRarely: 40, VisitorsSometimes: 70},
}

// Roommates do not need to share a study spot, so different answers are
// still a good match.
var studyMatrix = matrix{
	StudyAtHome:  {StudyLibrary: 80, StudyCafes: 80},
	StudyLibrary: {StudyAtHome: 80, StudyCafes: 80},
	StudyCafes:   {StudyAtHome: 80, StudyLibrary: 80},
}

var categoryMatrices = map[domain.Category]matrix{
	domain.CategorySleepSchedule: sleepMatrix,
	domain.CategoryWakeSchedule:  wakeMatrix,
	domain.CategoryCleanliness:   cleanlinessMatrix,
	domain.CategoryNoise:         noiseMatrix,
	domain.CategoryVisitors:      visitorsMatrix,
	domain.CategoryStudy:         studyMatrix,
}

// MatchCategory scores one user answer against one listing attribute for a
// scalar category. Callers must not pass empty values; missing data is the
// orchestrator's responsibility.
func MatchCategory(cat domain.Category, userValue, listingValue string) float64 {
	if userValue == domain.NoPreference || listingValue == domain.NoPreference {
		return noPreferenceScore
	}
	if userValue == listingValue {
		return exactMatchScore
	}

	if table, ok := categoryMatrices[cat]; ok {
		if row, ok := table[userValue]; ok {
			if score, ok := row[listingValue]; ok {
				return float64(score)
			}
		}
	}

	return defaultPartialScore
}
