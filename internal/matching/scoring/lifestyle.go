package scoring

import "strings"

// MatchLifestyle scores two tag sets as Jaccard similarity expressed as a
// percentage. Tags are case-folded and trimmed; duplicates do not
// double-count. Overlap over empty sets is undefined, so either side being
// empty scores 0; the orchestrator intercepts the no-data case before this
// is reached.
func MatchLifestyle(userTags, listingTags []string) float64 {
	userSet := normalizeTags(userTags)
	listingSet := normalizeTags(listingTags)

	if len(userSet) == 0 || len(listingSet) == 0 {
		return 0
	}

	intersection := 0
	for tag := range userSet {
		if _, ok := listingSet[tag]; ok {
			intersection++
		}
	}

	union := len(userSet) + len(listingSet) - intersection
	return 100 * float64(intersection) / float64(union)
}

func normalizeTags(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		normalized := strings.ToLower(strings.TrimSpace(tag))
		if normalized == "" {
			continue
		}
		set[normalized] = struct{}{}
	}
	return set
}
