package transport

import "github.com/google/uuid"

// ScoreResponse is the compatibility verdict for one listing.
type ScoreResponse struct {
	ListingID uuid.UUID `json:"listingId"`
	Score     int       `json:"score"`
	Matches   []string  `json:"matches"`
	Conflicts []string  `json:"conflicts"`
}

// MatchEntry is one ranked listing in a match list.
type MatchEntry struct {
	ListingID uuid.UUID `json:"listingId"`
	Title     string    `json:"title"`
	Address   string    `json:"address"`
	RentCents int64     `json:"rentCents"`
	Score     int       `json:"score"`
	Matches   []string  `json:"matches"`
	Conflicts []string  `json:"conflicts"`
}

// MatchListResponse is the ranked match list for the caller.
type MatchListResponse struct {
	Matches []MatchEntry `json:"matches"`
	Total   int          `json:"total"`
}
