// Package service ranks listings for a user by compatibility. Scores are
// computed on demand from the user's questionnaire and each listing's
// attributes; nothing is persisted.
package service

import (
	"context"
	"errors"
	"sort"

	"roommatch_backend/internal/matching/domain"
	"roommatch_backend/internal/matching/scoring"
	"roommatch_backend/internal/matching/transport"
	listingsrepo "roommatch_backend/internal/listings/repository"
	questionnairerepo "roommatch_backend/internal/questionnaire/repository"
	"roommatch_backend/platform/apperr"
	"roommatch_backend/platform/config"
	"roommatch_backend/platform/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const candidateLimit = 500

// ListingsReader is the subset of the listings repository the matcher needs.
type ListingsReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*listingsrepo.Listing, error)
	ListCandidates(ctx context.Context, userID uuid.UUID, limit int) ([]listingsrepo.Listing, error)
}

// QuestionnaireReader loads a user's stored preferences.
type QuestionnaireReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*questionnairerepo.Questionnaire, error)
}

type Service struct {
	listings       ListingsReader
	questionnaires QuestionnaireReader
	engine         *scoring.Engine
	cfg            config.MatchingConfig
	log            *logger.Logger
}

func New(listings ListingsReader, questionnaires QuestionnaireReader, engine *scoring.Engine, cfg config.MatchingConfig, log *logger.Logger) *Service {
	return &Service{
		listings:       listings,
		questionnaires: questionnaires,
		engine:         engine,
		cfg:            cfg,
		log:            log,
	}
}

// ScoreListing computes the caller's compatibility with one listing.
func (s *Service) ScoreListing(ctx context.Context, userID, listingID uuid.UUID) (*transport.ScoreResponse, error) {
	prefs, err := s.loadPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, listingsrepo.ErrNotFound) {
			return nil, apperr.NotFound("listing not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "load listing", err).WithOp("matching.ScoreListing")
	}

	result := s.engine.Score(ctx, prefs, attributesFromListing(listing))

	return &transport.ScoreResponse{
		ListingID: listing.ID,
		Score:     result.Score,
		Matches:   result.Matches,
		Conflicts: result.Conflicts,
	}, nil
}

// TopMatches scores every candidate listing for the caller and returns the
// best ones, highest score first. Candidates are scored concurrently with a
// bounded worker count.
func (s *Service) TopMatches(ctx context.Context, userID uuid.UUID, limit int) (*transport.MatchListResponse, error) {
	prefs, err := s.loadPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.listings.ListCandidates(ctx, userID, candidateLimit)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "load candidate listings", err).WithOp("matching.TopMatches")
	}

	// Each goroutine writes its own index, so no lock is needed.
	entries := make([]transport.MatchEntry, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.GetMaxConcurrentScores())

	for i := range candidates {
		i := i
		g.Go(func() error {
			listing := &candidates[i]
			result := s.engine.Score(gctx, prefs, attributesFromListing(listing))

			entries[i] = transport.MatchEntry{
				ListingID: listing.ID,
				Title:     listing.Title,
				Address:   listing.Address,
				RentCents: listing.RentCents,
				Score:     result.Score,
				Matches:   result.Matches,
				Conflicts: result.Conflicts,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "score candidates", err).WithOp("matching.TopMatches")
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Score > entries[b].Score
	})

	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}

	return &transport.MatchListResponse{
		Matches: entries,
		Total:   len(entries),
	}, nil
}

func (s *Service) loadPreferences(ctx context.Context, userID uuid.UUID) (domain.UserPreferences, error) {
	q, err := s.questionnaires.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, questionnairerepo.ErrNotFound) {
			return domain.UserPreferences{}, apperr.NotFound("complete your questionnaire to see matches")
		}
		return domain.UserPreferences{}, apperr.Wrap(apperr.KindInternal, "load questionnaire", err).WithOp("matching.loadPreferences")
	}

	return preferencesFromQuestionnaire(q), nil
}

func preferencesFromQuestionnaire(q *questionnairerepo.Questionnaire) domain.UserPreferences {
	priorities := make(map[domain.Category]domain.Priority, len(q.Priorities))
	for key, label := range q.Priorities {
		cat, ok := domain.ParseCategory(key)
		if !ok {
			continue
		}
		priority, ok := domain.ParsePriority(label)
		if !ok {
			continue
		}
		priorities[cat] = priority
	}

	return domain.UserPreferences{
		SleepSchedule:    derefString(q.SleepSchedule),
		WakeSchedule:     derefString(q.WakeSchedule),
		Cleanliness:      derefString(q.Cleanliness),
		Noise:            derefString(q.Noise),
		Visitors:         derefString(q.Visitors),
		HasPets:          derefString(q.HasPets),
		OkWithPets:       derefString(q.OkWithPets),
		Study:            derefString(q.Study),
		LifestyleTags:    q.LifestyleTags,
		MaxDistanceMiles: q.MaxDistanceMiles,
		Priorities:       priorities,
	}
}

func attributesFromListing(l *listingsrepo.Listing) domain.ListingAttributes {
	return domain.ListingAttributes{
		SleepSchedule: derefString(l.SleepSchedule),
		WakeSchedule:  derefString(l.WakeSchedule),
		Cleanliness:   derefString(l.Cleanliness),
		Noise:         derefString(l.Noise),
		Visitors:      derefString(l.Visitors),
		Study:         derefString(l.Study),
		LifestyleTags: l.LifestyleTags,
		PetsAllowed:   l.PetsAllowed,
		Latitude:      l.Latitude,
		Longitude:     l.Longitude,
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
