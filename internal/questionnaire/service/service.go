// Package service implements questionnaire management. A user has at most
// one questionnaire; saving replaces it wholesale.
package service

import (
	"context"
	"errors"
	"fmt"

	"roommatch_backend/internal/events"
	"roommatch_backend/internal/matching/domain"
	"roommatch_backend/internal/questionnaire/repository"
	"roommatch_backend/internal/questionnaire/transport"
	"roommatch_backend/platform/apperr"
	"roommatch_backend/platform/logger"
	"roommatch_backend/platform/sanitize"

	"github.com/google/uuid"
)

type Service struct {
	repo *repository.Repository
	bus  events.Bus
	log  *logger.Logger
}

func New(repo *repository.Repository, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, bus: bus, log: log}
}

// Save validates and stores a user's questionnaire, replacing any previous
// answers.
func (s *Service) Save(ctx context.Context, userID uuid.UUID, req transport.SaveQuestionnaireRequest) (*transport.QuestionnaireResponse, error) {
	if err := validatePriorities(req.Priorities); err != nil {
		return nil, err
	}

	q := &repository.Questionnaire{
		UserID:           userID,
		SleepSchedule:    optionalString(req.SleepSchedule),
		WakeSchedule:     optionalString(req.WakeSchedule),
		Cleanliness:      optionalString(req.Cleanliness),
		Noise:            optionalString(req.Noise),
		Visitors:         optionalString(req.Visitors),
		HasPets:          optionalString(req.HasPets),
		OkWithPets:       optionalString(req.OkWithPets),
		Study:            optionalString(req.Study),
		LifestyleTags:    sanitizeTags(req.LifestyleTags),
		MaxDistanceMiles: req.MaxDistanceMiles,
		Priorities:       req.Priorities,
	}

	if err := s.repo.Upsert(ctx, q); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "save questionnaire", err).WithOp("questionnaire.Save")
	}

	s.bus.Publish(ctx, events.QuestionnaireSubmitted{
		BaseEvent: events.NewBaseEvent(),
		UserID:    userID,
	})

	resp := toResponse(q)
	return &resp, nil
}

// Get loads the caller's questionnaire.
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*transport.QuestionnaireResponse, error) {
	q, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("questionnaire not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "get questionnaire", err).WithOp("questionnaire.Get")
	}

	resp := toResponse(q)
	return &resp, nil
}

// validatePriorities checks that every key is a known category and every
// value a known priority label.
func validatePriorities(priorities map[string]string) error {
	for key, label := range priorities {
		if _, ok := domain.ParseCategory(key); !ok {
			return apperr.Validation(fmt.Sprintf("unknown category %q", key))
		}
		if _, ok := domain.ParsePriority(label); !ok {
			return apperr.Validation(fmt.Sprintf("unknown priority %q for category %q", label, key))
		}
	}
	return nil
}

func toResponse(q *repository.Questionnaire) transport.QuestionnaireResponse {
	tags := q.LifestyleTags
	if tags == nil {
		tags = []string{}
	}
	priorities := q.Priorities
	if priorities == nil {
		priorities = map[string]string{}
	}

	return transport.QuestionnaireResponse{
		SleepSchedule:    derefString(q.SleepSchedule),
		WakeSchedule:     derefString(q.WakeSchedule),
		Cleanliness:      derefString(q.Cleanliness),
		Noise:            derefString(q.Noise),
		Visitors:         derefString(q.Visitors),
		HasPets:          derefString(q.HasPets),
		OkWithPets:       derefString(q.OkWithPets),
		Study:            derefString(q.Study),
		LifestyleTags:    tags,
		MaxDistanceMiles: q.MaxDistanceMiles,
		Priorities:       priorities,
		UpdatedAt:        q.UpdatedAt,
	}
}

func sanitizeTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	clean := make([]string, 0, len(tags))
	for _, tag := range tags {
		if t := sanitize.Text(tag); t != "" {
			clean = append(clean, t)
		}
	}
	return clean
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
