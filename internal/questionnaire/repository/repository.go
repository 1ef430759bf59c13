// Package repository persists user questionnaires in postgres.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("questionnaire not found")

// Questionnaire is one user's roommate preference answers. Priorities maps
// category keys to priority labels and is stored as jsonb.
type Questionnaire struct {
	UserID           uuid.UUID
	SleepSchedule    *string
	WakeSchedule     *string
	Cleanliness      *string
	Noise            *string
	Visitors         *string
	HasPets          *string
	OkWithPets       *string
	Study            *string
	LifestyleTags    []string
	MaxDistanceMiles *float64
	Priorities       map[string]string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Upsert saves the full questionnaire for a user, replacing any previous
// answers.
func (r *Repository) Upsert(ctx context.Context, q *Questionnaire) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO user_questionnaires (
			user_id, sleep_schedule, wake_schedule, cleanliness, noise, visitors,
			has_pets, ok_with_pets, study, lifestyle_tags, max_distance_miles, priorities
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (user_id) DO UPDATE SET
			sleep_schedule = EXCLUDED.sleep_schedule,
			wake_schedule = EXCLUDED.wake_schedule,
			cleanliness = EXCLUDED.cleanliness,
			noise = EXCLUDED.noise,
			visitors = EXCLUDED.visitors,
			has_pets = EXCLUDED.has_pets,
			ok_with_pets = EXCLUDED.ok_with_pets,
			study = EXCLUDED.study,
			lifestyle_tags = EXCLUDED.lifestyle_tags,
			max_distance_miles = EXCLUDED.max_distance_miles,
			priorities = EXCLUDED.priorities,
			updated_at = now()
		RETURNING created_at, updated_at
	`,
		q.UserID, q.SleepSchedule, q.WakeSchedule, q.Cleanliness, q.Noise, q.Visitors,
		q.HasPets, q.OkWithPets, q.Study, q.LifestyleTags, q.MaxDistanceMiles, q.Priorities,
	).Scan(&q.CreatedAt, &q.UpdatedAt)
}

// GetByUserID loads a user's questionnaire.
func (r *Repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*Questionnaire, error) {
	var q Questionnaire
	err := r.pool.QueryRow(ctx, `
		SELECT user_id, sleep_schedule, wake_schedule, cleanliness, noise, visitors,
		       has_pets, ok_with_pets, study, lifestyle_tags, max_distance_miles, priorities,
		       created_at, updated_at
		FROM user_questionnaires
		WHERE user_id = $1
	`, userID).Scan(
		&q.UserID, &q.SleepSchedule, &q.WakeSchedule, &q.Cleanliness, &q.Noise, &q.Visitors,
		&q.HasPets, &q.OkWithPets, &q.Study, &q.LifestyleTags, &q.MaxDistanceMiles, &q.Priorities,
		&q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &q, nil
}
