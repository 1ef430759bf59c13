// Package repository persists listings in postgres.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("listing not found")

type Listing struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Title         string
	Description   string
	Address       string
	RentCents     int64
	SleepSchedule *string
	WakeSchedule  *string
	Cleanliness   *string
	Noise         *string
	Visitors      *string
	Study         *string
	LifestyleTags []string
	PetsAllowed   bool
	Latitude      *float64
	Longitude     *float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const listingColumns = `
	id, owner_id, title, description, address, rent_cents,
	sleep_schedule, wake_schedule, cleanliness, noise, visitors, study,
	lifestyle_tags, pets_allowed, latitude, longitude, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, l *Listing) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO listings (
			owner_id, title, description, address, rent_cents,
			sleep_schedule, wake_schedule, cleanliness, noise, visitors, study,
			lifestyle_tags, pets_allowed, latitude, longitude
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at
	`,
		l.OwnerID, l.Title, l.Description, l.Address, l.RentCents,
		l.SleepSchedule, l.WakeSchedule, l.Cleanliness, l.Noise, l.Visitors, l.Study,
		l.LifestyleTags, l.PetsAllowed, l.Latitude, l.Longitude,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Listing, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+listingColumns+` FROM listings WHERE id = $1`, id)

	listing, err := scanListing(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return listing, nil
}

// List returns listings newest first.
func (r *Repository) List(ctx context.Context, limit, offset int) ([]Listing, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+listingColumns+`
		FROM listings
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectListings(rows)
}

// ListByOwner returns every listing belonging to one user.
func (r *Repository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Listing, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+listingColumns+`
		FROM listings
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectListings(rows)
}

// ListCandidates returns every listing not owned by userID, for match
// scoring. Capped to keep a single match-list build bounded.
func (r *Repository) ListCandidates(ctx context.Context, userID uuid.UUID, limit int) ([]Listing, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+listingColumns+`
		FROM listings
		WHERE owner_id <> $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectListings(rows)
}

func (r *Repository) Update(ctx context.Context, l *Listing) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE listings SET
			title = $1, description = $2, address = $3, rent_cents = $4,
			sleep_schedule = $5, wake_schedule = $6, cleanliness = $7,
			noise = $8, visitors = $9, study = $10,
			lifestyle_tags = $11, pets_allowed = $12, latitude = $13, longitude = $14,
			updated_at = now()
		WHERE id = $15
	`,
		l.Title, l.Description, l.Address, l.RentCents,
		l.SleepSchedule, l.WakeSchedule, l.Cleanliness,
		l.Noise, l.Visitors, l.Study,
		l.LifestyleTags, l.PetsAllowed, l.Latitude, l.Longitude,
		l.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (*Listing, error) {
	var l Listing
	err := row.Scan(
		&l.ID, &l.OwnerID, &l.Title, &l.Description, &l.Address, &l.RentCents,
		&l.SleepSchedule, &l.WakeSchedule, &l.Cleanliness, &l.Noise, &l.Visitors, &l.Study,
		&l.LifestyleTags, &l.PetsAllowed, &l.Latitude, &l.Longitude, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func collectListings(rows pgx.Rows) ([]Listing, error) {
	items := make([]Listing, 0)
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *listing)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return items, nil
}
