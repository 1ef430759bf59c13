// Package service implements listing management: creation, owner-scoped
// mutation, and retrieval.
package service

import (
	"context"
	"errors"

	"roommatch_backend/internal/events"
	"roommatch_backend/internal/listings/repository"
	"roommatch_backend/internal/listings/transport"
	"roommatch_backend/platform/apperr"
	"roommatch_backend/platform/logger"
	"roommatch_backend/platform/sanitize"

	"github.com/google/uuid"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type Service struct {
	repo *repository.Repository
	bus  events.Bus
	log  *logger.Logger
}

func New(repo *repository.Repository, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, bus: bus, log: log}
}

func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, req transport.CreateListingRequest) (*transport.ListingResponse, error) {
	listing := listingFromRequest(ownerID, req)

	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "create listing", err).WithOp("listings.Create")
	}

	s.bus.Publish(ctx, events.ListingCreated{
		BaseEvent: events.NewBaseEvent(),
		ListingID: listing.ID,
		OwnerID:   listing.OwnerID,
		HasCoords: listing.Latitude != nil && listing.Longitude != nil,
	})

	resp := toResponse(listing)
	return &resp, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*transport.ListingResponse, error) {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("listing not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "get listing", err).WithOp("listings.GetByID")
	}

	resp := toResponse(listing)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) (*transport.ListListingsResponse, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	items, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "list listings", err).WithOp("listings.List")
	}

	resp := transport.ListListingsResponse{
		Listings: make([]transport.ListingResponse, 0, len(items)),
		Total:    len(items),
	}
	for i := range items {
		resp.Listings = append(resp.Listings, toResponse(&items[i]))
	}

	return &resp, nil
}

func (s *Service) ListMine(ctx context.Context, ownerID uuid.UUID) (*transport.ListListingsResponse, error) {
	items, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "list own listings", err).WithOp("listings.ListMine")
	}

	resp := transport.ListListingsResponse{
		Listings: make([]transport.ListingResponse, 0, len(items)),
		Total:    len(items),
	}
	for i := range items {
		resp.Listings = append(resp.Listings, toResponse(&items[i]))
	}

	return &resp, nil
}

// Update replaces a listing's content. Only the owner may update.
func (s *Service) Update(ctx context.Context, id, actorID uuid.UUID, req transport.UpdateListingRequest) (*transport.ListingResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("listing not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "load listing", err).WithOp("listings.Update")
	}

	if existing.OwnerID != actorID {
		return nil, apperr.Forbidden("only the owner may update a listing")
	}

	listing := listingFromRequest(existing.OwnerID, transport.CreateListingRequest(req))
	listing.ID = existing.ID
	listing.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, listing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("listing not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "update listing", err).WithOp("listings.Update")
	}

	s.bus.Publish(ctx, events.ListingUpdated{
		BaseEvent: events.NewBaseEvent(),
		ListingID: listing.ID,
		HasCoords: listing.Latitude != nil && listing.Longitude != nil,
	})

	resp := toResponse(listing)
	return &resp, nil
}

// Delete removes a listing. Only the owner may delete.
func (s *Service) Delete(ctx context.Context, id, actorID uuid.UUID) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("listing not found")
		}
		return apperr.Wrap(apperr.KindInternal, "load listing", err).WithOp("listings.Delete")
	}

	if existing.OwnerID != actorID {
		return apperr.Forbidden("only the owner may delete a listing")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("listing not found")
		}
		return apperr.Wrap(apperr.KindInternal, "delete listing", err).WithOp("listings.Delete")
	}

	return nil
}

func listingFromRequest(ownerID uuid.UUID, req transport.CreateListingRequest) *repository.Listing {
	return &repository.Listing{
		OwnerID:       ownerID,
		Title:         sanitize.Text(req.Title),
		Description:   sanitize.Text(req.Description),
		Address:       sanitize.Text(req.Address),
		RentCents:     req.RentCents,
		SleepSchedule: optionalString(req.SleepSchedule),
		WakeSchedule:  optionalString(req.WakeSchedule),
		Cleanliness:   optionalString(req.Cleanliness),
		Noise:         optionalString(req.Noise),
		Visitors:      optionalString(req.Visitors),
		Study:         optionalString(req.Study),
		LifestyleTags: sanitizeTags(req.LifestyleTags),
		PetsAllowed:   req.PetsAllowed,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
	}
}

func toResponse(l *repository.Listing) transport.ListingResponse {
	tags := l.LifestyleTags
	if tags == nil {
		tags = []string{}
	}

	return transport.ListingResponse{
		ID:            l.ID,
		OwnerID:       l.OwnerID,
		Title:         l.Title,
		Description:   l.Description,
		Address:       l.Address,
		RentCents:     l.RentCents,
		SleepSchedule: derefString(l.SleepSchedule),
		WakeSchedule:  derefString(l.WakeSchedule),
		Cleanliness:   derefString(l.Cleanliness),
		Noise:         derefString(l.Noise),
		Visitors:      derefString(l.Visitors),
		Study:         derefString(l.Study),
		LifestyleTags: tags,
		PetsAllowed:   l.PetsAllowed,
		Latitude:      l.Latitude,
		Longitude:     l.Longitude,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
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
