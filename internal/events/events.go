// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"roommatch_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// NewInMemoryBus creates a new in-memory event bus.
var NewInMemoryBus = events.NewInMemoryBus

// =============================================================================
// Listings Domain Events
// =============================================================================

// ListingCreated is published when a new housing listing is created.
type ListingCreated struct {
	BaseEvent
	ListingID uuid.UUID `json:"listingId"`
	OwnerID   uuid.UUID `json:"ownerId"`
	HasCoords bool      `json:"hasCoords"`
}

func (e ListingCreated) EventName() string { return "listings.listing.created" }

// ListingUpdated is published when a listing's attributes change.
type ListingUpdated struct {
	BaseEvent
	ListingID uuid.UUID `json:"listingId"`
	HasCoords bool      `json:"hasCoords"`
}

func (e ListingUpdated) EventName() string { return "listings.listing.updated" }

// =============================================================================
// Questionnaire Domain Events
// =============================================================================

// QuestionnaireSubmitted is published when a user saves their questionnaire.
type QuestionnaireSubmitted struct {
	BaseEvent
	UserID uuid.UUID `json:"userId"`
}

func (e QuestionnaireSubmitted) EventName() string { return "questionnaire.submitted" }
