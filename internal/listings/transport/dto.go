package transport

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateListingRequest struct {
	Title         string   `json:"title" validate:"required,min=3,max=200"`
	Description   string   `json:"description" validate:"max=5000"`
	Address       string   `json:"address" validate:"required,min=5,max=300"`
	RentCents     int64    `json:"rentCents" validate:"required,gt=0"`
	SleepSchedule string   `json:"sleepSchedule,omitempty" validate:"max=50"`
	WakeSchedule  string   `json:"wakeSchedule,omitempty" validate:"max=50"`
	Cleanliness   string   `json:"cleanliness,omitempty" validate:"max=50"`
	Noise         string   `json:"noise,omitempty" validate:"max=50"`
	Visitors      string   `json:"visitors,omitempty" validate:"max=50"`
	Study         string   `json:"study,omitempty" validate:"max=50"`
	LifestyleTags []string `json:"lifestyleTags,omitempty" validate:"max=20,dive,min=1,max=50"`
	PetsAllowed   bool     `json:"petsAllowed"`
	Latitude      *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude     *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
}

type UpdateListingRequest struct {
	Title         string   `json:"title" validate:"required,min=3,max=200"`
	Description   string   `json:"description" validate:"max=5000"`
	Address       string   `json:"address" validate:"required,min=5,max=300"`
	RentCents     int64    `json:"rentCents" validate:"required,gt=0"`
	SleepSchedule string   `json:"sleepSchedule,omitempty" validate:"max=50"`
	WakeSchedule  string   `json:"wakeSchedule,omitempty" validate:"max=50"`
	Cleanliness   string   `json:"cleanliness,omitempty" validate:"max=50"`
	Noise         string   `json:"noise,omitempty" validate:"max=50"`
	Visitors      string   `json:"visitors,omitempty" validate:"max=50"`
	Study         string   `json:"study,omitempty" validate:"max=50"`
	LifestyleTags []string `json:"lifestyleTags,omitempty" validate:"max=20,dive,min=1,max=50"`
	PetsAllowed   bool     `json:"petsAllowed"`
	Latitude      *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude     *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
}

// Response DTOs

type ListingResponse struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       uuid.UUID `json:"ownerId"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Address       string    `json:"address"`
	RentCents     int64     `json:"rentCents"`
	SleepSchedule string    `json:"sleepSchedule,omitempty"`
	WakeSchedule  string    `json:"wakeSchedule,omitempty"`
	Cleanliness   string    `json:"cleanliness,omitempty"`
	Noise         string    `json:"noise,omitempty"`
	Visitors      string    `json:"visitors,omitempty"`
	Study         string    `json:"study,omitempty"`
	LifestyleTags []string  `json:"lifestyleTags"`
	PetsAllowed   bool      `json:"petsAllowed"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type ListListingsResponse struct {
	Listings []ListingResponse `json:"listings"`
	Total    int               `json:"total"`
}
