package transport

import "time"

// SaveQuestionnaireRequest is the full questionnaire payload. Saving always
// replaces the previous answers; there are no partial updates.
type SaveQuestionnaireRequest struct {
	SleepSchedule    string            `json:"sleepSchedule,omitempty" validate:"max=50"`
	WakeSchedule     string            `json:"wakeSchedule,omitempty" validate:"max=50"`
	Cleanliness      string            `json:"cleanliness,omitempty" validate:"max=50"`
	Noise            string            `json:"noise,omitempty" validate:"max=50"`
	Visitors         string            `json:"visitors,omitempty" validate:"max=50"`
	HasPets          string            `json:"hasPets,omitempty" validate:"omitempty,oneof=Yes No"`
	OkWithPets       string            `json:"okWithPets,omitempty" validate:"omitempty,max=50"`
	Study            string            `json:"study,omitempty" validate:"max=50"`
	LifestyleTags    []string          `json:"lifestyleTags,omitempty" validate:"max=20,dive,min=1,max=50"`
	MaxDistanceMiles *float64          `json:"maxDistanceMiles,omitempty" validate:"omitempty,gt=0,lte=500"`
	Priorities       map[string]string `json:"priorities,omitempty" validate:"max=8"`
}

// QuestionnaireResponse mirrors the stored questionnaire.
type QuestionnaireResponse struct {
	SleepSchedule    string            `json:"sleepSchedule,omitempty"`
	WakeSchedule     string            `json:"wakeSchedule,omitempty"`
	Cleanliness      string            `json:"cleanliness,omitempty"`
	Noise            string            `json:"noise,omitempty"`
	Visitors         string            `json:"visitors,omitempty"`
	HasPets          string            `json:"hasPets,omitempty"`
	OkWithPets       string            `json:"okWithPets,omitempty"`
	Study            string            `json:"study,omitempty"`
	LifestyleTags    []string          `json:"lifestyleTags"`
	MaxDistanceMiles *float64          `json:"maxDistanceMiles,omitempty"`
	Priorities       map[string]string `json:"priorities"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}
