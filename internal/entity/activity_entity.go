package entity

import (
	"time"

	"github.com/google/uuid"
)

type Activity struct {
	Id              uuid.UUID
	WeddingId       uuid.UUID
	ActivityName    string
	Description     *string
	EventDay        *int
	DateTime        *time.Time
	DurationMinutes *int
	Location        *string
	MaxParticipants *int // nil means unlimited
	IsOptional      bool
	RequiresSignup  bool
	ImageUrl        *string
	Notes           *string
	DisplayOrder    *int
	DressCodeInfo   *string
	DressColors     []ColorSwatch
	FoodDescription *string
	DietaryOptions  []string
	CreatedAt       time.Time
}

// HasRoomFor reports whether requested more participants fit on top of current.
func (a *Activity) HasRoomFor(current, requested int) bool {
	if a.MaxParticipants == nil {
		return true
	}
	return current+requested <= *a.MaxParticipants
}

// GuestActivity is a registration, unique per (GuestId, ActivityId).
type GuestActivity struct {
	Id                   uuid.UUID
	GuestId              uuid.UUID
	ActivityId           uuid.UUID
	NumberOfParticipants int
	Notes                *string
	RegisteredAt         time.Time
}

type ActivityParticipantCount struct {
	ActivityId   uuid.UUID
	Participants int
}
