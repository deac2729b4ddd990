package dto

import (
	"time"

	"github.com/google/uuid"
)

type ActivityRequest struct {
	ActivityName    string           `json:"activity_name" validate:"required,max=200"`
	Description     *string          `json:"description"`
	EventDay        *int             `json:"event_day"`
	DateTime        *time.Time       `json:"date_time"`
	DurationMinutes *int             `json:"duration_minutes" validate:"omitempty,min=0"`
	Location        *string          `json:"location"`
	MaxParticipants *int             `json:"max_participants" validate:"omitempty,min=1"`
	IsOptional      *bool            `json:"is_optional"`
	RequiresSignup  *bool            `json:"requires_signup"`
	ImageUrl        *string          `json:"image_url"`
	Notes           *string          `json:"notes"`
	DisplayOrder    *int             `json:"display_order"`
	DressCodeInfo   *string          `json:"dress_code_info"`
	DressColors     []ColorSwatchDTO `json:"dress_colors"`
	FoodDescription *string          `json:"food_description"`
	DietaryOptions  []string         `json:"dietary_options"`
}

type ActivityResponse struct {
	Id                  uuid.UUID        `json:"id"`
	ActivityName        string           `json:"activity_name"`
	Title               string           `json:"title"`
	Description         *string          `json:"description"`
	EventDay            *int             `json:"event_day"`
	DateTime            *time.Time       `json:"date_time"`
	DurationMinutes     *int             `json:"duration_minutes"`
	Location            *string          `json:"location"`
	MaxParticipants     *int             `json:"max_participants"`
	Capacity            *int             `json:"capacity"`
	IsOptional          bool             `json:"is_optional"`
	RequiresSignup      bool             `json:"requires_signup"`
	ImageUrl            *string          `json:"image_url"`
	Notes               *string          `json:"notes"`
	DisplayOrder        *int             `json:"display_order"`
	DressCodeInfo       *string          `json:"dress_code_info"`
	DressColors         []ColorSwatchDTO `json:"dress_colors"`
	FoodDescription     *string          `json:"food_description"`
	DietaryOptions      []string         `json:"dietary_options"`
	CurrentParticipants int              `json:"current_participants"`
	SpotsLeft           *int             `json:"spots_left"`
}

type RegistrationResponse struct {
	Id                   uuid.UUID `json:"id"`
	ActivityId           uuid.UUID `json:"activity_id"`
	NumberOfParticipants int       `json:"number_of_participants"`
	Notes                *string   `json:"notes"`
	RegisteredAt         time.Time `json:"registered_at"`
}

type ActivityPortalResponse struct {
	ActivityResponse
	IsRegistered bool                  `json:"is_registered"`
	Registration *RegistrationResponse `json:"registration"`
}

type RegisterActivityRequest struct {
	NumberOfParticipants int     `json:"number_of_participants" validate:"omitempty,min=1"`
	Notes                *string `json:"notes"`
}

// ActivityRegistrationItem is one registration as seen by the tenant.
type ActivityRegistrationItem struct {
	RegistrationResponse
	GuestId   uuid.UUID `json:"guest_id"`
	GuestName string    `json:"guest_name"`
}
