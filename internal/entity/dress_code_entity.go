package entity

import (
	"time"

	"github.com/google/uuid"
)

type ColorSwatch struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// DressCode is one event of the wedding with its own dress guidance.
type DressCode struct {
	Id                    uuid.UUID
	WeddingId             uuid.UUID
	EventName             string
	EventDate             *time.Time
	Description           *string
	Theme                 *string
	ColorPalette          []ColorSwatch
	DressSuggestionsMen   *string
	DressSuggestionsWomen *string
	ImageUrls             []string
	Notes                 *string
	DisplayOrder          *int
	CreatedAt             time.Time
}

// GuestDressPreference is unique per (GuestId, DressCodeId).
type GuestDressPreference struct {
	Id                       uuid.UUID
	GuestId                  uuid.UUID
	DressCodeId              uuid.UUID
	PlannedOutfitDescription *string
	ColorChoice              *string
	NeedsShoppingAssistance  bool
	Notes                    *string
	UpdatedAt                *time.Time
}
