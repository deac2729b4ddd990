package entity

import (
	"time"

	"github.com/google/uuid"
)

// Wedding is the tenant. Every guest, catalog and log row hangs off one wedding.
type Wedding struct {
	Id                uuid.UUID
	CoupleNames       string
	WeddingDate       time.Time
	VenueName         *string
	VenueAddress      *string
	VenueCity         *string
	VenueCountry      *string
	WelcomeMessage    *string
	CoverImageUrl     *string
	StoryTitle        *string
	StoryContent      *string
	AdminEmail        string
	AdminPasswordHash string
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}
