package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterWeddingRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	CoupleNames string `json:"couple_names" validate:"required"`
	WeddingDate string `json:"wedding_date" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type AuthResponse struct {
	Token   string          `json:"token"`
	Wedding WeddingResponse `json:"wedding"`
}

type UpdateWeddingRequest struct {
	CoupleNames    *string `json:"couple_names"`
	WeddingDate    *string `json:"wedding_date"`
	VenueName      *string `json:"venue_name"`
	VenueAddress   *string `json:"venue_address"`
	VenueCity      *string `json:"venue_city"`
	VenueCountry   *string `json:"venue_country"`
	WelcomeMessage *string `json:"welcome_message"`
	CoverImageUrl  *string `json:"cover_image_url"`
	StoryTitle     *string `json:"story_title"`
	StoryContent   *string `json:"story_content"`
}

// WeddingPublicResponse is what guests see.
type WeddingPublicResponse struct {
	Id             uuid.UUID `json:"id"`
	CoupleNames    string    `json:"couple_names"`
	WeddingDate    time.Time `json:"wedding_date"`
	VenueName      *string   `json:"venue_name"`
	VenueAddress   *string   `json:"venue_address"`
	VenueCity      *string   `json:"venue_city"`
	VenueCountry   *string   `json:"venue_country"`
	WelcomeMessage *string   `json:"welcome_message"`
	CoverImageUrl  *string   `json:"cover_image_url"`
	StoryTitle     *string   `json:"story_title"`
	StoryContent   *string   `json:"story_content"`
}

type WeddingResponse struct {
	WeddingPublicResponse
	AdminEmail string     `json:"admin_email"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

type DashboardStatsResponse struct {
	TotalGuests        int64            `json:"total_guests"`
	RSVPCounts         map[string]int64 `json:"rsvp_counts"`
	ConfirmedAttendees int64            `json:"confirmed_attendees"`
	TravelSubmitted    int64            `json:"travel_submitted"`
	HotelSubmitted     int64            `json:"hotel_submitted"`
	MediaPending       int64            `json:"media_pending"`
	MediaTotal         int64            `json:"media_total"`
}
