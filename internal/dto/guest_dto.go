package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	FullName          string  `json:"full_name" validate:"required,max=200"`
	Email             *string `json:"email" validate:"omitempty,email"`
	Phone             *string `json:"phone"`
	CountryOfOrigin   *string `json:"country_of_origin"`
	NumberOfAttendees int     `json:"number_of_attendees" validate:"omitempty,min=1"`
	RSVPStatus        string  `json:"rsvp_status" validate:"omitempty,oneof=pending confirmed declined maybe"`
}

type BulkCreateGuestsRequest struct {
	Guests []CreateGuestRequest `json:"guests" validate:"required,min=1,dive"`
}

type UpdateGuestRequest struct {
	Id                uuid.UUID `json:"-"`
	FullName          *string   `json:"full_name" validate:"omitempty,min=1,max=200"`
	Email             *string   `json:"email" validate:"omitempty,email"`
	Phone             *string   `json:"phone"`
	CountryOfOrigin   *string   `json:"country_of_origin"`
	NumberOfAttendees *int      `json:"number_of_attendees" validate:"omitempty,min=1"`
	RSVPStatus        *string   `json:"rsvp_status" validate:"omitempty,oneof=pending confirmed declined maybe"`
	SpecialRequests   *string   `json:"special_requests"`
	NotesToCouple     *string   `json:"notes_to_couple"`
}

type ListGuestsRequest struct {
	Search     string `query:"search"`
	RSVPStatus string `query:"rsvp_status" validate:"omitempty,oneof=pending confirmed declined maybe"`
	Page       int    `query:"page" validate:"omitempty,min=1"`
	Limit      int    `query:"limit" validate:"omitempty,min=1,max=200"`
}

type GuestResponse struct {
	Id                uuid.UUID  `json:"id"`
	FullName          string     `json:"full_name"`
	Email             *string    `json:"email"`
	Phone             *string    `json:"phone"`
	CountryOfOrigin   *string    `json:"country_of_origin"`
	Country           *string    `json:"country"`
	RSVPStatus        string     `json:"rsvp_status"`
	NumberOfAttendees int        `json:"number_of_attendees"`
	SpecialRequests   *string    `json:"special_requests"`
	SongRequests      *string    `json:"song_requests"`
	NotesToCouple     *string    `json:"notes_to_couple"`
	RSVPSubmittedAt   *time.Time `json:"rsvp_submitted_at"`
	LastAccessedAt    *time.Time `json:"last_accessed_at"`
	CreatedAt         time.Time  `json:"created_at"`
}

// AdminGuestResponse carries the portal link, which only the tenant sees.
type AdminGuestResponse struct {
	GuestResponse
	AccessToken string `json:"access_token"`
	PortalLink  string `json:"portal_link"`
}

type GuestDetailResponse struct {
	AdminGuestResponse
	HasTravelInfo bool `json:"has_travel_info"`
	HasHotelInfo  bool `json:"has_hotel_info"`
}

type RotateTokenResponse struct {
	AccessToken string `json:"access_token"`
	PortalLink  string `json:"portal_link"`
}

type PaginatedResponse[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

type UpdateRSVPRequest struct {
	RSVPStatus        string                `json:"rsvp_status" validate:"required,oneof=pending confirmed declined maybe"`
	NumberOfAttendees Optional[int]         `json:"number_of_attendees"`
	Email             Optional[string]      `json:"email"`
	Phone             Optional[string]      `json:"phone"`
	CountryOfOrigin   Optional[string]      `json:"country_of_origin"`
	SpecialRequests   Optional[string]      `json:"special_requests"`
	SongRequests      Optional[string]      `json:"song_requests"`
	NotesToCouple     Optional[string]      `json:"notes_to_couple"`
	ActivityIds       Optional[[]string]    `json:"activity_ids"`
}
