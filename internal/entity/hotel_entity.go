package entity

import (
	"time"

	"github.com/google/uuid"
)

// HotelInfo is a singleton per guest.
type HotelInfo struct {
	Id                  uuid.UUID
	GuestId             uuid.UUID
	SuggestedHotelId    *uuid.UUID
	CustomHotelName     *string
	CustomHotelAddress  *string
	CheckInDate         *time.Time
	CheckOutDate        *time.Time
	RoomType            *string
	NumberOfRooms       int
	SpecialRequests     *string
	BookingConfirmation *string
	UpdatedAt           *time.Time
}

type SuggestedHotel struct {
	Id                uuid.UUID
	WeddingId         uuid.UUID
	HotelName         string
	Address           *string
	WebsiteUrl        *string
	Phone             *string
	DistanceFromVenue *string
	PriceRange        *string
	StarRating        *int
	Description       *string
	Amenities         []string
	ImageUrls         []string
	BookingLink       *string
	DisplayOrder      int
	IsActive          bool
	CreatedAt         time.Time
}
