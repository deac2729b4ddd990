package dto

import (
	"time"

	"github.com/google/uuid"
)

type ColorSwatchDTO struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

type SuggestedHotelRequest struct {
	HotelName         string   `json:"hotel_name" validate:"required,max=200"`
	Address           *string  `json:"address"`
	WebsiteUrl        *string  `json:"website_url"`
	Phone             *string  `json:"phone"`
	DistanceFromVenue *string  `json:"distance_from_venue"`
	PriceRange        *string  `json:"price_range"`
	StarRating        *int     `json:"star_rating" validate:"omitempty,min=1,max=5"`
	Description       *string  `json:"description"`
	Amenities         []string `json:"amenities"`
	ImageUrls         []string `json:"image_urls"`
	BookingLink       *string  `json:"booking_link"`
	DisplayOrder      int      `json:"display_order"`
	IsActive          *bool    `json:"is_active"`
}

type SuggestedHotelResponse struct {
	Id                uuid.UUID `json:"id"`
	HotelName         string    `json:"hotel_name"`
	Address           *string   `json:"address"`
	WebsiteUrl        *string   `json:"website_url"`
	Phone             *string   `json:"phone"`
	DistanceFromVenue *string   `json:"distance_from_venue"`
	PriceRange        *string   `json:"price_range"`
	StarRating        *int      `json:"star_rating"`
	Description       *string   `json:"description"`
	Amenities         []string  `json:"amenities"`
	ImageUrls         []string  `json:"image_urls"`
	BookingLink       *string   `json:"booking_link"`
	DisplayOrder      int       `json:"display_order"`
	IsActive          bool      `json:"is_active"`
}

type ReorderItem struct {
	Id           uuid.UUID `json:"id" validate:"required"`
	DisplayOrder int       `json:"display_order"`
}

type ReorderRequest struct {
	Items []ReorderItem `json:"items" validate:"required,min=1,dive"`
}

type DressCodeRequest struct {
	EventName             string           `json:"event_name" validate:"required,max=200"`
	EventDate             *string          `json:"event_date"`
	Description           *string          `json:"description"`
	Theme                 *string          `json:"theme"`
	ColorPalette          []ColorSwatchDTO `json:"color_palette"`
	DressSuggestionsMen   *string          `json:"dress_suggestions_men"`
	DressSuggestionsWomen *string          `json:"dress_suggestions_women"`
	ImageUrls             []string         `json:"image_urls"`
	Notes                 *string          `json:"notes"`
	DisplayOrder          *int             `json:"display_order"`
}

type DressCodeResponse struct {
	Id                    uuid.UUID        `json:"id"`
	EventName             string           `json:"event_name"`
	EventDate             *string          `json:"event_date"`
	Description           *string          `json:"description"`
	Theme                 *string          `json:"theme"`
	ColorPalette          []ColorSwatchDTO `json:"color_palette"`
	DressSuggestionsMen   *string          `json:"dress_suggestions_men"`
	DressSuggestionsWomen *string          `json:"dress_suggestions_women"`
	ImageUrls             []string         `json:"image_urls"`
	Notes                 *string          `json:"notes"`
	DisplayOrder          *int             `json:"display_order"`
}

type DressCodePortalResponse struct {
	DressCodeResponse
	GuestPreference *DressPreferenceResponse `json:"guest_preference"`
}

type FoodMenuRequest struct {
	EventName               *string  `json:"event_name"`
	MenuItems               []string `json:"menu_items"`
	DietaryOptionsAvailable []string `json:"dietary_options_available"`
	Notes                   *string  `json:"notes"`
}

type FoodMenuResponse struct {
	Id                      uuid.UUID `json:"id"`
	EventName               *string   `json:"event_name"`
	MenuItems               []string  `json:"menu_items"`
	DietaryOptionsAvailable []string  `json:"dietary_options_available"`
	Notes                   *string   `json:"notes"`
	CreatedAt               time.Time `json:"created_at"`
}
