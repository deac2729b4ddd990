package dto

import (
	"time"

	"github.com/google/uuid"
)

type TravelInfoRequest struct {
	ArrivalDate           Optional[string] `json:"arrival_date"`
	ArrivalTime           Optional[string] `json:"arrival_time"`
	ArrivalFlightNumber   Optional[string] `json:"arrival_flight_number"`
	ArrivalAirport        Optional[string] `json:"arrival_airport"`
	DepartureDate         Optional[string] `json:"departure_date"`
	DepartureTime         Optional[string] `json:"departure_time"`
	DepartureFlightNumber Optional[string] `json:"departure_flight_number"`
	NeedsPickup           Optional[bool]   `json:"needs_pickup"`
	NeedsDropoff          Optional[bool]   `json:"needs_dropoff"`
	SpecialRequirements   Optional[string] `json:"special_requirements"`
}

type TravelInfoResponse struct {
	Id                    uuid.UUID  `json:"id"`
	ArrivalDate           *string    `json:"arrival_date"`
	ArrivalTime           *string    `json:"arrival_time"`
	ArrivalFlightNumber   *string    `json:"arrival_flight_number"`
	ArrivalAirport        *string    `json:"arrival_airport"`
	DepartureDate         *string    `json:"departure_date"`
	DepartureTime         *string    `json:"departure_time"`
	DepartureFlightNumber *string    `json:"departure_flight_number"`
	NeedsPickup           bool       `json:"needs_pickup"`
	NeedsDropoff          bool       `json:"needs_dropoff"`
	SpecialRequirements   *string    `json:"special_requirements"`
	UpdatedAt             *time.Time `json:"updated_at"`
}

type HotelInfoRequest struct {
	SuggestedHotelId    Optional[uuid.UUID] `json:"suggested_hotel_id"`
	CustomHotelName     Optional[string]    `json:"custom_hotel_name"`
	CustomHotelAddress  Optional[string]    `json:"custom_hotel_address"`
	CheckInDate         Optional[string]    `json:"check_in_date"`
	CheckOutDate        Optional[string]    `json:"check_out_date"`
	RoomType            Optional[string]    `json:"room_type"`
	NumberOfRooms       Optional[int]       `json:"number_of_rooms"`
	SpecialRequests     Optional[string]    `json:"special_requests"`
	BookingConfirmation Optional[string]    `json:"booking_confirmation"`
}

type HotelInfoResponse struct {
	Id                  uuid.UUID               `json:"id"`
	SuggestedHotelId    *uuid.UUID              `json:"suggested_hotel_id"`
	SuggestedHotel      *SuggestedHotelResponse `json:"suggested_hotel"`
	CustomHotelName     *string                 `json:"custom_hotel_name"`
	CustomHotelAddress  *string                 `json:"custom_hotel_address"`
	CheckInDate         *string                 `json:"check_in_date"`
	CheckOutDate        *string                 `json:"check_out_date"`
	RoomType            *string                 `json:"room_type"`
	NumberOfRooms       int                     `json:"number_of_rooms"`
	SpecialRequests     *string                 `json:"special_requests"`
	BookingConfirmation *string                 `json:"booking_confirmation"`
	UpdatedAt           *time.Time              `json:"updated_at"`
}

type FoodPreferenceRequest struct {
	DietaryRestrictions Optional[[]string] `json:"dietary_restrictions"`
	Allergies           Optional[string]   `json:"allergies"`
	CuisinePreferences  Optional[string]   `json:"cuisine_preferences"`
	SpecialRequests     Optional[string]   `json:"special_requests"`
	MealSizePreference  Optional[string]   `json:"meal_size_preference"`
}

type FoodPreferenceResponse struct {
	Id                  uuid.UUID  `json:"id"`
	DietaryRestrictions []string   `json:"dietary_restrictions"`
	Allergies           *string    `json:"allergies"`
	CuisinePreferences  *string    `json:"cuisine_preferences"`
	SpecialRequests     *string    `json:"special_requests"`
	MealSizePreference  *string    `json:"meal_size_preference"`
	UpdatedAt           *time.Time `json:"updated_at"`
}

type DressPreferenceRequest struct {
	DressCodeId              uuid.UUID        `json:"dress_code_id" validate:"required"`
	PlannedOutfitDescription Optional[string] `json:"planned_outfit_description"`
	ColorChoice              Optional[string] `json:"color_choice"`
	NeedsShoppingAssistance  Optional[bool]   `json:"needs_shopping_assistance"`
	Notes                    Optional[string] `json:"notes"`
}

type DressPreferenceResponse struct {
	Id                       uuid.UUID  `json:"id"`
	DressCodeId              uuid.UUID  `json:"dress_code_id"`
	PlannedOutfitDescription *string    `json:"planned_outfit_description"`
	ColorChoice              *string    `json:"color_choice"`
	NeedsShoppingAssistance  bool       `json:"needs_shopping_assistance"`
	Notes                    *string    `json:"notes"`
	UpdatedAt                *time.Time `json:"updated_at"`
}

// GuestFoodPreferenceItem is one row of the admin dietary overview.
type GuestFoodPreferenceItem struct {
	GuestId    uuid.UUID              `json:"guest_id"`
	GuestName  string                 `json:"guest_name"`
	Preference FoodPreferenceResponse `json:"preference"`
}
