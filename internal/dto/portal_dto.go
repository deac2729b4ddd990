package dto

// PortalSnapshotResponse is everything a guest's portal renders in one read.
type PortalSnapshotResponse struct {
	Guest           GuestResponse             `json:"guest"`
	Wedding         WeddingPublicResponse     `json:"wedding"`
	TravelInfo      *TravelInfoResponse       `json:"travel_info"`
	HotelInfo       *HotelInfoResponse        `json:"hotel_info"`
	SuggestedHotels []SuggestedHotelResponse  `json:"suggested_hotels"`
	FoodMenus       []FoodMenuResponse        `json:"food_menus"`
	FoodPreference  *FoodPreferenceResponse   `json:"food_preference"`
	DressCodes      []DressCodePortalResponse `json:"dress_codes"`
	Activities      []ActivityPortalResponse  `json:"activities"`
	Media           []MediaResponse           `json:"media"`
}
