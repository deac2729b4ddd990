package model

// All lists every table in migration order (parents before children).
func All() []interface{} {
	return []interface{}{
		&Wedding{},
		&Guest{},
		&SuggestedHotel{},
		&DressCode{},
		&FoodMenu{},
		&Activity{},
		&TravelInfo{},
		&HotelInfo{},
		&GuestDressPreference{},
		&GuestFoodPreference{},
		&GuestActivity{},
		&MediaUpload{},
		&ChatbotLog{},
		&ChatbotSettings{},
	}
}
