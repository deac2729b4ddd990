package main

import (
	"log"
	"time"

	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/model"
	"wedding-portal-be/internal/service"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// SeedCatalog adds hotels, dress codes, a menu and activities.
func SeedCatalog(db *gorm.DB, wedding *model.Wedding) {
	hotels := []model.SuggestedHotel{
		{WeddingId: wedding.Id, HotelName: "Riad Atlas", DistanceFromVenue: strPtr("5 min walk"), PriceRange: strPtr("$$"), StarRating: intPtr(4), DisplayOrder: 0, IsActive: true, Amenities: datatypes.JSONSlice[string]{"pool", "breakfast"}},
		{WeddingId: wedding.Id, HotelName: "Medina Suites", DistanceFromVenue: strPtr("15 min drive"), PriceRange: strPtr("$$$"), StarRating: intPtr(5), DisplayOrder: 1, IsActive: true, Amenities: datatypes.JSONSlice[string]{"spa", "airport shuttle"}},
	}
	for _, h := range hotels {
		if err := db.Create(&h).Error; err != nil {
			log.Printf("Error creating hotel '%s': %v", h.HotelName, err)
		}
	}

	dressCodes := []model.DressCode{
		{
			WeddingId:    wedding.Id,
			EventName:    "Henna Night",
			Theme:        strPtr("Garden festive"),
			ColorPalette: datatypes.JSONSlice[entity.ColorSwatch]{{Name: "Emerald", Hex: "#046307"}, {Name: "Gold", Hex: "#D4AF37"}},
			DisplayOrder: intPtr(0),
		},
		{
			WeddingId:    wedding.Id,
			EventName:    "Ceremony",
			Theme:        strPtr("Black tie"),
			ColorPalette: datatypes.JSONSlice[entity.ColorSwatch]{{Name: "Ivory", Hex: "#FFFFF0"}},
			DisplayOrder: intPtr(1),
		},
	}
	for _, d := range dressCodes {
		if err := db.Create(&d).Error; err != nil {
			log.Printf("Error creating dress code '%s': %v", d.EventName, err)
		}
	}

	menu := model.FoodMenu{
		WeddingId:               wedding.Id,
		EventName:               strPtr("Reception dinner"),
		MenuItems:               datatypes.JSONSlice[string]{"Lamb tagine", "Vegetable couscous", "Pastilla"},
		DietaryOptionsAvailable: datatypes.JSONSlice[string]{"vegetarian", "vegan", "gluten_free", "halal"},
	}
	if err := db.Create(&menu).Error; err != nil {
		log.Printf("Error creating food menu: %v", err)
	}

	dinner := wedding.WeddingDate.AddDate(0, 0, -1).Add(19 * time.Hour)
	activities := []model.Activity{
		{WeddingId: wedding.Id, ActivityName: "Welcome Dinner", EventDay: intPtr(1), DateTime: &dinner, Location: strPtr("Riad Atlas rooftop"), IsOptional: false, RequiresSignup: false, DisplayOrder: intPtr(0)},
		{WeddingId: wedding.Id, ActivityName: "Desert Excursion", EventDay: intPtr(2), MaxParticipants: intPtr(20), IsOptional: true, RequiresSignup: true, DisplayOrder: intPtr(1)},
	}
	for _, a := range activities {
		if err := db.Create(&a).Error; err != nil {
			log.Printf("Error creating activity '%s': %v", a.ActivityName, err)
		}
	}

	log.Printf("Catalog seeded: %d hotels, %d dress codes, %d activities", len(hotels), len(dressCodes), len(activities))
}

// SeedGuests adds a few pending guests and prints their portal tokens.
func SeedGuests(db *gorm.DB, wedding *model.Wedding) {
	names := []string{"Amira Haddad", "James Carter", "Sofia Rossi"}
	for _, name := range names {
		token, err := service.NewAccessToken()
		if err != nil {
			log.Fatalf("Error generating token: %v", err)
		}
		guest := model.Guest{
			WeddingId:         wedding.Id,
			AccessToken:       token,
			FullName:          name,
			RSVPStatus:        string(entity.RSVPPending),
			NumberOfAttendees: 1,
		}
		if err := db.Create(&guest).Error; err != nil {
			log.Printf("Error creating guest '%s': %v", name, err)
			continue
		}
		log.Printf("Guest %s -> /guest/%s", name, token)
	}
}
