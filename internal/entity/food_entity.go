package entity

import (
	"time"

	"github.com/google/uuid"
)

type MealSize string

const (
	MealSizeRegular MealSize = "regular"
	MealSizeSmall   MealSize = "small"
	MealSizeLarge   MealSize = "large"
)

func (m MealSize) Valid() bool {
	switch m {
	case MealSizeRegular, MealSizeSmall, MealSizeLarge:
		return true
	}
	return false
}

type FoodMenu struct {
	Id                      uuid.UUID
	WeddingId               uuid.UUID
	EventName               *string
	MenuItems               []string
	DietaryOptionsAvailable []string
	Notes                   *string
	CreatedAt               time.Time
}

// GuestFoodPreference is a singleton per guest.
type GuestFoodPreference struct {
	Id                  uuid.UUID
	GuestId             uuid.UUID
	DietaryRestrictions []string
	Allergies           *string
	CuisinePreferences  *string
	SpecialRequests     *string
	MealSizePreference  *MealSize
	UpdatedAt           *time.Time
}
