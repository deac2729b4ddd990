package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FoodMenu struct {
	Id                      uuid.UUID `gorm:"type:uuid;primaryKey"`
	WeddingId               uuid.UUID `gorm:"type:uuid;not null;index"`
	EventName               *string   `gorm:"type:varchar(100)"`
	MenuItems               datatypes.JSONSlice[string]
	DietaryOptionsAvailable datatypes.JSONSlice[string]
	Notes                   *string   `gorm:"type:text"`
	CreatedAt               time.Time `gorm:"autoCreateTime"`

	Wedding *Wedding `gorm:"foreignKey:WeddingId;constraint:OnDelete:CASCADE"`
}

func (FoodMenu) TableName() string {
	return "food_menus"
}

func (m *FoodMenu) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	return nil
}

type GuestFoodPreference struct {
	Id                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	GuestId             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	DietaryRestrictions datatypes.JSONSlice[string]
	Allergies           *string   `gorm:"type:text"`
	CuisinePreferences  *string   `gorm:"type:text"`
	SpecialRequests     *string   `gorm:"type:text"`
	MealSizePreference  *string   `gorm:"type:varchar(20)"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`

	Guest *Guest `gorm:"foreignKey:GuestId;constraint:OnDelete:CASCADE"`
}

func (GuestFoodPreference) TableName() string {
	return "guest_food_preferences"
}

func (m *GuestFoodPreference) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	return nil
}
