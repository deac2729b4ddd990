package model

import (
	"time"

	"wedding-portal-be/internal/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Activity struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	WeddingId       uuid.UUID  `gorm:"type:uuid;not null;index"`
	ActivityName    string     `gorm:"type:varchar(200);not null"`
	Description     *string    `gorm:"type:text"`
	EventDay        *int
	DateTime        *time.Time
	DurationMinutes *int
	Location        *string `gorm:"type:varchar(300)"`
	MaxParticipants *int
	IsOptional      bool    `gorm:"not null"`
	RequiresSignup  bool    `gorm:"not null"`
	ImageUrl        *string `gorm:"type:text"`
	Notes           *string `gorm:"type:text"`
	DisplayOrder    *int
	DressCodeInfo   *string `gorm:"type:text"`
	DressColors     datatypes.JSONSlice[entity.ColorSwatch]
	FoodDescription *string `gorm:"type:text"`
	DietaryOptions  datatypes.JSONSlice[string]
	CreatedAt       time.Time `gorm:"autoCreateTime"`

	Wedding *Wedding `gorm:"foreignKey:WeddingId;constraint:OnDelete:CASCADE"`
}

func (Activity) TableName() string {
	return "activities"
}

func (m *Activity) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	return nil
}

type GuestActivity struct {
	Id                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	GuestId              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_guest_activity"`
	ActivityId           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_guest_activity;index"`
	NumberOfParticipants int       `gorm:"not null;default:1"`
	Notes                *string   `gorm:"type:text"`
	RegisteredAt         time.Time `gorm:"not null"`

	Guest    *Guest    `gorm:"foreignKey:GuestId;constraint:OnDelete:CASCADE"`
	Activity *Activity `gorm:"foreignKey:ActivityId;constraint:OnDelete:CASCADE"`
}

func (GuestActivity) TableName() string {
	return "guest_activities"
}

func (m *GuestActivity) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	return nil
}
