package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Wedding struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey"`
	CoupleNames       string    `gorm:"type:varchar(200);not null"`
	WeddingDate       time.Time `gorm:"not null"`
	VenueName         *string   `gorm:"type:varchar(300)"`
	VenueAddress      *string   `gorm:"type:text"`
	VenueCity         *string   `gorm:"type:varchar(100)"`
	VenueCountry      *string   `gorm:"type:varchar(100)"`
	WelcomeMessage    *string   `gorm:"type:text"`
	CoverImageUrl     *string   `gorm:"type:text"`
	StoryTitle        *string   `gorm:"type:varchar(300)"`
	StoryContent      *string   `gorm:"type:text"`
	AdminEmail        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	AdminPasswordHash string    `gorm:"type:varchar(255);not null"`
	IsActive          bool      `gorm:"not null"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (Wedding) TableName() string {
	return "weddings"
}

func (m *Wedding) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	return nil
}
