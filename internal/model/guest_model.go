package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Guest struct {
	Id                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	WeddingId         uuid.UUID  `gorm:"type:uuid;not null;index"`
	AccessToken       string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	FullName          string     `gorm:"type:varchar(200);not null"`
	Email             *string    `gorm:"type:varchar(200)"`
	Phone             *string    `gorm:"type:varchar(50)"`
	CountryOfOrigin   *string    `gorm:"type:varchar(100)"`
	RSVPStatus        string     `gorm:"column:rsvp_status;type:varchar(20);not null;default:'pending';index"`
	NumberOfAttendees int        `gorm:"not null;default:1"`
	SpecialRequests   *string    `gorm:"type:text"`
	SongRequests      *string    `gorm:"type:text"`
	NotesToCouple     *string    `gorm:"type:text"`
	RSVPSubmittedAt   *time.Time `gorm:"column:rsvp_submitted_at"`
	LastAccessedAt    *time.Time
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`

	Wedding *Wedding `gorm:"foreignKey:WeddingId;constraint:OnDelete:CASCADE"`
}

func (Guest) TableName() string {
	return "guests"
}

func (m *Guest) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	return nil
}
