package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MediaUpload struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	WeddingId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	GuestId      uuid.UUID  `gorm:"type:uuid;not null;index"`
	FileType     string     `gorm:"type:varchar(10);not null"`
	FileName     string     `gorm:"type:varchar(300)"`
	ObjectKey    string     `gorm:"type:varchar(500)"`
	FileUrl      string     `gorm:"type:varchar(1000)"`
	FileSize     int64
	ThumbnailUrl *string   `gorm:"type:varchar(1000)"`
	Caption      *string   `gorm:"type:text"`
	EventTag     *string   `gorm:"type:varchar(100)"`
	IsApproved   bool      `gorm:"not null;default:false;index"`
	UploadedAt   time.Time `gorm:"not null"`
	ApprovedAt   *time.Time

	Guest *Guest `gorm:"foreignKey:GuestId;constraint:OnDelete:CASCADE"`
}

func (MediaUpload) TableName() string {
	return "media_uploads"
}

func (m *MediaUpload) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	return nil
}
