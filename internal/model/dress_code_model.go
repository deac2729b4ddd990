package model

import (
	"time"

	"wedding-portal-be/internal/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DressCode struct {
	Id                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	WeddingId             uuid.UUID  `gorm:"type:uuid;not null;index"`
	EventName             string     `gorm:"type:varchar(100);not null"`
	EventDate             *time.Time
	Description           *string                                 `gorm:"type:text"`
	Theme                 *string                                 `gorm:"type:varchar(200)"`
	ColorPalette          datatypes.JSONSlice[entity.ColorSwatch]
	DressSuggestionsMen   *string                                 `gorm:"type:text"`
	DressSuggestionsWomen *string                                 `gorm:"type:text"`
	ImageUrls             datatypes.JSONSlice[string]
	Notes                 *string   `gorm:"type:text"`
	DisplayOrder          *int
	CreatedAt             time.Time `gorm:"autoCreateTime"`

	Wedding *Wedding `gorm:"foreignKey:WeddingId;constraint:OnDelete:CASCADE"`
}

func (DressCode) TableName() string {
	return "dress_codes"
}

func (m *DressCode) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	return nil
}

type GuestDressPreference struct {
	Id                       uuid.UUID `gorm:"type:uuid;primaryKey"`
	GuestId                  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_guest_dress_code"`
	DressCodeId              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_guest_dress_code"`
	PlannedOutfitDescription *string   `gorm:"type:text"`
	ColorChoice              *string   `gorm:"type:varchar(50)"`
	NeedsShoppingAssistance  bool      `gorm:"not null;default:false"`
	Notes                    *string   `gorm:"type:text"`
	UpdatedAt                time.Time `gorm:"autoUpdateTime"`

	Guest     *Guest     `gorm:"foreignKey:GuestId;constraint:OnDelete:CASCADE"`
	DressCode *DressCode `gorm:"foreignKey:DressCodeId;constraint:OnDelete:CASCADE"`
}

func (GuestDressPreference) TableName() string {
	return "guest_dress_preferences"
}

func (m *GuestDressPreference) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	return nil
}
