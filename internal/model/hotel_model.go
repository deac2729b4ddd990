package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type HotelInfo struct {
	Id                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	GuestId             uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	SuggestedHotelId    *uuid.UUID `gorm:"type:uuid;index"`
	CustomHotelName     *string    `gorm:"type:varchar(200)"`
	CustomHotelAddress  *string    `gorm:"type:text"`
	CheckInDate         *datatypes.Date
	CheckOutDate        *datatypes.Date
	RoomType            *string   `gorm:"type:varchar(100)"`
	NumberOfRooms       int       `gorm:"not null;default:1"`
	SpecialRequests     *string   `gorm:"type:text"`
	BookingConfirmation *string   `gorm:"type:varchar(200)"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`

	Guest          *Guest          `gorm:"foreignKey:GuestId;constraint:OnDelete:CASCADE"`
	SuggestedHotel *SuggestedHotel `gorm:"foreignKey:SuggestedHotelId;constraint:OnDelete:SET NULL"`
}

func (HotelInfo) TableName() string {
	return "hotel_infos"
}

func (m *HotelInfo) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	return nil
}

type SuggestedHotel struct {
	Id                uuid.UUID                  `gorm:"type:uuid;primaryKey"`
	WeddingId         uuid.UUID                  `gorm:"type:uuid;not null;index"`
	HotelName         string                     `gorm:"type:varchar(200);not null"`
	Address           *string                    `gorm:"type:text"`
	WebsiteUrl        *string                    `gorm:"type:varchar(500)"`
	Phone             *string                    `gorm:"type:varchar(50)"`
	DistanceFromVenue *string                    `gorm:"type:varchar(100)"`
	PriceRange        *string                    `gorm:"type:varchar(100)"`
	StarRating        *int
	Description       *string                    `gorm:"type:text"`
	Amenities         datatypes.JSONSlice[string]
	ImageUrls         datatypes.JSONSlice[string]
	BookingLink       *string   `gorm:"type:varchar(500)"`
	DisplayOrder      int       `gorm:"not null;default:0"`
	IsActive          bool      `gorm:"not null"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`

	Wedding *Wedding `gorm:"foreignKey:WeddingId;constraint:OnDelete:CASCADE"`
}

func (SuggestedHotel) TableName() string {
	return "suggested_hotels"
}

func (m *SuggestedHotel) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	return nil
}
