package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TravelInfo struct {
	Id                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	GuestId               uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	ArrivalDate           *datatypes.Date
	ArrivalTime           *string `gorm:"type:varchar(20)"`
	ArrivalFlightNumber   *string `gorm:"type:varchar(50)"`
	ArrivalAirport        *string `gorm:"type:varchar(200)"`
	DepartureDate         *datatypes.Date
	DepartureTime         *string   `gorm:"type:varchar(20)"`
	DepartureFlightNumber *string   `gorm:"type:varchar(50)"`
	NeedsPickup           bool      `gorm:"not null;default:false"`
	NeedsDropoff          bool      `gorm:"not null;default:false"`
	SpecialRequirements   *string   `gorm:"type:text"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime"`

	Guest *Guest `gorm:"foreignKey:GuestId;constraint:OnDelete:CASCADE"`
}

func (TravelInfo) TableName() string {
	return "travel_infos"
}

func (m *TravelInfo) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	return nil
}
