package entity

import (
	"time"

	"github.com/google/uuid"
)

// TravelInfo is a singleton per guest.
type TravelInfo struct {
	Id                    uuid.UUID
	GuestId               uuid.UUID
	ArrivalDate           *time.Time
	ArrivalTime           *string
	ArrivalFlightNumber   *string
	ArrivalAirport        *string
	DepartureDate         *time.Time
	DepartureTime         *string
	DepartureFlightNumber *string
	NeedsPickup           bool
	NeedsDropoff          bool
	SpecialRequirements   *string
	UpdatedAt             *time.Time
}
