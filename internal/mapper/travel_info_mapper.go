package mapper

import (
	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/model"
)

type TravelInfoMapper struct{}

func NewTravelInfoMapper() *TravelInfoMapper {
	return &TravelInfoMapper{}
}

func (m *TravelInfoMapper) ToEntity(t *model.TravelInfo) *entity.TravelInfo {
	if t == nil {
		return nil
	}
	return &entity.TravelInfo{
		Id:                    t.Id,
		GuestId:               t.GuestId,
		ArrivalDate:           fromDate(t.ArrivalDate),
		ArrivalTime:           t.ArrivalTime,
		ArrivalFlightNumber:   t.ArrivalFlightNumber,
		ArrivalAirport:        t.ArrivalAirport,
		DepartureDate:         fromDate(t.DepartureDate),
		DepartureTime:         t.DepartureTime,
		DepartureFlightNumber: t.DepartureFlightNumber,
		NeedsPickup:           t.NeedsPickup,
		NeedsDropoff:          t.NeedsDropoff,
		SpecialRequirements:   t.SpecialRequirements,
		UpdatedAt:             updatedAtPtr(t.UpdatedAt),
	}
}

func (m *TravelInfoMapper) ToModel(t *entity.TravelInfo) *model.TravelInfo {
	if t == nil {
		return nil
	}
	return &model.TravelInfo{
		Id:                    t.Id,
		GuestId:               t.GuestId,
		ArrivalDate:           toDate(t.ArrivalDate),
		ArrivalTime:           t.ArrivalTime,
		ArrivalFlightNumber:   t.ArrivalFlightNumber,
		ArrivalAirport:        t.ArrivalAirport,
		DepartureDate:         toDate(t.DepartureDate),
		DepartureTime:         t.DepartureTime,
		DepartureFlightNumber: t.DepartureFlightNumber,
		NeedsPickup:           t.NeedsPickup,
		NeedsDropoff:          t.NeedsDropoff,
		SpecialRequirements:   t.SpecialRequirements,
		UpdatedAt:             derefTime(t.UpdatedAt),
	}
}
