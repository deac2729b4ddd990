package mapper

import (
	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/model"
)

type HotelMapper struct{}

func NewHotelMapper() *HotelMapper {
	return &HotelMapper{}
}

func (m *HotelMapper) InfoToEntity(h *model.HotelInfo) *entity.HotelInfo {
	if h == nil {
		return nil
	}
	return &entity.HotelInfo{
		Id:                  h.Id,
		GuestId:             h.GuestId,
		SuggestedHotelId:    h.SuggestedHotelId,
		CustomHotelName:     h.CustomHotelName,
		CustomHotelAddress:  h.CustomHotelAddress,
		CheckInDate:         fromDate(h.CheckInDate),
		CheckOutDate:        fromDate(h.CheckOutDate),
		RoomType:            h.RoomType,
		NumberOfRooms:       h.NumberOfRooms,
		SpecialRequests:     h.SpecialRequests,
		BookingConfirmation: h.BookingConfirmation,
		UpdatedAt:           updatedAtPtr(h.UpdatedAt),
	}
}

func (m *HotelMapper) InfoToModel(h *entity.HotelInfo) *model.HotelInfo {
	if h == nil {
		return nil
	}
	return &model.HotelInfo{
		Id:                  h.Id,
		GuestId:             h.GuestId,
		SuggestedHotelId:    h.SuggestedHotelId,
		CustomHotelName:     h.CustomHotelName,
		CustomHotelAddress:  h.CustomHotelAddress,
		CheckInDate:         toDate(h.CheckInDate),
		CheckOutDate:        toDate(h.CheckOutDate),
		RoomType:            h.RoomType,
		NumberOfRooms:       h.NumberOfRooms,
		SpecialRequests:     h.SpecialRequests,
		BookingConfirmation: h.BookingConfirmation,
		UpdatedAt:           derefTime(h.UpdatedAt),
	}
}

func (m *HotelMapper) SuggestedToEntity(h *model.SuggestedHotel) *entity.SuggestedHotel {
	if h == nil {
		return nil
	}
	return &entity.SuggestedHotel{
		Id:                h.Id,
		WeddingId:         h.WeddingId,
		HotelName:         h.HotelName,
		Address:           h.Address,
		WebsiteUrl:        h.WebsiteUrl,
		Phone:             h.Phone,
		DistanceFromVenue: h.DistanceFromVenue,
		PriceRange:        h.PriceRange,
		StarRating:        h.StarRating,
		Description:       h.Description,
		Amenities:         []string(h.Amenities),
		ImageUrls:         []string(h.ImageUrls),
		BookingLink:       h.BookingLink,
		DisplayOrder:      h.DisplayOrder,
		IsActive:          h.IsActive,
		CreatedAt:         h.CreatedAt,
	}
}

func (m *HotelMapper) SuggestedToModel(h *entity.SuggestedHotel) *model.SuggestedHotel {
	if h == nil {
		return nil
	}
	return &model.SuggestedHotel{
		Id:                h.Id,
		WeddingId:         h.WeddingId,
		HotelName:         h.HotelName,
		Address:           h.Address,
		WebsiteUrl:        h.WebsiteUrl,
		Phone:             h.Phone,
		DistanceFromVenue: h.DistanceFromVenue,
		PriceRange:        h.PriceRange,
		StarRating:        h.StarRating,
		Description:       h.Description,
		Amenities:         h.Amenities,
		ImageUrls:         h.ImageUrls,
		BookingLink:       h.BookingLink,
		DisplayOrder:      h.DisplayOrder,
		IsActive:          h.IsActive,
		CreatedAt:         h.CreatedAt,
	}
}

func (m *HotelMapper) SuggestedToEntities(hotels []*model.SuggestedHotel) []*entity.SuggestedHotel {
	entities := make([]*entity.SuggestedHotel, len(hotels))
	for i, h := range hotels {
		entities[i] = m.SuggestedToEntity(h)
	}
	return entities
}
