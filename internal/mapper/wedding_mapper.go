package mapper

import (
	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/model"
)

type WeddingMapper struct{}

func NewWeddingMapper() *WeddingMapper {
	return &WeddingMapper{}
}

func (m *WeddingMapper) ToEntity(w *model.Wedding) *entity.Wedding {
	if w == nil {
		return nil
	}
	return &entity.Wedding{
		Id:                w.Id,
		CoupleNames:       w.CoupleNames,
		WeddingDate:       w.WeddingDate,
		VenueName:         w.VenueName,
		VenueAddress:      w.VenueAddress,
		VenueCity:         w.VenueCity,
		VenueCountry:      w.VenueCountry,
		WelcomeMessage:    w.WelcomeMessage,
		CoverImageUrl:     w.CoverImageUrl,
		StoryTitle:        w.StoryTitle,
		StoryContent:      w.StoryContent,
		AdminEmail:        w.AdminEmail,
		AdminPasswordHash: w.AdminPasswordHash,
		IsActive:          w.IsActive,
		CreatedAt:         w.CreatedAt,
		UpdatedAt:         updatedAtPtr(w.UpdatedAt),
	}
}

func (m *WeddingMapper) ToModel(w *entity.Wedding) *model.Wedding {
	if w == nil {
		return nil
	}
	return &model.Wedding{
		Id:                w.Id,
		CoupleNames:       w.CoupleNames,
		WeddingDate:       w.WeddingDate,
		VenueName:         w.VenueName,
		VenueAddress:      w.VenueAddress,
		VenueCity:         w.VenueCity,
		VenueCountry:      w.VenueCountry,
		WelcomeMessage:    w.WelcomeMessage,
		CoverImageUrl:     w.CoverImageUrl,
		StoryTitle:        w.StoryTitle,
		StoryContent:      w.StoryContent,
		AdminEmail:        w.AdminEmail,
		AdminPasswordHash: w.AdminPasswordHash,
		IsActive:          w.IsActive,
		CreatedAt:         w.CreatedAt,
		UpdatedAt:         derefTime(w.UpdatedAt),
	}
}
