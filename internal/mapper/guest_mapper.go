package mapper

import (
	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/model"
)

type GuestMapper struct{}

func NewGuestMapper() *GuestMapper {
	return &GuestMapper{}
}

func (m *GuestMapper) ToEntity(g *model.Guest) *entity.Guest {
	if g == nil {
		return nil
	}
	return &entity.Guest{
		Id:                g.Id,
		WeddingId:         g.WeddingId,
		AccessToken:       g.AccessToken,
		FullName:          g.FullName,
		Email:             g.Email,
		Phone:             g.Phone,
		CountryOfOrigin:   g.CountryOfOrigin,
		RSVPStatus:        entity.RSVPStatus(g.RSVPStatus),
		NumberOfAttendees: g.NumberOfAttendees,
		SpecialRequests:   g.SpecialRequests,
		SongRequests:      g.SongRequests,
		NotesToCouple:     g.NotesToCouple,
		RSVPSubmittedAt:   g.RSVPSubmittedAt,
		LastAccessedAt:    g.LastAccessedAt,
		CreatedAt:         g.CreatedAt,
		UpdatedAt:         updatedAtPtr(g.UpdatedAt),
	}
}

func (m *GuestMapper) ToModel(g *entity.Guest) *model.Guest {
	if g == nil {
		return nil
	}
	return &model.Guest{
		Id:                g.Id,
		WeddingId:         g.WeddingId,
		AccessToken:       g.AccessToken,
		FullName:          g.FullName,
		Email:             g.Email,
		Phone:             g.Phone,
		CountryOfOrigin:   g.CountryOfOrigin,
		RSVPStatus:        string(g.RSVPStatus),
		NumberOfAttendees: g.NumberOfAttendees,
		SpecialRequests:   g.SpecialRequests,
		SongRequests:      g.SongRequests,
		NotesToCouple:     g.NotesToCouple,
		RSVPSubmittedAt:   g.RSVPSubmittedAt,
		LastAccessedAt:    g.LastAccessedAt,
		CreatedAt:         g.CreatedAt,
		UpdatedAt:         derefTime(g.UpdatedAt),
	}
}

func (m *GuestMapper) ToEntities(guests []*model.Guest) []*entity.Guest {
	entities := make([]*entity.Guest, len(guests))
	for i, g := range guests {
		entities[i] = m.ToEntity(g)
	}
	return entities
}
