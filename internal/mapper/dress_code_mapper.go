package mapper

import (
	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/model"
)

type DressCodeMapper struct{}

func NewDressCodeMapper() *DressCodeMapper {
	return &DressCodeMapper{}
}

func (m *DressCodeMapper) ToEntity(d *model.DressCode) *entity.DressCode {
	if d == nil {
		return nil
	}
	return &entity.DressCode{
		Id:                    d.Id,
		WeddingId:             d.WeddingId,
		EventName:             d.EventName,
		EventDate:             d.EventDate,
		Description:           d.Description,
		Theme:                 d.Theme,
		ColorPalette:          []entity.ColorSwatch(d.ColorPalette),
		DressSuggestionsMen:   d.DressSuggestionsMen,
		DressSuggestionsWomen: d.DressSuggestionsWomen,
		ImageUrls:             []string(d.ImageUrls),
		Notes:                 d.Notes,
		DisplayOrder:          d.DisplayOrder,
		CreatedAt:             d.CreatedAt,
	}
}

func (m *DressCodeMapper) ToModel(d *entity.DressCode) *model.DressCode {
	if d == nil {
		return nil
	}
	return &model.DressCode{
		Id:                    d.Id,
		WeddingId:             d.WeddingId,
		EventName:             d.EventName,
		EventDate:             d.EventDate,
		Description:           d.Description,
		Theme:                 d.Theme,
		ColorPalette:          d.ColorPalette,
		DressSuggestionsMen:   d.DressSuggestionsMen,
		DressSuggestionsWomen: d.DressSuggestionsWomen,
		ImageUrls:             d.ImageUrls,
		Notes:                 d.Notes,
		DisplayOrder:          d.DisplayOrder,
		CreatedAt:             d.CreatedAt,
	}
}

func (m *DressCodeMapper) ToEntities(codes []*model.DressCode) []*entity.DressCode {
	entities := make([]*entity.DressCode, len(codes))
	for i, d := range codes {
		entities[i] = m.ToEntity(d)
	}
	return entities
}

func (m *DressCodeMapper) PreferenceToEntity(p *model.GuestDressPreference) *entity.GuestDressPreference {
	if p == nil {
		return nil
	}
	return &entity.GuestDressPreference{
		Id:                       p.Id,
		GuestId:                  p.GuestId,
		DressCodeId:              p.DressCodeId,
		PlannedOutfitDescription: p.PlannedOutfitDescription,
		ColorChoice:              p.ColorChoice,
		NeedsShoppingAssistance:  p.NeedsShoppingAssistance,
		Notes:                    p.Notes,
		UpdatedAt:                updatedAtPtr(p.UpdatedAt),
	}
}

func (m *DressCodeMapper) PreferenceToModel(p *entity.GuestDressPreference) *model.GuestDressPreference {
	if p == nil {
		return nil
	}
	return &model.GuestDressPreference{
		Id:                       p.Id,
		GuestId:                  p.GuestId,
		DressCodeId:              p.DressCodeId,
		PlannedOutfitDescription: p.PlannedOutfitDescription,
		ColorChoice:              p.ColorChoice,
		NeedsShoppingAssistance:  p.NeedsShoppingAssistance,
		Notes:                    p.Notes,
		UpdatedAt:                derefTime(p.UpdatedAt),
	}
}

func (m *DressCodeMapper) PreferencesToEntities(prefs []*model.GuestDressPreference) []*entity.GuestDressPreference {
	entities := make([]*entity.GuestDressPreference, len(prefs))
	for i, p := range prefs {
		entities[i] = m.PreferenceToEntity(p)
	}
	return entities
}
