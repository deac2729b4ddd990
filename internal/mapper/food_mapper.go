package mapper

import (
	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/model"
)

type FoodMapper struct{}

func NewFoodMapper() *FoodMapper {
	return &FoodMapper{}
}

func (m *FoodMapper) MenuToEntity(f *model.FoodMenu) *entity.FoodMenu {
	if f == nil {
		return nil
	}
	return &entity.FoodMenu{
		Id:                      f.Id,
		WeddingId:               f.WeddingId,
		EventName:               f.EventName,
		MenuItems:               []string(f.MenuItems),
		DietaryOptionsAvailable: []string(f.DietaryOptionsAvailable),
		Notes:                   f.Notes,
		CreatedAt:               f.CreatedAt,
	}
}

func (m *FoodMapper) MenuToModel(f *entity.FoodMenu) *model.FoodMenu {
	if f == nil {
		return nil
	}
	return &model.FoodMenu{
		Id:                      f.Id,
		WeddingId:               f.WeddingId,
		EventName:               f.EventName,
		MenuItems:               f.MenuItems,
		DietaryOptionsAvailable: f.DietaryOptionsAvailable,
		Notes:                   f.Notes,
		CreatedAt:               f.CreatedAt,
	}
}

func (m *FoodMapper) MenusToEntities(menus []*model.FoodMenu) []*entity.FoodMenu {
	entities := make([]*entity.FoodMenu, len(menus))
	for i, f := range menus {
		entities[i] = m.MenuToEntity(f)
	}
	return entities
}

func (m *FoodMapper) PreferenceToEntity(p *model.GuestFoodPreference) *entity.GuestFoodPreference {
	if p == nil {
		return nil
	}
	var size *entity.MealSize
	if p.MealSizePreference != nil {
		s := entity.MealSize(*p.MealSizePreference)
		size = &s
	}
	return &entity.GuestFoodPreference{
		Id:                  p.Id,
		GuestId:             p.GuestId,
		DietaryRestrictions: []string(p.DietaryRestrictions),
		Allergies:           p.Allergies,
		CuisinePreferences:  p.CuisinePreferences,
		SpecialRequests:     p.SpecialRequests,
		MealSizePreference:  size,
		UpdatedAt:           updatedAtPtr(p.UpdatedAt),
	}
}

func (m *FoodMapper) PreferenceToModel(p *entity.GuestFoodPreference) *model.GuestFoodPreference {
	if p == nil {
		return nil
	}
	var size *string
	if p.MealSizePreference != nil {
		s := string(*p.MealSizePreference)
		size = &s
	}
	return &model.GuestFoodPreference{
		Id:                  p.Id,
		GuestId:             p.GuestId,
		DietaryRestrictions: p.DietaryRestrictions,
		Allergies:           p.Allergies,
		CuisinePreferences:  p.CuisinePreferences,
		SpecialRequests:     p.SpecialRequests,
		MealSizePreference:  size,
		UpdatedAt:           derefTime(p.UpdatedAt),
	}
}

func (m *FoodMapper) PreferencesToEntities(prefs []*model.GuestFoodPreference) []*entity.GuestFoodPreference {
	entities := make([]*entity.GuestFoodPreference, len(prefs))
	for i, p := range prefs {
		entities[i] = m.PreferenceToEntity(p)
	}
	return entities
}
