package mapper

import (
	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/model"
)

type ActivityMapper struct{}

func NewActivityMapper() *ActivityMapper {
	return &ActivityMapper{}
}

func (m *ActivityMapper) ToEntity(a *model.Activity) *entity.Activity {
	if a == nil {
		return nil
	}
	return &entity.Activity{
		Id:              a.Id,
		WeddingId:       a.WeddingId,
		ActivityName:    a.ActivityName,
		Description:     a.Description,
		EventDay:        a.EventDay,
		DateTime:        a.DateTime,
		DurationMinutes: a.DurationMinutes,
		Location:        a.Location,
		MaxParticipants: a.MaxParticipants,
		IsOptional:      a.IsOptional,
		RequiresSignup:  a.RequiresSignup,
		ImageUrl:        a.ImageUrl,
		Notes:           a.Notes,
		DisplayOrder:    a.DisplayOrder,
		DressCodeInfo:   a.DressCodeInfo,
		DressColors:     []entity.ColorSwatch(a.DressColors),
		FoodDescription: a.FoodDescription,
		DietaryOptions:  []string(a.DietaryOptions),
		CreatedAt:       a.CreatedAt,
	}
}

func (m *ActivityMapper) ToModel(a *entity.Activity) *model.Activity {
	if a == nil {
		return nil
	}
	return &model.Activity{
		Id:              a.Id,
		WeddingId:       a.WeddingId,
		ActivityName:    a.ActivityName,
		Description:     a.Description,
		EventDay:        a.EventDay,
		DateTime:        a.DateTime,
		DurationMinutes: a.DurationMinutes,
		Location:        a.Location,
		MaxParticipants: a.MaxParticipants,
		IsOptional:      a.IsOptional,
		RequiresSignup:  a.RequiresSignup,
		ImageUrl:        a.ImageUrl,
		Notes:           a.Notes,
		DisplayOrder:    a.DisplayOrder,
		DressCodeInfo:   a.DressCodeInfo,
		DressColors:     a.DressColors,
		FoodDescription: a.FoodDescription,
		DietaryOptions:  a.DietaryOptions,
		CreatedAt:       a.CreatedAt,
	}
}

func (m *ActivityMapper) ToEntities(activities []*model.Activity) []*entity.Activity {
	entities := make([]*entity.Activity, len(activities))
	for i, a := range activities {
		entities[i] = m.ToEntity(a)
	}
	return entities
}

func (m *ActivityMapper) RegistrationToEntity(r *model.GuestActivity) *entity.GuestActivity {
	if r == nil {
		return nil
	}
	return &entity.GuestActivity{
		Id:                   r.Id,
		GuestId:              r.GuestId,
		ActivityId:           r.ActivityId,
		NumberOfParticipants: r.NumberOfParticipants,
		Notes:                r.Notes,
		RegisteredAt:         r.RegisteredAt,
	}
}

func (m *ActivityMapper) RegistrationToModel(r *entity.GuestActivity) *model.GuestActivity {
	if r == nil {
		return nil
	}
	return &model.GuestActivity{
		Id:                   r.Id,
		GuestId:              r.GuestId,
		ActivityId:           r.ActivityId,
		NumberOfParticipants: r.NumberOfParticipants,
		Notes:                r.Notes,
		RegisteredAt:         r.RegisteredAt,
	}
}

func (m *ActivityMapper) RegistrationsToEntities(regs []*model.GuestActivity) []*entity.GuestActivity {
	entities := make([]*entity.GuestActivity, len(regs))
	for i, r := range regs {
		entities[i] = m.RegistrationToEntity(r)
	}
	return entities
}
