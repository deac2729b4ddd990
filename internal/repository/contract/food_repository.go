package contract

import (
	"context"

	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FoodMenuRepository interface {
	Create(ctx context.Context, menu *entity.FoodMenu) error
	Update(ctx context.Context, menu *entity.FoodMenu) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FoodMenu, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FoodMenu, error)
}

type GuestFoodPreferenceRepository interface {
	Create(ctx context.Context, pref *entity.GuestFoodPreference) error
	Update(ctx context.Context, pref *entity.GuestFoodPreference) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GuestFoodPreference, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GuestFoodPreference, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteByGuestId(ctx context.Context, guestId uuid.UUID) error
}
