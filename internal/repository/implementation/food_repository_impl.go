package implementation

import (
	"context"

	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/mapper"
	"wedding-portal-be/internal/model"
	"wedding-portal-be/internal/repository/contract"
	"wedding-portal-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FoodMenuRepositoryImpl struct {
	gormRepository[model.FoodMenu, entity.FoodMenu]
}

func NewFoodMenuRepository(db *gorm.DB) contract.FoodMenuRepository {
	m := mapper.NewFoodMapper()
	return &FoodMenuRepositoryImpl{
		gormRepository[model.FoodMenu, entity.FoodMenu]{db: db, toEntity: m.MenuToEntity, toModel: m.MenuToModel},
	}
}

func (r *FoodMenuRepositoryImpl) Create(ctx context.Context, menu *entity.FoodMenu) error {
	return r.create(ctx, menu)
}

func (r *FoodMenuRepositoryImpl) Update(ctx context.Context, menu *entity.FoodMenu) error {
	return r.update(ctx, menu)
}

func (r *FoodMenuRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, id)
}

func (r *FoodMenuRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FoodMenu, error) {
	return r.findOne(ctx, specs...)
}

func (r *FoodMenuRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FoodMenu, error) {
	return r.findAll(ctx, specs...)
}

type GuestFoodPreferenceRepositoryImpl struct {
	gormRepository[model.GuestFoodPreference, entity.GuestFoodPreference]
}

func NewGuestFoodPreferenceRepository(db *gorm.DB) contract.GuestFoodPreferenceRepository {
	m := mapper.NewFoodMapper()
	return &GuestFoodPreferenceRepositoryImpl{
		gormRepository[model.GuestFoodPreference, entity.GuestFoodPreference]{db: db, toEntity: m.PreferenceToEntity, toModel: m.PreferenceToModel},
	}
}

func (r *GuestFoodPreferenceRepositoryImpl) Create(ctx context.Context, pref *entity.GuestFoodPreference) error {
	return r.create(ctx, pref)
}

func (r *GuestFoodPreferenceRepositoryImpl) Update(ctx context.Context, pref *entity.GuestFoodPreference) error {
	return r.update(ctx, pref)
}

func (r *GuestFoodPreferenceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GuestFoodPreference, error) {
	return r.findOne(ctx, specs...)
}

func (r *GuestFoodPreferenceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GuestFoodPreference, error) {
	return r.findAll(ctx, specs...)
}

func (r *GuestFoodPreferenceRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return r.count(ctx, specs...)
}

func (r *GuestFoodPreferenceRepositoryImpl) DeleteByGuestId(ctx context.Context, guestId uuid.UUID) error {
	return r.deleteWhere(ctx, "guest_id = ?", guestId)
}
