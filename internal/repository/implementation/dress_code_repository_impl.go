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

type DressCodeRepositoryImpl struct {
	gormRepository[model.DressCode, entity.DressCode]
}

func NewDressCodeRepository(db *gorm.DB) contract.DressCodeRepository {
	m := mapper.NewDressCodeMapper()
	return &DressCodeRepositoryImpl{
		gormRepository[model.DressCode, entity.DressCode]{db: db, toEntity: m.ToEntity, toModel: m.ToModel},
	}
}

func (r *DressCodeRepositoryImpl) Create(ctx context.Context, code *entity.DressCode) error {
	return r.create(ctx, code)
}

func (r *DressCodeRepositoryImpl) Update(ctx context.Context, code *entity.DressCode) error {
	return r.update(ctx, code)
}

func (r *DressCodeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, id)
}

func (r *DressCodeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DressCode, error) {
	return r.findOne(ctx, specs...)
}

func (r *DressCodeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DressCode, error) {
	return r.findAll(ctx, specs...)
}

type GuestDressPreferenceRepositoryImpl struct {
	gormRepository[model.GuestDressPreference, entity.GuestDressPreference]
}

func NewGuestDressPreferenceRepository(db *gorm.DB) contract.GuestDressPreferenceRepository {
	m := mapper.NewDressCodeMapper()
	return &GuestDressPreferenceRepositoryImpl{
		gormRepository[model.GuestDressPreference, entity.GuestDressPreference]{db: db, toEntity: m.PreferenceToEntity, toModel: m.PreferenceToModel},
	}
}

func (r *GuestDressPreferenceRepositoryImpl) Create(ctx context.Context, pref *entity.GuestDressPreference) error {
	return r.create(ctx, pref)
}

func (r *GuestDressPreferenceRepositoryImpl) Update(ctx context.Context, pref *entity.GuestDressPreference) error {
	return r.update(ctx, pref)
}

func (r *GuestDressPreferenceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GuestDressPreference, error) {
	return r.findOne(ctx, specs...)
}

func (r *GuestDressPreferenceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GuestDressPreference, error) {
	return r.findAll(ctx, specs...)
}

func (r *GuestDressPreferenceRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return r.count(ctx, specs...)
}

func (r *GuestDressPreferenceRepositoryImpl) DeleteByGuestId(ctx context.Context, guestId uuid.UUID) error {
	return r.deleteWhere(ctx, "guest_id = ?", guestId)
}

func (r *GuestDressPreferenceRepositoryImpl) DeleteByDressCodeId(ctx context.Context, dressCodeId uuid.UUID) error {
	return r.deleteWhere(ctx, "dress_code_id = ?", dressCodeId)
}
