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

type TravelInfoRepositoryImpl struct {
	gormRepository[model.TravelInfo, entity.TravelInfo]
}

func NewTravelInfoRepository(db *gorm.DB) contract.TravelInfoRepository {
	m := mapper.NewTravelInfoMapper()
	return &TravelInfoRepositoryImpl{
		gormRepository[model.TravelInfo, entity.TravelInfo]{db: db, toEntity: m.ToEntity, toModel: m.ToModel},
	}
}

func (r *TravelInfoRepositoryImpl) Create(ctx context.Context, info *entity.TravelInfo) error {
	return r.create(ctx, info)
}

func (r *TravelInfoRepositoryImpl) Update(ctx context.Context, info *entity.TravelInfo) error {
	return r.update(ctx, info)
}

func (r *TravelInfoRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TravelInfo, error) {
	return r.findOne(ctx, specs...)
}

func (r *TravelInfoRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return r.count(ctx, specs...)
}

func (r *TravelInfoRepositoryImpl) DeleteByGuestId(ctx context.Context, guestId uuid.UUID) error {
	return r.deleteWhere(ctx, "guest_id = ?", guestId)
}
