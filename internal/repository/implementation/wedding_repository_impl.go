package implementation

import (
	"context"

	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/mapper"
	"wedding-portal-be/internal/model"
	"wedding-portal-be/internal/repository/contract"
	"wedding-portal-be/internal/repository/specification"

	"gorm.io/gorm"
)

type WeddingRepositoryImpl struct {
	gormRepository[model.Wedding, entity.Wedding]
}

func NewWeddingRepository(db *gorm.DB) contract.WeddingRepository {
	m := mapper.NewWeddingMapper()
	return &WeddingRepositoryImpl{
		gormRepository[model.Wedding, entity.Wedding]{db: db, toEntity: m.ToEntity, toModel: m.ToModel},
	}
}

func (r *WeddingRepositoryImpl) Create(ctx context.Context, wedding *entity.Wedding) error {
	return r.create(ctx, wedding)
}

func (r *WeddingRepositoryImpl) Update(ctx context.Context, wedding *entity.Wedding) error {
	return r.update(ctx, wedding)
}

func (r *WeddingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Wedding, error) {
	return r.findOne(ctx, specs...)
}
