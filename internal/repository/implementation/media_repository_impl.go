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

type MediaUploadRepositoryImpl struct {
	gormRepository[model.MediaUpload, entity.MediaUpload]
}

func NewMediaUploadRepository(db *gorm.DB) contract.MediaUploadRepository {
	m := mapper.NewMediaMapper()
	return &MediaUploadRepositoryImpl{
		gormRepository[model.MediaUpload, entity.MediaUpload]{db: db, toEntity: m.ToEntity, toModel: m.ToModel},
	}
}

func (r *MediaUploadRepositoryImpl) Create(ctx context.Context, media *entity.MediaUpload) error {
	return r.create(ctx, media)
}

func (r *MediaUploadRepositoryImpl) Update(ctx context.Context, media *entity.MediaUpload) error {
	return r.update(ctx, media)
}

func (r *MediaUploadRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, id)
}

func (r *MediaUploadRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MediaUpload, error) {
	return r.findOne(ctx, specs...)
}

func (r *MediaUploadRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MediaUpload, error) {
	return r.findAll(ctx, specs...)
}

func (r *MediaUploadRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return r.count(ctx, specs...)
}

func (r *MediaUploadRepositoryImpl) DeleteByGuestId(ctx context.Context, guestId uuid.UUID) error {
	return r.deleteWhere(ctx, "guest_id = ?", guestId)
}
