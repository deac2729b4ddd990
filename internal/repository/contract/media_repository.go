package contract

import (
	"context"

	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MediaUploadRepository interface {
	Create(ctx context.Context, media *entity.MediaUpload) error
	Update(ctx context.Context, media *entity.MediaUpload) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MediaUpload, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MediaUpload, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteByGuestId(ctx context.Context, guestId uuid.UUID) error
}
