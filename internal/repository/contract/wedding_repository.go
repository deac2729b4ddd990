package contract

import (
	"context"

	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/repository/specification"
)

type WeddingRepository interface {
	Create(ctx context.Context, wedding *entity.Wedding) error
	Update(ctx context.Context, wedding *entity.Wedding) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Wedding, error)
}
