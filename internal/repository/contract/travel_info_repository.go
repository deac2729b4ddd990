package contract

import (
	"context"

	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TravelInfoRepository interface {
	Create(ctx context.Context, info *entity.TravelInfo) error
	Update(ctx context.Context, info *entity.TravelInfo) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TravelInfo, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteByGuestId(ctx context.Context, guestId uuid.UUID) error
}
