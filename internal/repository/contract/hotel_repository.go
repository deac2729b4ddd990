package contract

import (
	"context"

	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/repository/specification"

	"github.com/google/uuid"
)

type HotelInfoRepository interface {
	Create(ctx context.Context, info *entity.HotelInfo) error
	Update(ctx context.Context, info *entity.HotelInfo) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.HotelInfo, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteByGuestId(ctx context.Context, guestId uuid.UUID) error
}

type SuggestedHotelRepository interface {
	Create(ctx context.Context, hotel *entity.SuggestedHotel) error
	Update(ctx context.Context, hotel *entity.SuggestedHotel) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SuggestedHotel, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SuggestedHotel, error)
	UpdateDisplayOrder(ctx context.Context, weddingId, id uuid.UUID, order int) error
}
