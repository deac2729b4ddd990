package contract

import (
	"context"

	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DressCodeRepository interface {
	Create(ctx context.Context, code *entity.DressCode) error
	Update(ctx context.Context, code *entity.DressCode) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DressCode, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DressCode, error)
}

type GuestDressPreferenceRepository interface {
	Create(ctx context.Context, pref *entity.GuestDressPreference) error
	Update(ctx context.Context, pref *entity.GuestDressPreference) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GuestDressPreference, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GuestDressPreference, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteByGuestId(ctx context.Context, guestId uuid.UUID) error
	DeleteByDressCodeId(ctx context.Context, dressCodeId uuid.UUID) error
}
