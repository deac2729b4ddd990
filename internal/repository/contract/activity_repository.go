package contract

import (
	"context"

	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	Update(ctx context.Context, activity *entity.Activity) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Activity, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Activity, error)
}

type GuestActivityRepository interface {
	Create(ctx context.Context, registration *entity.GuestActivity) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GuestActivity, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GuestActivity, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	SumParticipants(ctx context.Context, activityId uuid.UUID) (int, error)
	SumParticipantsByActivity(ctx context.Context, activityIds []uuid.UUID) (map[uuid.UUID]int, error)
	DeleteByGuestId(ctx context.Context, guestId uuid.UUID) error
	DeleteByActivityId(ctx context.Context, activityId uuid.UUID) error
}
