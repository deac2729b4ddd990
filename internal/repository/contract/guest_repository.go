package contract

import (
	"context"
	"time"

	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/repository/specification"

	"github.com/google/uuid"
)

type GuestRepository interface {
	Create(ctx context.Context, guest *entity.Guest) error
	CreateBatch(ctx context.Context, guests []*entity.Guest) error
	Update(ctx context.Context, guest *entity.Guest) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Guest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Guest, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// ReplaceToken swaps the access token in a single UPDATE and reports
	// whether a row was changed.
	ReplaceToken(ctx context.Context, weddingId, guestId uuid.UUID, token string) (bool, error)
	TouchLastAccessed(ctx context.Context, guestId uuid.UUID, at time.Time) error
	CountByRSVP(ctx context.Context, weddingId uuid.UUID) (map[entity.RSVPStatus]int64, error)
	SumAttendees(ctx context.Context, weddingId uuid.UUID, status entity.RSVPStatus) (int64, error)
}
