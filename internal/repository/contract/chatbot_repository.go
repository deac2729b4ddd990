package contract

import (
	"context"

	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatbotLogRepository interface {
	Create(ctx context.Context, log *entity.ChatbotLog) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatbotLog, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatbotLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SetHelpful records feedback only if none was recorded before.
	SetHelpful(ctx context.Context, id uuid.UUID, helpful bool) (bool, error)
	Stats(ctx context.Context, weddingId uuid.UUID) (*entity.ChatbotStats, error)
}

type ChatbotSettingsRepository interface {
	Create(ctx context.Context, settings *entity.ChatbotSettings) error
	Update(ctx context.Context, settings *entity.ChatbotSettings) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatbotSettings, error)
}
