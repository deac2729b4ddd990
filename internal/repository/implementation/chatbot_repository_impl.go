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

type ChatbotLogRepositoryImpl struct {
	gormRepository[model.ChatbotLog, entity.ChatbotLog]
}

func NewChatbotLogRepository(db *gorm.DB) contract.ChatbotLogRepository {
	m := mapper.NewChatbotMapper()
	return &ChatbotLogRepositoryImpl{
		gormRepository[model.ChatbotLog, entity.ChatbotLog]{db: db, toEntity: m.LogToEntity, toModel: m.LogToModel},
	}
}

func (r *ChatbotLogRepositoryImpl) Create(ctx context.Context, log *entity.ChatbotLog) error {
	return r.create(ctx, log)
}

func (r *ChatbotLogRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatbotLog, error) {
	return r.findOne(ctx, specs...)
}

func (r *ChatbotLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatbotLog, error) {
	return r.findAll(ctx, specs...)
}

func (r *ChatbotLogRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return r.count(ctx, specs...)
}

func (r *ChatbotLogRepositoryImpl) SetHelpful(ctx context.Context, id uuid.UUID, helpful bool) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.ChatbotLog{}).
		Where("id = ? AND was_helpful IS NULL", id).
		UpdateColumn("was_helpful", helpful)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ChatbotLogRepositoryImpl) Stats(ctx context.Context, weddingId uuid.UUID) (*entity.ChatbotStats, error) {
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&model.ChatbotLog{}).Where("wedding_id = ?", weddingId)
	}

	stats := &entity.ChatbotStats{
		Topics:    map[string]int64{},
		Languages: map[string]int64{},
	}

	if err := base().Count(&stats.TotalMessages).Error; err != nil {
		return nil, err
	}
	if err := base().Distinct("session_id").Count(&stats.UniqueSessions).Error; err != nil {
		return nil, err
	}
	if err := base().Where("could_not_answer = ?", true).Count(&stats.UnansweredCount).Error; err != nil {
		return nil, err
	}
	if err := base().Where("was_helpful = ?", true).Count(&stats.HelpfulCount).Error; err != nil {
		return nil, err
	}
	if err := base().Where("was_helpful IS NOT NULL").Count(&stats.RatedCount).Error; err != nil {
		return nil, err
	}

	var groups []struct {
		Bucket string
		Total  int64
	}
	if err := base().
		Select("topic_detected AS bucket, COUNT(*) AS total").
		Where("topic_detected IS NOT NULL").
		Group("topic_detected").
		Scan(&groups).Error; err != nil {
		return nil, err
	}
	for _, g := range groups {
		stats.Topics[g.Bucket] = g.Total
	}

	groups = nil
	if err := base().
		Select("language AS bucket, COUNT(*) AS total").
		Group("language").
		Scan(&groups).Error; err != nil {
		return nil, err
	}
	for _, g := range groups {
		stats.Languages[g.Bucket] = g.Total
	}

	return stats, nil
}

type ChatbotSettingsRepositoryImpl struct {
	gormRepository[model.ChatbotSettings, entity.ChatbotSettings]
}

func NewChatbotSettingsRepository(db *gorm.DB) contract.ChatbotSettingsRepository {
	m := mapper.NewChatbotMapper()
	return &ChatbotSettingsRepositoryImpl{
		gormRepository[model.ChatbotSettings, entity.ChatbotSettings]{db: db, toEntity: m.SettingsToEntity, toModel: m.SettingsToModel},
	}
}

func (r *ChatbotSettingsRepositoryImpl) Create(ctx context.Context, settings *entity.ChatbotSettings) error {
	return r.create(ctx, settings)
}

func (r *ChatbotSettingsRepositoryImpl) Update(ctx context.Context, settings *entity.ChatbotSettings) error {
	return r.update(ctx, settings)
}

func (r *ChatbotSettingsRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatbotSettings, error) {
	return r.findOne(ctx, specs...)
}
