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

type ActivityRepositoryImpl struct {
	gormRepository[model.Activity, entity.Activity]
}

func NewActivityRepository(db *gorm.DB) contract.ActivityRepository {
	m := mapper.NewActivityMapper()
	return &ActivityRepositoryImpl{
		gormRepository[model.Activity, entity.Activity]{db: db, toEntity: m.ToEntity, toModel: m.ToModel},
	}
}

func (r *ActivityRepositoryImpl) Create(ctx context.Context, activity *entity.Activity) error {
	return r.create(ctx, activity)
}

func (r *ActivityRepositoryImpl) Update(ctx context.Context, activity *entity.Activity) error {
	return r.update(ctx, activity)
}

func (r *ActivityRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, id)
}

func (r *ActivityRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Activity, error) {
	return r.findOne(ctx, specs...)
}

func (r *ActivityRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Activity, error) {
	return r.findAll(ctx, specs...)
}

type GuestActivityRepositoryImpl struct {
	gormRepository[model.GuestActivity, entity.GuestActivity]
}

func NewGuestActivityRepository(db *gorm.DB) contract.GuestActivityRepository {
	m := mapper.NewActivityMapper()
	return &GuestActivityRepositoryImpl{
		gormRepository[model.GuestActivity, entity.GuestActivity]{db: db, toEntity: m.RegistrationToEntity, toModel: m.RegistrationToModel},
	}
}

func (r *GuestActivityRepositoryImpl) Create(ctx context.Context, registration *entity.GuestActivity) error {
	return r.create(ctx, registration)
}

func (r *GuestActivityRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, id)
}

func (r *GuestActivityRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GuestActivity, error) {
	return r.findOne(ctx, specs...)
}

func (r *GuestActivityRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GuestActivity, error) {
	return r.findAll(ctx, specs...)
}

func (r *GuestActivityRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return r.count(ctx, specs...)
}

func (r *GuestActivityRepositoryImpl) SumParticipants(ctx context.Context, activityId uuid.UUID) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.GuestActivity{}).
		Select("COALESCE(SUM(number_of_participants), 0)").
		Where("activity_id = ?", activityId).
		Scan(&total).Error
	return int(total), err
}

func (r *GuestActivityRepositoryImpl) SumParticipantsByActivity(ctx context.Context, activityIds []uuid.UUID) (map[uuid.UUID]int, error) {
	totals := make(map[uuid.UUID]int, len(activityIds))
	if len(activityIds) == 0 {
		return totals, nil
	}

	var rows []struct {
		ActivityId uuid.UUID
		Total      int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.GuestActivity{}).
		Select("activity_id, COALESCE(SUM(number_of_participants), 0) AS total").
		Where("activity_id IN ?", activityIds).
		Group("activity_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		totals[row.ActivityId] = int(row.Total)
	}
	return totals, nil
}

func (r *GuestActivityRepositoryImpl) DeleteByGuestId(ctx context.Context, guestId uuid.UUID) error {
	return r.deleteWhere(ctx, "guest_id = ?", guestId)
}

func (r *GuestActivityRepositoryImpl) DeleteByActivityId(ctx context.Context, activityId uuid.UUID) error {
	return r.deleteWhere(ctx, "activity_id = ?", activityId)
}
