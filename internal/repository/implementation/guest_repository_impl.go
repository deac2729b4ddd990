package implementation

import (
	"context"
	"time"

	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/mapper"
	"wedding-portal-be/internal/model"
	"wedding-portal-be/internal/repository/contract"
	"wedding-portal-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GuestRepositoryImpl struct {
	gormRepository[model.Guest, entity.Guest]
	mapper *mapper.GuestMapper
}

func NewGuestRepository(db *gorm.DB) contract.GuestRepository {
	m := mapper.NewGuestMapper()
	return &GuestRepositoryImpl{
		gormRepository: gormRepository[model.Guest, entity.Guest]{db: db, toEntity: m.ToEntity, toModel: m.ToModel},
		mapper:         m,
	}
}

func (r *GuestRepositoryImpl) Create(ctx context.Context, guest *entity.Guest) error {
	return r.create(ctx, guest)
}

func (r *GuestRepositoryImpl) CreateBatch(ctx context.Context, guests []*entity.Guest) error {
	if len(guests) == 0 {
		return nil
	}
	models := make([]*model.Guest, len(guests))
	for i, g := range guests {
		models[i] = r.mapper.ToModel(g)
	}
	if err := r.db.WithContext(ctx).CreateInBatches(models, 100).Error; err != nil {
		return translateError(err)
	}
	for i, m := range models {
		*guests[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

// Update never writes the token or the visit time; those columns have their
// own single-column writers and a stale copy must not overwrite them.
func (r *GuestRepositoryImpl) Update(ctx context.Context, guest *entity.Guest) error {
	m := r.mapper.ToModel(guest)
	err := r.db.WithContext(ctx).
		Omit("access_token", "last_accessed_at", "created_at").
		Save(m).Error
	if err != nil {
		return translateError(err)
	}
	guest.UpdatedAt = &m.UpdatedAt
	return nil
}

func (r *GuestRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, id)
}

func (r *GuestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Guest, error) {
	return r.findOne(ctx, specs...)
}

func (r *GuestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Guest, error) {
	return r.findAll(ctx, specs...)
}

func (r *GuestRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return r.count(ctx, specs...)
}

func (r *GuestRepositoryImpl) ReplaceToken(ctx context.Context, weddingId, guestId uuid.UUID, token string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Guest{}).
		Where("id = ? AND wedding_id = ?", guestId, weddingId).
		Update("access_token", token)
	if result.Error != nil {
		return false, translateError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *GuestRepositoryImpl) TouchLastAccessed(ctx context.Context, guestId uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.Guest{}).
		Where("id = ?", guestId).
		UpdateColumn("last_accessed_at", at).Error
}

func (r *GuestRepositoryImpl) CountByRSVP(ctx context.Context, weddingId uuid.UUID) (map[entity.RSVPStatus]int64, error) {
	var rows []struct {
		RSVPStatus string `gorm:"column:rsvp_status"`
		Total      int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.Guest{}).
		Select("rsvp_status, COUNT(*) AS total").
		Where("wedding_id = ?", weddingId).
		Group("rsvp_status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := map[entity.RSVPStatus]int64{
		entity.RSVPPending:   0,
		entity.RSVPConfirmed: 0,
		entity.RSVPDeclined:  0,
		entity.RSVPMaybe:     0,
	}
	for _, row := range rows {
		counts[entity.RSVPStatus(row.RSVPStatus)] = row.Total
	}
	return counts, nil
}

func (r *GuestRepositoryImpl) SumAttendees(ctx context.Context, weddingId uuid.UUID, status entity.RSVPStatus) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Guest{}).
		Select("COALESCE(SUM(number_of_attendees), 0)").
		Where("wedding_id = ? AND rsvp_status = ?", weddingId, string(status)).
		Scan(&total).Error
	return total, err
}
