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

type HotelInfoRepositoryImpl struct {
	gormRepository[model.HotelInfo, entity.HotelInfo]
}

func NewHotelInfoRepository(db *gorm.DB) contract.HotelInfoRepository {
	m := mapper.NewHotelMapper()
	return &HotelInfoRepositoryImpl{
		gormRepository[model.HotelInfo, entity.HotelInfo]{db: db, toEntity: m.InfoToEntity, toModel: m.InfoToModel},
	}
}

func (r *HotelInfoRepositoryImpl) Create(ctx context.Context, info *entity.HotelInfo) error {
	return r.create(ctx, info)
}

func (r *HotelInfoRepositoryImpl) Update(ctx context.Context, info *entity.HotelInfo) error {
	return r.update(ctx, info)
}

func (r *HotelInfoRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.HotelInfo, error) {
	return r.findOne(ctx, specs...)
}

func (r *HotelInfoRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return r.count(ctx, specs...)
}

func (r *HotelInfoRepositoryImpl) DeleteByGuestId(ctx context.Context, guestId uuid.UUID) error {
	return r.deleteWhere(ctx, "guest_id = ?", guestId)
}

type SuggestedHotelRepositoryImpl struct {
	gormRepository[model.SuggestedHotel, entity.SuggestedHotel]
}

func NewSuggestedHotelRepository(db *gorm.DB) contract.SuggestedHotelRepository {
	m := mapper.NewHotelMapper()
	return &SuggestedHotelRepositoryImpl{
		gormRepository[model.SuggestedHotel, entity.SuggestedHotel]{db: db, toEntity: m.SuggestedToEntity, toModel: m.SuggestedToModel},
	}
}

func (r *SuggestedHotelRepositoryImpl) Create(ctx context.Context, hotel *entity.SuggestedHotel) error {
	return r.create(ctx, hotel)
}

func (r *SuggestedHotelRepositoryImpl) Update(ctx context.Context, hotel *entity.SuggestedHotel) error {
	return r.update(ctx, hotel)
}

// Delete detaches guests' hotel choices first so no HotelInfo points at a
// missing hotel on databases without ON DELETE SET NULL.
func (r *SuggestedHotelRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Model(&model.HotelInfo{}).
		Where("suggested_hotel_id = ?", id).
		UpdateColumn("suggested_hotel_id", nil).Error; err != nil {
		return err
	}
	return r.delete(ctx, id)
}

func (r *SuggestedHotelRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SuggestedHotel, error) {
	return r.findOne(ctx, specs...)
}

func (r *SuggestedHotelRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SuggestedHotel, error) {
	return r.findAll(ctx, specs...)
}

func (r *SuggestedHotelRepositoryImpl) UpdateDisplayOrder(ctx context.Context, weddingId, id uuid.UUID, order int) error {
	return r.db.WithContext(ctx).
		Model(&model.SuggestedHotel{}).
		Where("id = ? AND wedding_id = ?", id, weddingId).
		UpdateColumn("display_order", order).Error
}
