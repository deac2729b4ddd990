package unitofwork

import (
	"context"
	"fmt"

	"wedding-portal-be/internal/repository/contract"
	"wedding-portal-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	u.tx = tx
	return nil
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) WeddingRepository() contract.WeddingRepository {
	return implementation.NewWeddingRepository(u.getDB())
}

func (u *UnitOfWorkImpl) GuestRepository() contract.GuestRepository {
	return implementation.NewGuestRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TravelInfoRepository() contract.TravelInfoRepository {
	return implementation.NewTravelInfoRepository(u.getDB())
}

func (u *UnitOfWorkImpl) HotelInfoRepository() contract.HotelInfoRepository {
	return implementation.NewHotelInfoRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SuggestedHotelRepository() contract.SuggestedHotelRepository {
	return implementation.NewSuggestedHotelRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DressCodeRepository() contract.DressCodeRepository {
	return implementation.NewDressCodeRepository(u.getDB())
}

func (u *UnitOfWorkImpl) GuestDressPreferenceRepository() contract.GuestDressPreferenceRepository {
	return implementation.NewGuestDressPreferenceRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FoodMenuRepository() contract.FoodMenuRepository {
	return implementation.NewFoodMenuRepository(u.getDB())
}

func (u *UnitOfWorkImpl) GuestFoodPreferenceRepository() contract.GuestFoodPreferenceRepository {
	return implementation.NewGuestFoodPreferenceRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ActivityRepository() contract.ActivityRepository {
	return implementation.NewActivityRepository(u.getDB())
}

func (u *UnitOfWorkImpl) GuestActivityRepository() contract.GuestActivityRepository {
	return implementation.NewGuestActivityRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MediaUploadRepository() contract.MediaUploadRepository {
	return implementation.NewMediaUploadRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChatbotLogRepository() contract.ChatbotLogRepository {
	return implementation.NewChatbotLogRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChatbotSettingsRepository() contract.ChatbotSettingsRepository {
	return implementation.NewChatbotSettingsRepository(u.getDB())
}
