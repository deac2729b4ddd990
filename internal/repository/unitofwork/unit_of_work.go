package unitofwork

import (
	"context"

	"wedding-portal-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	WeddingRepository() contract.WeddingRepository
	GuestRepository() contract.GuestRepository

	TravelInfoRepository() contract.TravelInfoRepository
	HotelInfoRepository() contract.HotelInfoRepository
	SuggestedHotelRepository() contract.SuggestedHotelRepository
	DressCodeRepository() contract.DressCodeRepository
	GuestDressPreferenceRepository() contract.GuestDressPreferenceRepository
	FoodMenuRepository() contract.FoodMenuRepository
	GuestFoodPreferenceRepository() contract.GuestFoodPreferenceRepository

	ActivityRepository() contract.ActivityRepository
	GuestActivityRepository() contract.GuestActivityRepository

	MediaUploadRepository() contract.MediaUploadRepository

	ChatbotLogRepository() contract.ChatbotLogRepository
	ChatbotSettingsRepository() contract.ChatbotSettingsRepository
}
