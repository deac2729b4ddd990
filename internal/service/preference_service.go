package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wedding-portal-be/internal/dto"
	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/mapper"
	"wedding-portal-be/internal/pkg/apperror"
	"wedding-portal-be/internal/pkg/logger"
	"wedding-portal-be/internal/repository/specification"
	"wedding-portal-be/internal/repository/unitofwork"
)

const dateLayout = "2006-01-02"

// IPreferenceService upserts the guest's singleton sub-records.
//
// Every request field is tri-state: an omitted field keeps the stored value,
// an explicit null clears it (booleans become false, rooms become 1) and a
// value overwrites it.
type IPreferenceService interface {
	UpsertTravel(ctx context.Context, guest *entity.Guest, req *dto.TravelInfoRequest) (*dto.TravelInfoResponse, error)
	UpsertHotel(ctx context.Context, guest *entity.Guest, req *dto.HotelInfoRequest) (*dto.HotelInfoResponse, error)
	UpsertFood(ctx context.Context, guest *entity.Guest, req *dto.FoodPreferenceRequest) (*dto.FoodPreferenceResponse, error)
	UpsertDress(ctx context.Context, guest *entity.Guest, req *dto.DressPreferenceRequest) (*dto.DressPreferenceResponse, error)
}

type preferenceService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewPreferenceService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IPreferenceService {
	return &preferenceService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

// upsertAttempts is one try plus one retry as an update after losing the
// insert race on the unique key.
const upsertAttempts = 2

func runUpsert[T any](ctx context.Context, s *preferenceService, relation string, fn func(uow unitofwork.UnitOfWork) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 1; attempt <= upsertAttempts; attempt++ {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		if err := uow.Begin(ctx); err != nil {
			return zero, err
		}

		res, err := fn(uow)
		if err == nil {
			err = uow.Commit()
		}
		if err == nil {
			return res, nil
		}
		uow.Rollback()

		if !apperror.IsKind(err, apperror.KindConflict) {
			return zero, err
		}
		lastErr = err
		s.logger.Warn("UPSERT", "Lost insert race, retrying as update", map[string]interface{}{
			"relation": relation,
			"attempt":  attempt,
		})
	}

	return zero, fmt.Errorf("upsert %s did not settle: %w", relation, lastErr)
}

// parseDate validates a YYYY-MM-DD field without touching any row.
// An empty string clears the field like null does.
func parseDate(field string, in dto.Optional[string]) (dto.Optional[time.Time], error) {
	if !in.Set {
		return dto.Optional[time.Time]{}, nil
	}
	value := strings.TrimSpace(in.Value)
	if in.Null || value == "" {
		return dto.Null[time.Time](), nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return dto.Optional[time.Time]{}, apperror.InvalidArgument("%s must be a date in YYYY-MM-DD format", field)
	}
	return dto.Some(t), nil
}

func applyBool(in dto.Optional[bool], dst *bool) {
	if in.Set {
		*dst = in.Value
	}
}

func (s *preferenceService) UpsertTravel(ctx context.Context, guest *entity.Guest, req *dto.TravelInfoRequest) (*dto.TravelInfoResponse, error) {
	arrival, err := parseDate("arrival_date", req.ArrivalDate)
	if err != nil {
		return nil, err
	}
	departure, err := parseDate("departure_date", req.DepartureDate)
	if err != nil {
		return nil, err
	}

	info, err := runUpsert(ctx, s, "travel_info", func(uow unitofwork.UnitOfWork) (*entity.TravelInfo, error) {
		repo := uow.TravelInfoRepository()
		info, err := repo.FindOne(ctx, specification.ByGuest{GuestID: guest.Id})
		if err != nil {
			return nil, err
		}
		isNew := info == nil
		if isNew {
			info = &entity.TravelInfo{GuestId: guest.Id}
		}

		arrival.ApplyTo(&info.ArrivalDate)
		req.ArrivalTime.ApplyTo(&info.ArrivalTime)
		req.ArrivalFlightNumber.ApplyTo(&info.ArrivalFlightNumber)
		req.ArrivalAirport.ApplyTo(&info.ArrivalAirport)
		departure.ApplyTo(&info.DepartureDate)
		req.DepartureTime.ApplyTo(&info.DepartureTime)
		req.DepartureFlightNumber.ApplyTo(&info.DepartureFlightNumber)
		applyBool(req.NeedsPickup, &info.NeedsPickup)
		applyBool(req.NeedsDropoff, &info.NeedsDropoff)
		req.SpecialRequirements.ApplyTo(&info.SpecialRequirements)

		if isNew {
			err = repo.Create(ctx, info)
		} else {
			err = repo.Update(ctx, info)
		}
		return info, err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UPSERT", "Travel info saved", map[string]interface{}{"guest_id": guest.Id.String()})
	return mapper.TravelInfoToResponse(info), nil
}

func (s *preferenceService) UpsertHotel(ctx context.Context, guest *entity.Guest, req *dto.HotelInfoRequest) (*dto.HotelInfoResponse, error) {
	checkIn, err := parseDate("check_in_date", req.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := parseDate("check_out_date", req.CheckOutDate)
	if err != nil {
		return nil, err
	}
	if req.NumberOfRooms.Set && !req.NumberOfRooms.Null && req.NumberOfRooms.Value < 1 {
		return nil, apperror.InvalidArgument("number_of_rooms must be at least 1")
	}

	var suggested *entity.SuggestedHotel
	info, err := runUpsert(ctx, s, "hotel_info", func(uow unitofwork.UnitOfWork) (*entity.HotelInfo, error) {
		suggested = nil
		if req.SuggestedHotelId.Set && !req.SuggestedHotelId.Null {
			hotel, err := uow.SuggestedHotelRepository().FindOne(ctx,
				specification.ByID{ID: req.SuggestedHotelId.Value},
				specification.OwnedByWedding{WeddingID: guest.WeddingId},
			)
			if err != nil {
				return nil, err
			}
			if hotel == nil {
				return nil, apperror.NotFound("suggested hotel not found")
			}
			suggested = hotel
		}

		repo := uow.HotelInfoRepository()
		info, err := repo.FindOne(ctx, specification.ByGuest{GuestID: guest.Id})
		if err != nil {
			return nil, err
		}
		isNew := info == nil
		if isNew {
			info = &entity.HotelInfo{GuestId: guest.Id, NumberOfRooms: 1}
		}

		req.SuggestedHotelId.ApplyTo(&info.SuggestedHotelId)
		req.CustomHotelName.ApplyTo(&info.CustomHotelName)
		req.CustomHotelAddress.ApplyTo(&info.CustomHotelAddress)
		checkIn.ApplyTo(&info.CheckInDate)
		checkOut.ApplyTo(&info.CheckOutDate)
		req.RoomType.ApplyTo(&info.RoomType)
		if req.NumberOfRooms.Set {
			info.NumberOfRooms = 1
			if !req.NumberOfRooms.Null {
				info.NumberOfRooms = req.NumberOfRooms.Value
			}
		}
		req.SpecialRequests.ApplyTo(&info.SpecialRequests)
		req.BookingConfirmation.ApplyTo(&info.BookingConfirmation)

		// The stored reference may predate this request.
		if suggested == nil && info.SuggestedHotelId != nil {
			if suggested, err = uow.SuggestedHotelRepository().FindOne(ctx, specification.ByID{ID: *info.SuggestedHotelId}); err != nil {
				return nil, err
			}
		}

		if isNew {
			err = repo.Create(ctx, info)
		} else {
			err = repo.Update(ctx, info)
		}
		return info, err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UPSERT", "Hotel info saved", map[string]interface{}{"guest_id": guest.Id.String()})
	return mapper.HotelInfoToResponse(info, suggested), nil
}

func (s *preferenceService) UpsertFood(ctx context.Context, guest *entity.Guest, req *dto.FoodPreferenceRequest) (*dto.FoodPreferenceResponse, error) {
	var mealSize dto.Optional[entity.MealSize]
	if req.MealSizePreference.Set {
		value := strings.TrimSpace(req.MealSizePreference.Value)
		switch {
		case req.MealSizePreference.Null || value == "":
			mealSize = dto.Null[entity.MealSize]()
		case entity.MealSize(value).Valid():
			mealSize = dto.Some(entity.MealSize(value))
		default:
			return nil, apperror.InvalidArgument("meal_size_preference must be one of regular, small, large")
		}
	}

	pref, err := runUpsert(ctx, s, "food_preference", func(uow unitofwork.UnitOfWork) (*entity.GuestFoodPreference, error) {
		repo := uow.GuestFoodPreferenceRepository()
		pref, err := repo.FindOne(ctx, specification.ByGuest{GuestID: guest.Id})
		if err != nil {
			return nil, err
		}
		isNew := pref == nil
		if isNew {
			pref = &entity.GuestFoodPreference{GuestId: guest.Id}
		}

		if req.DietaryRestrictions.Set {
			pref.DietaryRestrictions = req.DietaryRestrictions.Value
		}
		req.Allergies.ApplyTo(&pref.Allergies)
		req.CuisinePreferences.ApplyTo(&pref.CuisinePreferences)
		req.SpecialRequests.ApplyTo(&pref.SpecialRequests)
		mealSize.ApplyTo(&pref.MealSizePreference)

		if isNew {
			err = repo.Create(ctx, pref)
		} else {
			err = repo.Update(ctx, pref)
		}
		return pref, err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UPSERT", "Food preference saved", map[string]interface{}{"guest_id": guest.Id.String()})
	return mapper.FoodPreferenceToResponse(pref), nil
}

func (s *preferenceService) UpsertDress(ctx context.Context, guest *entity.Guest, req *dto.DressPreferenceRequest) (*dto.DressPreferenceResponse, error) {
	pref, err := runUpsert(ctx, s, "dress_preference", func(uow unitofwork.UnitOfWork) (*entity.GuestDressPreference, error) {
		code, err := uow.DressCodeRepository().FindOne(ctx,
			specification.ByID{ID: req.DressCodeId},
			specification.OwnedByWedding{WeddingID: guest.WeddingId},
		)
		if err != nil {
			return nil, err
		}
		if code == nil {
			return nil, apperror.NotFound("dress code not found")
		}

		repo := uow.GuestDressPreferenceRepository()
		pref, err := repo.FindOne(ctx,
			specification.ByGuest{GuestID: guest.Id},
			specification.ByDressCode{DressCodeID: code.Id},
		)
		if err != nil {
			return nil, err
		}
		isNew := pref == nil
		if isNew {
			pref = &entity.GuestDressPreference{GuestId: guest.Id, DressCodeId: code.Id}
		}

		req.PlannedOutfitDescription.ApplyTo(&pref.PlannedOutfitDescription)
		req.ColorChoice.ApplyTo(&pref.ColorChoice)
		applyBool(req.NeedsShoppingAssistance, &pref.NeedsShoppingAssistance)
		req.Notes.ApplyTo(&pref.Notes)

		if isNew {
			err = repo.Create(ctx, pref)
		} else {
			err = repo.Update(ctx, pref)
		}
		return pref, err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UPSERT", "Dress preference saved", map[string]interface{}{
		"guest_id":      guest.Id.String(),
		"dress_code_id": req.DressCodeId.String(),
	})
	return mapper.DressPreferenceToResponse(pref), nil
}
