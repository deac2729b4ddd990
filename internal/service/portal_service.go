package service

import (
	"context"

	"wedding-portal-be/internal/dto"
	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/mapper"
	"wedding-portal-be/internal/pkg/logger"
	"wedding-portal-be/internal/repository/specification"
	"wedding-portal-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// IPortalService assembles the guest portal. Each relation is read on its
// own, so a snapshot may straddle a concurrent admin edit.
type IPortalService interface {
	Snapshot(ctx context.Context, wedding *entity.Wedding, guest *entity.Guest) (*dto.PortalSnapshotResponse, error)
	Activities(ctx context.Context, wedding *entity.Wedding, guest *entity.Guest) ([]dto.ActivityPortalResponse, error)
	DressCodes(ctx context.Context, wedding *entity.Wedding, guest *entity.Guest) ([]dto.DressCodePortalResponse, error)
	Media(ctx context.Context, guest *entity.Guest) ([]dto.MediaResponse, error)
}

type portalService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewPortalService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IPortalService {
	return &portalService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *portalService) Snapshot(ctx context.Context, wedding *entity.Wedding, guest *entity.Guest) (*dto.PortalSnapshotResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	res := &dto.PortalSnapshotResponse{
		Guest:   mapper.GuestToResponse(guest),
		Wedding: mapper.WeddingToPublicResponse(wedding),
	}

	travel, err := uow.TravelInfoRepository().FindOne(ctx, specification.ByGuest{GuestID: guest.Id})
	if err != nil {
		return nil, err
	}
	res.TravelInfo = mapper.TravelInfoToResponse(travel)

	hotel, err := uow.HotelInfoRepository().FindOne(ctx, specification.ByGuest{GuestID: guest.Id})
	if err != nil {
		return nil, err
	}
	if hotel != nil {
		var suggested *entity.SuggestedHotel
		if hotel.SuggestedHotelId != nil {
			suggested, err = uow.SuggestedHotelRepository().FindOne(ctx,
				specification.ByID{ID: *hotel.SuggestedHotelId},
				specification.OwnedByWedding{WeddingID: wedding.Id},
			)
			if err != nil {
				return nil, err
			}
		}
		res.HotelInfo = mapper.HotelInfoToResponse(hotel, suggested)
	}

	hotels, err := uow.SuggestedHotelRepository().FindAll(ctx,
		specification.OwnedByWedding{WeddingID: wedding.Id},
		specification.ActiveOnly{},
		specification.OrderBy{Field: "display_order"},
	)
	if err != nil {
		return nil, err
	}
	res.SuggestedHotels = mapper.SuggestedHotelsToResponse(hotels)

	menus, err := uow.FoodMenuRepository().FindAll(ctx,
		specification.OwnedByWedding{WeddingID: wedding.Id},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}
	res.FoodMenus = mapper.FoodMenusToResponse(menus)

	food, err := uow.GuestFoodPreferenceRepository().FindOne(ctx, specification.ByGuest{GuestID: guest.Id})
	if err != nil {
		return nil, err
	}
	res.FoodPreference = mapper.FoodPreferenceToResponse(food)

	if res.DressCodes, err = s.DressCodes(ctx, wedding, guest); err != nil {
		return nil, err
	}
	if res.Activities, err = s.Activities(ctx, wedding, guest); err != nil {
		return nil, err
	}
	if res.Media, err = s.Media(ctx, guest); err != nil {
		return nil, err
	}

	return res, nil
}

func (s *portalService) DressCodes(ctx context.Context, wedding *entity.Wedding, guest *entity.Guest) ([]dto.DressCodePortalResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	codes, err := uow.DressCodeRepository().FindAll(ctx,
		specification.OwnedByWedding{WeddingID: wedding.Id},
		specification.OrderBy{Field: "display_order"},
		specification.OrderBy{Field: "event_date"},
	)
	if err != nil {
		return nil, err
	}

	prefs, err := uow.GuestDressPreferenceRepository().FindAll(ctx, specification.ByGuest{GuestID: guest.Id})
	if err != nil {
		return nil, err
	}
	byCode := make(map[uuid.UUID]*entity.GuestDressPreference, len(prefs))
	for _, p := range prefs {
		byCode[p.DressCodeId] = p
	}

	res := make([]dto.DressCodePortalResponse, 0, len(codes))
	for _, code := range codes {
		res = append(res, dto.DressCodePortalResponse{
			DressCodeResponse: mapper.DressCodeToResponse(code),
			GuestPreference:   mapper.DressPreferenceToResponse(byCode[code.Id]),
		})
	}
	return res, nil
}

func (s *portalService) Activities(ctx context.Context, wedding *entity.Wedding, guest *entity.Guest) ([]dto.ActivityPortalResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	activities, err := uow.ActivityRepository().FindAll(ctx,
		specification.OwnedByWedding{WeddingID: wedding.Id},
		specification.OrderBy{Field: "display_order"},
		specification.OrderBy{Field: "date_time"},
	)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(activities))
	for _, a := range activities {
		ids = append(ids, a.Id)
	}
	counts, err := uow.GuestActivityRepository().SumParticipantsByActivity(ctx, ids)
	if err != nil {
		return nil, err
	}

	registrations, err := uow.GuestActivityRepository().FindAll(ctx, specification.ByGuest{GuestID: guest.Id})
	if err != nil {
		return nil, err
	}
	mine := make(map[uuid.UUID]*entity.GuestActivity, len(registrations))
	for _, r := range registrations {
		mine[r.ActivityId] = r
	}

	res := make([]dto.ActivityPortalResponse, 0, len(activities))
	for _, a := range activities {
		reg := mine[a.Id]
		res = append(res, dto.ActivityPortalResponse{
			ActivityResponse: mapper.ActivityToResponse(a, counts[a.Id]),
			IsRegistered:     reg != nil,
			Registration:     mapper.RegistrationToResponse(reg),
		})
	}
	return res, nil
}

func (s *portalService) Media(ctx context.Context, guest *entity.Guest) ([]dto.MediaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	uploads, err := uow.MediaUploadRepository().FindAll(ctx,
		specification.ByGuest{GuestID: guest.Id},
		specification.OrderBy{Field: "uploaded_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return mapper.MediaListToResponse(uploads), nil
}
