package service

import (
	"context"
	"strings"
	"time"

	"wedding-portal-be/internal/dto"
	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/mapper"
	"wedding-portal-be/internal/pkg/apperror"
	"wedding-portal-be/internal/pkg/logger"
	"wedding-portal-be/internal/repository/specification"
	"wedding-portal-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IWeddingService interface {
	Get(ctx context.Context, weddingId uuid.UUID) (*dto.WeddingResponse, error)
	Update(ctx context.Context, weddingId uuid.UUID, req *dto.UpdateWeddingRequest) (*dto.WeddingResponse, error)
	DashboardStats(ctx context.Context, weddingId uuid.UUID) (*dto.DashboardStatsResponse, error)
}

type weddingService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewWeddingService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IWeddingService {
	return &weddingService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *weddingService) find(ctx context.Context, uow unitofwork.UnitOfWork, weddingId uuid.UUID) (*entity.Wedding, error) {
	wedding, err := uow.WeddingRepository().FindOne(ctx, specification.ByID{ID: weddingId})
	if err != nil {
		return nil, err
	}
	if wedding == nil {
		return nil, apperror.NotFound("wedding not found")
	}
	return wedding, nil
}

func (s *weddingService) Get(ctx context.Context, weddingId uuid.UUID) (*dto.WeddingResponse, error) {
	wedding, err := s.find(ctx, s.uowFactory.NewUnitOfWork(ctx), weddingId)
	if err != nil {
		return nil, err
	}
	res := mapper.WeddingToResponse(wedding)
	return &res, nil
}

func (s *weddingService) Update(ctx context.Context, weddingId uuid.UUID, req *dto.UpdateWeddingRequest) (*dto.WeddingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	wedding, err := s.find(ctx, uow, weddingId)
	if err != nil {
		return nil, err
	}

	if req.CoupleNames != nil {
		names := strings.TrimSpace(*req.CoupleNames)
		if names == "" {
			return nil, apperror.InvalidArgument("couple_names must not be empty")
		}
		wedding.CoupleNames = names
	}
	if req.WeddingDate != nil {
		date, err := time.Parse(dateLayout, strings.TrimSpace(*req.WeddingDate))
		if err != nil {
			return nil, apperror.InvalidArgument("wedding_date must be a date in YYYY-MM-DD format")
		}
		wedding.WeddingDate = date
	}
	if req.VenueName != nil {
		wedding.VenueName = req.VenueName
	}
	if req.VenueAddress != nil {
		wedding.VenueAddress = req.VenueAddress
	}
	if req.VenueCity != nil {
		wedding.VenueCity = req.VenueCity
	}
	if req.VenueCountry != nil {
		wedding.VenueCountry = req.VenueCountry
	}
	if req.WelcomeMessage != nil {
		wedding.WelcomeMessage = req.WelcomeMessage
	}
	if req.CoverImageUrl != nil {
		wedding.CoverImageUrl = req.CoverImageUrl
	}
	if req.StoryTitle != nil {
		wedding.StoryTitle = req.StoryTitle
	}
	if req.StoryContent != nil {
		wedding.StoryContent = req.StoryContent
	}

	if err := uow.WeddingRepository().Update(ctx, wedding); err != nil {
		return nil, err
	}

	res := mapper.WeddingToResponse(wedding)
	return &res, nil
}

func (s *weddingService) DashboardStats(ctx context.Context, weddingId uuid.UUID) (*dto.DashboardStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	owned := specification.OwnedByWedding{WeddingID: weddingId}
	guestsOf := specification.GuestsOfWedding{WeddingID: weddingId}

	stats := &entity.DashboardStats{}
	var err error

	if stats.TotalGuests, err = uow.GuestRepository().Count(ctx, owned); err != nil {
		return nil, err
	}
	if stats.RSVPCounts, err = uow.GuestRepository().CountByRSVP(ctx, weddingId); err != nil {
		return nil, err
	}
	if stats.ConfirmedAttendees, err = uow.GuestRepository().SumAttendees(ctx, weddingId, entity.RSVPConfirmed); err != nil {
		return nil, err
	}
	if stats.TravelSubmitted, err = uow.TravelInfoRepository().Count(ctx, guestsOf); err != nil {
		return nil, err
	}
	if stats.HotelSubmitted, err = uow.HotelInfoRepository().Count(ctx, guestsOf); err != nil {
		return nil, err
	}
	if stats.MediaTotal, err = uow.MediaUploadRepository().Count(ctx, owned); err != nil {
		return nil, err
	}
	if stats.MediaPending, err = uow.MediaUploadRepository().Count(ctx, owned, specification.ApprovedMedia{Approved: false}); err != nil {
		return nil, err
	}

	res := mapper.DashboardStatsToResponse(stats)
	return &res, nil
}
