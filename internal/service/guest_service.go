package service

import (
	"context"
	"strings"

	"wedding-portal-be/internal/dto"
	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/mapper"
	"wedding-portal-be/internal/pkg/apperror"
	"wedding-portal-be/internal/pkg/logger"
	"wedding-portal-be/internal/pkg/mailer"
	"wedding-portal-be/internal/repository/specification"
	"wedding-portal-be/internal/repository/unitofwork"
	"wedding-portal-be/pkg/storage"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

type IGuestService interface {
	List(ctx context.Context, weddingId uuid.UUID, req *dto.ListGuestsRequest) (*dto.PaginatedResponse[dto.AdminGuestResponse], error)
	Create(ctx context.Context, weddingId uuid.UUID, req *dto.CreateGuestRequest) (*dto.AdminGuestResponse, error)
	BulkCreate(ctx context.Context, weddingId uuid.UUID, req *dto.BulkCreateGuestsRequest) ([]dto.AdminGuestResponse, error)
	Show(ctx context.Context, weddingId, guestId uuid.UUID) (*dto.GuestDetailResponse, error)
	Update(ctx context.Context, weddingId uuid.UUID, req *dto.UpdateGuestRequest) (*dto.AdminGuestResponse, error)
	Delete(ctx context.Context, weddingId, guestId uuid.UUID) error
	RegenerateLink(ctx context.Context, weddingId, guestId uuid.UUID) (*dto.RotateTokenResponse, error)
	SendLink(ctx context.Context, weddingId, guestId uuid.UUID) error
}

type guestService struct {
	uowFactory   unitofwork.RepositoryFactory
	guestAccess  IGuestAccessService
	fileStorage  storage.FileStorage
	emailService mailer.IEmailService
	clientURL    string
	logger       logger.ILogger
}

func NewGuestService(
	uowFactory unitofwork.RepositoryFactory,
	guestAccess IGuestAccessService,
	fileStorage storage.FileStorage,
	emailService mailer.IEmailService,
	clientURL string,
	log logger.ILogger,
) IGuestService {
	return &guestService{
		uowFactory:   uowFactory,
		guestAccess:  guestAccess,
		fileStorage:  fileStorage,
		emailService: emailService,
		clientURL:    clientURL,
		logger:       log,
	}
}

func (s *guestService) toAdmin(g *entity.Guest) dto.AdminGuestResponse {
	return mapper.GuestToAdminResponse(g, PortalLink(s.clientURL, g.AccessToken))
}

func (s *guestService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, weddingId, guestId uuid.UUID) (*entity.Guest, error) {
	guest, err := uow.GuestRepository().FindOne(ctx,
		specification.ByID{ID: guestId},
		specification.OwnedByWedding{WeddingID: weddingId},
	)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, apperror.NotFound("guest not found")
	}
	return guest, nil
}

func (s *guestService) List(ctx context.Context, weddingId uuid.UUID, req *dto.ListGuestsRequest) (*dto.PaginatedResponse[dto.AdminGuestResponse], error) {
	page, limit := normalizePage(req.Page, req.Limit)
	uow := s.uowFactory.NewUnitOfWork(ctx)

	filters := []specification.Specification{specification.OwnedByWedding{WeddingID: weddingId}}
	if term := strings.TrimSpace(req.Search); term != "" {
		filters = append(filters, specification.GuestSearch{Term: term})
	}
	if req.RSVPStatus != "" {
		filters = append(filters, specification.ByRSVPStatus{Status: req.RSVPStatus})
	}

	total, err := uow.GuestRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	guests, err := uow.GuestRepository().FindAll(ctx, append(filters,
		specification.OrderBy{Field: "full_name"},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.AdminGuestResponse, 0, len(guests))
	for _, g := range guests {
		items = append(items, s.toAdmin(g))
	}

	return &dto.PaginatedResponse[dto.AdminGuestResponse]{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func newGuestEntity(weddingId uuid.UUID, req *dto.CreateGuestRequest) (*entity.Guest, error) {
	token, err := NewAccessToken()
	if err != nil {
		return nil, err
	}

	status := entity.RSVPPending
	if req.RSVPStatus != "" {
		status = entity.RSVPStatus(req.RSVPStatus)
		if !status.Valid() {
			return nil, apperror.InvalidArgument("rsvp_status must be one of pending, confirmed, declined, maybe")
		}
	}
	attendees := req.NumberOfAttendees
	if attendees < 1 {
		attendees = 1
	}

	name := strings.TrimSpace(req.FullName)
	if name == "" {
		return nil, apperror.InvalidArgument("full_name is required")
	}

	return &entity.Guest{
		WeddingId:         weddingId,
		AccessToken:       token,
		FullName:          name,
		Email:             req.Email,
		Phone:             req.Phone,
		CountryOfOrigin:   req.CountryOfOrigin,
		RSVPStatus:        status,
		NumberOfAttendees: attendees,
	}, nil
}

func (s *guestService) Create(ctx context.Context, weddingId uuid.UUID, req *dto.CreateGuestRequest) (*dto.AdminGuestResponse, error) {
	guest, err := newGuestEntity(weddingId, req)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.GuestRepository().Create(ctx, guest); err != nil {
		return nil, err
	}

	s.logger.Info("GUEST", "Guest created", map[string]interface{}{
		"wedding_id": weddingId.String(),
		"guest_id":   guest.Id.String(),
	})
	res := s.toAdmin(guest)
	return &res, nil
}

// BulkCreate inserts all rows or none. Names are not de-duplicated.
func (s *guestService) BulkCreate(ctx context.Context, weddingId uuid.UUID, req *dto.BulkCreateGuestsRequest) ([]dto.AdminGuestResponse, error) {
	guests := make([]*entity.Guest, 0, len(req.Guests))
	for i := range req.Guests {
		guest, err := newGuestEntity(weddingId, &req.Guests[i])
		if err != nil {
			return nil, err
		}
		guests = append(guests, guest)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.GuestRepository().CreateBatch(ctx, guests); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("GUEST", "Guests imported", map[string]interface{}{
		"wedding_id": weddingId.String(),
		"count":      len(guests),
	})

	res := make([]dto.AdminGuestResponse, 0, len(guests))
	for _, g := range guests {
		res = append(res, s.toAdmin(g))
	}
	return res, nil
}

func (s *guestService) Show(ctx context.Context, weddingId, guestId uuid.UUID) (*dto.GuestDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	guest, err := s.findOwned(ctx, uow, weddingId, guestId)
	if err != nil {
		return nil, err
	}

	travel, err := uow.TravelInfoRepository().Count(ctx, specification.ByGuest{GuestID: guest.Id})
	if err != nil {
		return nil, err
	}
	hotel, err := uow.HotelInfoRepository().Count(ctx, specification.ByGuest{GuestID: guest.Id})
	if err != nil {
		return nil, err
	}

	return &dto.GuestDetailResponse{
		AdminGuestResponse: s.toAdmin(guest),
		HasTravelInfo:      travel > 0,
		HasHotelInfo:       hotel > 0,
	}, nil
}

func (s *guestService) Update(ctx context.Context, weddingId uuid.UUID, req *dto.UpdateGuestRequest) (*dto.AdminGuestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	guest, err := s.findOwned(ctx, uow, weddingId, req.Id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		name := strings.TrimSpace(*req.FullName)
		if name == "" {
			return nil, apperror.InvalidArgument("full_name must not be empty")
		}
		guest.FullName = name
	}
	if req.Email != nil {
		guest.Email = req.Email
	}
	if req.Phone != nil {
		guest.Phone = req.Phone
	}
	if req.CountryOfOrigin != nil {
		guest.CountryOfOrigin = req.CountryOfOrigin
	}
	if req.NumberOfAttendees != nil {
		guest.NumberOfAttendees = *req.NumberOfAttendees
	}
	if req.RSVPStatus != nil {
		status := entity.RSVPStatus(*req.RSVPStatus)
		if !status.Valid() {
			return nil, apperror.InvalidArgument("rsvp_status must be one of pending, confirmed, declined, maybe")
		}
		guest.RSVPStatus = status
	}
	if req.SpecialRequests != nil {
		guest.SpecialRequests = req.SpecialRequests
	}
	if req.NotesToCouple != nil {
		guest.NotesToCouple = req.NotesToCouple
	}

	if err := uow.GuestRepository().Update(ctx, guest); err != nil {
		return nil, err
	}

	res := s.toAdmin(guest)
	return &res, nil
}

// Delete removes the guest and every sub-record in one transaction. Stored
// media objects are removed after commit; a failure there only leaves an
// unreferenced object behind.
func (s *guestService) Delete(ctx context.Context, weddingId, guestId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	guest, err := s.findOwned(ctx, uow, weddingId, guestId)
	if err != nil {
		return err
	}

	media, err := uow.MediaUploadRepository().FindAll(ctx, specification.ByGuest{GuestID: guest.Id})
	if err != nil {
		return err
	}

	cascade := []func(context.Context, uuid.UUID) error{
		uow.TravelInfoRepository().DeleteByGuestId,
		uow.HotelInfoRepository().DeleteByGuestId,
		uow.GuestFoodPreferenceRepository().DeleteByGuestId,
		uow.GuestDressPreferenceRepository().DeleteByGuestId,
		uow.GuestActivityRepository().DeleteByGuestId,
		uow.MediaUploadRepository().DeleteByGuestId,
	}
	for _, deleteFn := range cascade {
		if err := deleteFn(ctx, guest.Id); err != nil {
			return err
		}
	}
	if err := uow.GuestRepository().Delete(ctx, guest.Id); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	if s.fileStorage != nil {
		for _, m := range media {
			if err := s.fileStorage.Delete(ctx, m.ObjectKey); err != nil {
				s.logger.Warn("GUEST", "Failed to delete media object", map[string]interface{}{
					"media_id": m.Id.String(),
					"error":    err.Error(),
				})
			}
		}
	}

	s.logger.Info("GUEST", "Guest deleted", map[string]interface{}{
		"wedding_id": weddingId.String(),
		"guest_id":   guestId.String(),
		"media":      len(media),
	})
	return nil
}

func (s *guestService) RegenerateLink(ctx context.Context, weddingId, guestId uuid.UUID) (*dto.RotateTokenResponse, error) {
	token, err := s.guestAccess.RotateToken(ctx, weddingId, guestId)
	if err != nil {
		return nil, err
	}
	return &dto.RotateTokenResponse{
		AccessToken: token,
		PortalLink:  PortalLink(s.clientURL, token),
	}, nil
}

func (s *guestService) SendLink(ctx context.Context, weddingId, guestId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	guest, err := s.findOwned(ctx, uow, weddingId, guestId)
	if err != nil {
		return err
	}
	if guest.Email == nil || strings.TrimSpace(*guest.Email) == "" {
		return apperror.InvalidArgument("guest has no email address")
	}

	wedding, err := uow.WeddingRepository().FindOne(ctx, specification.ByID{ID: weddingId})
	if err != nil {
		return err
	}
	if wedding == nil {
		return apperror.NotFound("wedding not found")
	}

	link := PortalLink(s.clientURL, guest.AccessToken)
	if err := s.emailService.SendPortalLink(*guest.Email, guest.FullName, wedding.CoupleNames, link); err != nil {
		return apperror.Unavailable("failed to send email", err)
	}

	s.logger.Info("GUEST", "Portal link sent", map[string]interface{}{"guest_id": guest.Id.String()})
	return nil
}
