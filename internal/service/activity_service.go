package service

import (
	"context"
	"strings"

	"wedding-portal-be/internal/dto"
	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/mapper"
	"wedding-portal-be/internal/pkg/apperror"
	"wedding-portal-be/internal/pkg/logger"
	"wedding-portal-be/internal/repository/specification"
	"wedding-portal-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// IActivityService is the tenant's side of activities.
type IActivityService interface {
	List(ctx context.Context, weddingId uuid.UUID) ([]dto.ActivityResponse, error)
	Create(ctx context.Context, weddingId uuid.UUID, req *dto.ActivityRequest) (*dto.ActivityResponse, error)
	Show(ctx context.Context, weddingId, activityId uuid.UUID) (*dto.ActivityResponse, error)
	Update(ctx context.Context, weddingId, activityId uuid.UUID, req *dto.ActivityRequest) (*dto.ActivityResponse, error)
	Delete(ctx context.Context, weddingId, activityId uuid.UUID) error
	Registrations(ctx context.Context, weddingId, activityId uuid.UUID) ([]dto.ActivityRegistrationItem, error)
}

type activityService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewActivityService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IActivityService {
	return &activityService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *activityService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, weddingId, activityId uuid.UUID) (*entity.Activity, error) {
	activity, err := uow.ActivityRepository().FindOne(ctx,
		specification.ByID{ID: activityId},
		specification.OwnedByWedding{WeddingID: weddingId},
	)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, apperror.NotFound("activity not found")
	}
	return activity, nil
}

func applyActivityRequest(a *entity.Activity, req *dto.ActivityRequest) error {
	name := strings.TrimSpace(req.ActivityName)
	if name == "" {
		return apperror.InvalidArgument("activity_name is required")
	}
	if req.MaxParticipants != nil && *req.MaxParticipants < 1 {
		return apperror.InvalidArgument("max_participants must be at least 1")
	}

	a.ActivityName = name
	a.Description = req.Description
	a.EventDay = req.EventDay
	a.DateTime = req.DateTime
	a.DurationMinutes = req.DurationMinutes
	a.Location = req.Location
	a.MaxParticipants = req.MaxParticipants
	if req.IsOptional != nil {
		a.IsOptional = *req.IsOptional
	}
	if req.RequiresSignup != nil {
		a.RequiresSignup = *req.RequiresSignup
	}
	a.ImageUrl = req.ImageUrl
	a.Notes = req.Notes
	a.DisplayOrder = req.DisplayOrder
	a.DressCodeInfo = req.DressCodeInfo
	a.DressColors = mapper.SwatchesFromDTO(req.DressColors)
	a.FoodDescription = req.FoodDescription
	a.DietaryOptions = req.DietaryOptions
	return nil
}

func (s *activityService) List(ctx context.Context, weddingId uuid.UUID) ([]dto.ActivityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	activities, err := uow.ActivityRepository().FindAll(ctx,
		specification.OwnedByWedding{WeddingID: weddingId},
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

	res := make([]dto.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		res = append(res, mapper.ActivityToResponse(a, counts[a.Id]))
	}
	return res, nil
}

func (s *activityService) Create(ctx context.Context, weddingId uuid.UUID, req *dto.ActivityRequest) (*dto.ActivityResponse, error) {
	// Optional with sign-up unless the tenant says otherwise.
	activity := &entity.Activity{WeddingId: weddingId, IsOptional: true, RequiresSignup: true}
	if err := applyActivityRequest(activity, req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ActivityRepository().Create(ctx, activity); err != nil {
		return nil, err
	}

	s.logger.Info("ACTIVITY", "Activity created", map[string]interface{}{
		"wedding_id":  weddingId.String(),
		"activity_id": activity.Id.String(),
	})
	res := mapper.ActivityToResponse(activity, 0)
	return &res, nil
}

func (s *activityService) Show(ctx context.Context, weddingId, activityId uuid.UUID) (*dto.ActivityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	activity, err := s.findOwned(ctx, uow, weddingId, activityId)
	if err != nil {
		return nil, err
	}
	current, err := uow.GuestActivityRepository().SumParticipants(ctx, activity.Id)
	if err != nil {
		return nil, err
	}

	res := mapper.ActivityToResponse(activity, current)
	return &res, nil
}

// Update may lower the ceiling below the current total; existing
// registrations are kept and only new sign-ups are refused.
func (s *activityService) Update(ctx context.Context, weddingId, activityId uuid.UUID, req *dto.ActivityRequest) (*dto.ActivityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	activity, err := s.findOwned(ctx, uow, weddingId, activityId)
	if err != nil {
		return nil, err
	}
	if err := applyActivityRequest(activity, req); err != nil {
		return nil, err
	}
	if err := uow.ActivityRepository().Update(ctx, activity); err != nil {
		return nil, err
	}

	current, err := uow.GuestActivityRepository().SumParticipants(ctx, activity.Id)
	if err != nil {
		return nil, err
	}
	res := mapper.ActivityToResponse(activity, current)
	return &res, nil
}

func (s *activityService) Delete(ctx context.Context, weddingId, activityId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	activity, err := s.findOwned(ctx, uow, weddingId, activityId)
	if err != nil {
		return err
	}
	if err := uow.GuestActivityRepository().DeleteByActivityId(ctx, activity.Id); err != nil {
		return err
	}
	if err := uow.ActivityRepository().Delete(ctx, activity.Id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.logger.Info("ACTIVITY", "Activity deleted", map[string]interface{}{"activity_id": activityId.String()})
	return nil
}

func (s *activityService) Registrations(ctx context.Context, weddingId, activityId uuid.UUID) ([]dto.ActivityRegistrationItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	activity, err := s.findOwned(ctx, uow, weddingId, activityId)
	if err != nil {
		return nil, err
	}

	registrations, err := uow.GuestActivityRepository().FindAll(ctx,
		specification.ByActivity{ActivityID: activity.Id},
		specification.OrderBy{Field: "registered_at"},
	)
	if err != nil {
		return nil, err
	}
	if len(registrations) == 0 {
		return []dto.ActivityRegistrationItem{}, nil
	}

	guestIds := make([]uuid.UUID, 0, len(registrations))
	for _, r := range registrations {
		guestIds = append(guestIds, r.GuestId)
	}
	guests, err := uow.GuestRepository().FindAll(ctx, specification.ByIDs{IDs: guestIds})
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(guests))
	for _, g := range guests {
		names[g.Id] = g.FullName
	}

	res := make([]dto.ActivityRegistrationItem, 0, len(registrations))
	for _, r := range registrations {
		res = append(res, dto.ActivityRegistrationItem{
			RegistrationResponse: *mapper.RegistrationToResponse(r),
			GuestId:              r.GuestId,
			GuestName:            names[r.GuestId],
		})
	}
	return res, nil
}
