package service

import (
	"context"
	"time"

	"wedding-portal-be/internal/dto"
	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/mapper"
	"wedding-portal-be/internal/pkg/apperror"
	"wedding-portal-be/internal/pkg/logger"
	"wedding-portal-be/internal/repository/specification"
	"wedding-portal-be/internal/repository/unitofwork"
	"wedding-portal-be/pkg/events"

	"github.com/google/uuid"
)

// IActivityRegistrationService signs guests up for activities without ever
// letting the participant total pass the activity's ceiling.
type IActivityRegistrationService interface {
	Register(ctx context.Context, guest *entity.Guest, activityId uuid.UUID, req *dto.RegisterActivityRequest) (*dto.RegistrationResponse, error)
	Unregister(ctx context.Context, guest *entity.Guest, activityId uuid.UUID) error
}

type activityRegistrationService struct {
	uowFactory unitofwork.RepositoryFactory
	events     *eventDispatcher
	logger     logger.ILogger
}

func NewActivityRegistrationService(
	uowFactory unitofwork.RepositoryFactory,
	publisher events.Publisher,
	log logger.ILogger,
) IActivityRegistrationService {
	return &activityRegistrationService{
		uowFactory: uowFactory,
		events:     newEventDispatcher(publisher, log),
		logger:     log,
	}
}

// reserveSeats must run inside a transaction. The activity row stays locked
// until that transaction ends, which serializes concurrent sign-ups for the
// same activity between the capacity check and the insert.
func reserveSeats(ctx context.Context, uow unitofwork.UnitOfWork, guest *entity.Guest, activityId uuid.UUID, participants int, notes *string) (*entity.GuestActivity, *entity.Activity, error) {
	if participants < 1 {
		participants = 1
	}

	activity, err := uow.ActivityRepository().FindOne(ctx,
		specification.ByID{ID: activityId},
		specification.OwnedByWedding{WeddingID: guest.WeddingId},
		specification.ForUpdate{},
	)
	if err != nil {
		return nil, nil, err
	}
	if activity == nil {
		return nil, nil, apperror.NotFound("activity not found")
	}

	registrations := uow.GuestActivityRepository()
	existing, err := registrations.FindOne(ctx,
		specification.ByGuest{GuestID: guest.Id},
		specification.ByActivity{ActivityID: activity.Id},
	)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, apperror.Conflict("already registered for %s", activity.ActivityName)
	}

	if activity.MaxParticipants != nil {
		current, err := registrations.SumParticipants(ctx, activity.Id)
		if err != nil {
			return nil, nil, err
		}
		if !activity.HasRoomFor(current, participants) {
			left := *activity.MaxParticipants - current
			if left < 0 {
				left = 0
			}
			return nil, nil, apperror.CapacityExceeded("%s has %d spots left", activity.ActivityName, left)
		}
	}

	registration := &entity.GuestActivity{
		GuestId:              guest.Id,
		ActivityId:           activity.Id,
		NumberOfParticipants: participants,
		Notes:                notes,
		RegisteredAt:         time.Now(),
	}
	if err := registrations.Create(ctx, registration); err != nil {
		return nil, nil, err
	}
	return registration, activity, nil
}

func (s *activityRegistrationService) Register(ctx context.Context, guest *entity.Guest, activityId uuid.UUID, req *dto.RegisterActivityRequest) (*dto.RegistrationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	registration, activity, err := reserveSeats(ctx, uow, guest, activityId, req.NumberOfParticipants, req.Notes)
	if err != nil {
		if apperror.IsKind(err, apperror.KindCapacityExceeded) {
			s.logger.Info("CAPACITY", "Registration rejected, activity full", map[string]interface{}{
				"guest_id":    guest.Id.String(),
				"activity_id": activityId.String(),
			})
		}
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("CAPACITY", "Guest registered for activity", map[string]interface{}{
		"guest_id":     guest.Id.String(),
		"activity_id":  activity.Id.String(),
		"participants": registration.NumberOfParticipants,
	})
	s.events.dispatch(ctx, events.ActivityRegistered(guest.WeddingId, guest.Id, activity.Id, registration.NumberOfParticipants))

	return mapper.RegistrationToResponse(registration), nil
}

func (s *activityRegistrationService) Unregister(ctx context.Context, guest *entity.Guest, activityId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	registration, err := uow.GuestActivityRepository().FindOne(ctx,
		specification.ByGuest{GuestID: guest.Id},
		specification.ByActivity{ActivityID: activityId},
	)
	if err != nil {
		return err
	}
	if registration == nil {
		return apperror.NotFound("registration not found")
	}

	if err := uow.GuestActivityRepository().Delete(ctx, registration.Id); err != nil {
		return err
	}

	s.logger.Info("CAPACITY", "Guest unregistered from activity", map[string]interface{}{
		"guest_id":    guest.Id.String(),
		"activity_id": activityId.String(),
	})
	s.events.dispatch(ctx, events.ActivityUnregistered(guest.WeddingId, guest.Id, activityId))
	return nil
}
