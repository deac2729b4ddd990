package service

import (
	"context"
	"slices"
	"strings"
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

type IRSVPService interface {
	Submit(ctx context.Context, guest *entity.Guest, req *dto.UpdateRSVPRequest) (*dto.GuestResponse, error)
}

type rsvpService struct {
	uowFactory unitofwork.RepositoryFactory
	events     *eventDispatcher
	logger     logger.ILogger
}

func NewRSVPService(uowFactory unitofwork.RepositoryFactory, publisher events.Publisher, log logger.ILogger) IRSVPService {
	return &rsvpService{
		uowFactory: uowFactory,
		events:     newEventDispatcher(publisher, log),
		logger:     log,
	}
}

// Submit records the RSVP. When activity_ids is present the guest's
// registrations are replaced by that list in the same transaction, each one
// sized to the guest's party and checked against the activity's ceiling.
func (s *rsvpService) Submit(ctx context.Context, guest *entity.Guest, req *dto.UpdateRSVPRequest) (*dto.GuestResponse, error) {
	status := entity.RSVPStatus(req.RSVPStatus)
	if !status.Valid() {
		return nil, apperror.InvalidArgument("rsvp_status must be one of pending, confirmed, declined, maybe")
	}
	if req.NumberOfAttendees.Set && !req.NumberOfAttendees.Null && req.NumberOfAttendees.Value < 1 {
		return nil, apperror.InvalidArgument("number_of_attendees must be at least 1")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	current, err := uow.GuestRepository().FindOne(ctx, specification.ByID{ID: guest.Id})
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, apperror.NotFound("guest not found")
	}

	now := time.Now()
	current.RSVPStatus = status
	current.RSVPSubmittedAt = &now
	if req.NumberOfAttendees.Set {
		current.NumberOfAttendees = 1
		if !req.NumberOfAttendees.Null {
			current.NumberOfAttendees = req.NumberOfAttendees.Value
		}
	}
	req.Email.ApplyTo(&current.Email)
	req.Phone.ApplyTo(&current.Phone)
	req.CountryOfOrigin.ApplyTo(&current.CountryOfOrigin)
	req.SpecialRequests.ApplyTo(&current.SpecialRequests)
	req.SongRequests.ApplyTo(&current.SongRequests)
	req.NotesToCouple.ApplyTo(&current.NotesToCouple)

	if err := uow.GuestRepository().Update(ctx, current); err != nil {
		return nil, err
	}

	if req.ActivityIds.Set {
		if err := s.replaceRegistrations(ctx, uow, current, req.ActivityIds.Value); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("RSVP", "RSVP submitted", map[string]interface{}{
		"guest_id":  current.Id.String(),
		"status":    string(current.RSVPStatus),
		"attendees": current.NumberOfAttendees,
	})
	s.events.dispatch(ctx, events.RSVPUpdated(current.WeddingId, current.Id, string(current.RSVPStatus), current.NumberOfAttendees))

	*guest = *current
	res := mapper.GuestToResponse(current)
	return &res, nil
}

// replaceRegistrations skips ids that are malformed or do not name an
// activity of the wedding.
func (s *rsvpService) replaceRegistrations(ctx context.Context, uow unitofwork.UnitOfWork, guest *entity.Guest, rawIds []string) error {
	if err := uow.GuestActivityRepository().DeleteByGuestId(ctx, guest.Id); err != nil {
		return err
	}

	activityIds, malformed := activityLockOrder(rawIds)
	for _, raw := range malformed {
		s.logger.Warn("RSVP", "Ignoring malformed activity id in RSVP", map[string]interface{}{
			"guest_id":    guest.Id.String(),
			"activity_id": raw,
		})
	}

	for _, id := range activityIds {
		_, _, err := reserveSeats(ctx, uow, guest, id, guest.NumberOfAttendees, nil)
		if apperror.IsKind(err, apperror.KindNotFound) {
			s.logger.Warn("RSVP", "Ignoring unknown activity in RSVP", map[string]interface{}{
				"guest_id":    guest.Id.String(),
				"activity_id": id.String(),
			})
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// activityLockOrder parses, de-duplicates and sorts activity ids. Activity
// rows are locked in this order so concurrent RSVPs never wait on each other
// in a cycle.
func activityLockOrder(rawIds []string) ([]uuid.UUID, []string) {
	ids := make([]uuid.UUID, 0, len(rawIds))
	var malformed []string
	seen := make(map[uuid.UUID]bool, len(rawIds))
	for _, raw := range rawIds {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			malformed = append(malformed, raw)
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return strings.Compare(a.String(), b.String())
	})
	return ids, malformed
}
