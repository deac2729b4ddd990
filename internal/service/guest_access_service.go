package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/pkg/apperror"
	"wedding-portal-be/internal/pkg/logger"
	"wedding-portal-be/internal/repository/specification"
	"wedding-portal-be/internal/repository/unitofwork"
	"wedding-portal-be/pkg/events"

	"github.com/google/uuid"
)

const accessTokenBytes = 32

// NewAccessToken returns 32 random bytes, base64url encoded without padding.
func NewAccessToken() (string, error) {
	buf := make([]byte, accessTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// PortalLink is the URL a guest opens to reach their portal.
func PortalLink(clientURL, token string) string {
	return strings.TrimRight(clientURL, "/") + "/guest/" + token
}

// IGuestAccessService turns an opaque portal token into a guest and its wedding.
type IGuestAccessService interface {
	Resolve(ctx context.Context, token string) (*entity.Wedding, *entity.Guest, error)
	// ResolveForPortal also records the visit; recording never fails the read.
	ResolveForPortal(ctx context.Context, token string) (*entity.Wedding, *entity.Guest, error)
	RotateToken(ctx context.Context, weddingId, guestId uuid.UUID) (string, error)
}

type guestAccessService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	events           *eventDispatcher
	logger           logger.ILogger
}

func NewGuestAccessService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	publisher events.Publisher,
	log logger.ILogger,
) IGuestAccessService {
	return &guestAccessService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		events:           newEventDispatcher(publisher, log),
		logger:           log,
	}
}

func (s *guestAccessService) Resolve(ctx context.Context, token string) (*entity.Wedding, *entity.Guest, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil, apperror.NotFound("guest not found")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	guest, err := uow.GuestRepository().FindOne(ctx, specification.ByAccessToken{Token: token})
	if err != nil {
		return nil, nil, err
	}
	if guest == nil {
		return nil, nil, apperror.NotFound("guest not found")
	}

	wedding, err := uow.WeddingRepository().FindOne(ctx,
		specification.ByID{ID: guest.WeddingId},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, nil, err
	}
	if wedding == nil {
		return nil, nil, apperror.NotFound("guest not found")
	}

	return wedding, guest, nil
}

func (s *guestAccessService) ResolveForPortal(ctx context.Context, token string) (*entity.Wedding, *entity.Guest, error) {
	wedding, guest, err := s.Resolve(ctx, token)
	if err != nil {
		return nil, nil, err
	}

	if s.publisherService != nil {
		if err := s.publisherService.PublishGuestAccessed(ctx, guest.Id, time.Now()); err != nil {
			s.logger.Warn("GUEST_ACCESS", "Failed to queue last access update", map[string]interface{}{
				"guest_id": guest.Id.String(),
				"error":    err.Error(),
			})
		}
	}

	return wedding, guest, nil
}

func (s *guestAccessService) RotateToken(ctx context.Context, weddingId, guestId uuid.UUID) (string, error) {
	token, err := NewAccessToken()
	if err != nil {
		return "", err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}
	defer uow.Rollback()

	replaced, err := uow.GuestRepository().ReplaceToken(ctx, weddingId, guestId, token)
	if err != nil {
		return "", err
	}
	if !replaced {
		return "", apperror.NotFound("guest not found")
	}

	if err := uow.Commit(); err != nil {
		return "", err
	}

	s.logger.Info("GUEST_ACCESS", "Access token rotated", map[string]interface{}{
		"wedding_id": weddingId.String(),
		"guest_id":   guestId.String(),
	})
	s.events.dispatch(ctx, events.TokenRotated(weddingId, guestId))

	return token, nil
}
