package service

import (
	"context"
	"fmt"
	"path"
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
	"wedding-portal-be/pkg/storage"

	"github.com/google/uuid"
)

const (
	MaxImageBytes int64 = 10 << 20
	MaxVideoBytes int64 = 100 << 20
)

// MediaKind derives the stored file type and its size ceiling from the
// declared content type.
func MediaKind(contentType string) (entity.FileType, int64, error) {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	switch {
	case strings.HasPrefix(ct, "image/"):
		return entity.FileTypeImage, MaxImageBytes, nil
	case strings.HasPrefix(ct, "video/"):
		return entity.FileTypeVideo, MaxVideoBytes, nil
	}
	return "", 0, apperror.InvalidArgument("only image and video uploads are accepted")
}

type IMediaService interface {
	Upload(ctx context.Context, guest *entity.Guest, req *dto.UploadMediaRequest) (*dto.MediaResponse, error)
	DeleteOwn(ctx context.Context, guest *entity.Guest, mediaId uuid.UUID) error

	List(ctx context.Context, weddingId uuid.UUID, req *dto.ListMediaRequest) (*dto.PaginatedResponse[dto.MediaResponse], error)
	Approve(ctx context.Context, weddingId, mediaId uuid.UUID) (*dto.MediaResponse, error)
	Reject(ctx context.Context, weddingId, mediaId uuid.UUID) error
}

type mediaService struct {
	uowFactory  unitofwork.RepositoryFactory
	fileStorage storage.FileStorage
	events      *eventDispatcher
	logger      logger.ILogger
}

func NewMediaService(
	uowFactory unitofwork.RepositoryFactory,
	fileStorage storage.FileStorage,
	publisher events.Publisher,
	log logger.ILogger,
) IMediaService {
	return &mediaService{
		uowFactory:  uowFactory,
		fileStorage: fileStorage,
		events:      newEventDispatcher(publisher, log),
		logger:      log,
	}
}

func objectKey(weddingId, guestId uuid.UUID, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return fmt.Sprintf("weddings/%s/guests/%s/%s%s", weddingId, guestId, uuid.New(), ext)
}

func (s *mediaService) Upload(ctx context.Context, guest *entity.Guest, req *dto.UploadMediaRequest) (*dto.MediaResponse, error) {
	kind, limit, err := MediaKind(req.ContentType)
	if err != nil {
		return nil, err
	}
	if req.Size <= 0 {
		return nil, apperror.InvalidArgument("file is empty")
	}
	if req.Size > limit {
		return nil, apperror.InvalidArgument("%s exceeds the %d MB limit", kind, limit>>20)
	}
	if s.fileStorage == nil {
		return nil, apperror.Unavailable("media storage is not configured", nil)
	}

	key := objectKey(guest.WeddingId, guest.Id, req.FileName)
	url, written, err := s.fileStorage.Put(ctx, key, req.Reader, req.Size, req.ContentType)
	if err != nil {
		return nil, apperror.Unavailable("failed to store file", err)
	}

	media := &entity.MediaUpload{
		WeddingId:  guest.WeddingId,
		GuestId:    guest.Id,
		FileType:   kind,
		FileName:   path.Base(req.FileName),
		ObjectKey:  key,
		FileUrl:    url,
		FileSize:   written,
		Caption:    req.Caption,
		EventTag:   req.EventTag,
		UploadedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.MediaUploadRepository().Create(ctx, media); err != nil {
		if delErr := s.fileStorage.Delete(ctx, key); delErr != nil {
			s.logger.Warn("MEDIA", "Failed to remove orphaned object", map[string]interface{}{"key": key, "error": delErr.Error()})
		}
		return nil, err
	}

	s.logger.Info("MEDIA", "Media uploaded", map[string]interface{}{
		"guest_id": guest.Id.String(),
		"media_id": media.Id.String(),
		"size":     written,
	})
	s.events.dispatch(ctx, events.MediaUploaded(guest.WeddingId, guest.Id, media.Id, string(kind)))

	res := mapper.MediaToResponse(media)
	return &res, nil
}

func (s *mediaService) remove(ctx context.Context, uow unitofwork.UnitOfWork, media *entity.MediaUpload) error {
	if err := uow.MediaUploadRepository().Delete(ctx, media.Id); err != nil {
		return err
	}
	if s.fileStorage != nil {
		if err := s.fileStorage.Delete(ctx, media.ObjectKey); err != nil {
			s.logger.Warn("MEDIA", "Failed to delete object", map[string]interface{}{
				"media_id": media.Id.String(),
				"error":    err.Error(),
			})
		}
	}
	return nil
}

// DeleteOwn answers NotFound for media of other guests.
func (s *mediaService) DeleteOwn(ctx context.Context, guest *entity.Guest, mediaId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	media, err := uow.MediaUploadRepository().FindOne(ctx,
		specification.ByID{ID: mediaId},
		specification.ByGuest{GuestID: guest.Id},
	)
	if err != nil {
		return err
	}
	if media == nil {
		return apperror.NotFound("media not found")
	}
	return s.remove(ctx, uow, media)
}

func (s *mediaService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, weddingId, mediaId uuid.UUID) (*entity.MediaUpload, error) {
	media, err := uow.MediaUploadRepository().FindOne(ctx,
		specification.ByID{ID: mediaId},
		specification.OwnedByWedding{WeddingID: weddingId},
	)
	if err != nil {
		return nil, err
	}
	if media == nil {
		return nil, apperror.NotFound("media not found")
	}
	return media, nil
}

func (s *mediaService) List(ctx context.Context, weddingId uuid.UUID, req *dto.ListMediaRequest) (*dto.PaginatedResponse[dto.MediaResponse], error) {
	page, limit := normalizePage(req.Page, req.Limit)
	uow := s.uowFactory.NewUnitOfWork(ctx)

	filters := []specification.Specification{specification.OwnedByWedding{WeddingID: weddingId}}
	if req.Approved != nil {
		filters = append(filters, specification.ApprovedMedia{Approved: *req.Approved})
	}

	total, err := uow.MediaUploadRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}
	uploads, err := uow.MediaUploadRepository().FindAll(ctx, append(filters,
		specification.OrderBy{Field: "uploaded_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)...)
	if err != nil {
		return nil, err
	}

	items := mapper.MediaListToResponse(uploads)
	if len(uploads) > 0 {
		guestIds := make([]uuid.UUID, 0, len(uploads))
		for _, m := range uploads {
			guestIds = append(guestIds, m.GuestId)
		}
		guests, err := uow.GuestRepository().FindAll(ctx, specification.ByIDs{IDs: guestIds})
		if err != nil {
			return nil, err
		}
		names := make(map[uuid.UUID]string, len(guests))
		for _, g := range guests {
			names[g.Id] = g.FullName
		}
		for i := range items {
			items[i].GuestName = names[items[i].GuestId]
		}
	}

	return &dto.PaginatedResponse[dto.MediaResponse]{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *mediaService) Approve(ctx context.Context, weddingId, mediaId uuid.UUID) (*dto.MediaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	media, err := s.findOwned(ctx, uow, weddingId, mediaId)
	if err != nil {
		return nil, err
	}
	if !media.IsApproved {
		now := time.Now()
		media.IsApproved = true
		media.ApprovedAt = &now
		if err := uow.MediaUploadRepository().Update(ctx, media); err != nil {
			return nil, err
		}
	}

	res := mapper.MediaToResponse(media)
	return &res, nil
}

// Reject deletes the upload outright.
func (s *mediaService) Reject(ctx context.Context, weddingId, mediaId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	media, err := s.findOwned(ctx, uow, weddingId, mediaId)
	if err != nil {
		return err
	}
	if err := s.remove(ctx, uow, media); err != nil {
		return err
	}

	s.logger.Info("MEDIA", "Media rejected", map[string]interface{}{"media_id": mediaId.String()})
	return nil
}
