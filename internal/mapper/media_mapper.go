package mapper

import (
	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/model"
)

type MediaMapper struct{}

func NewMediaMapper() *MediaMapper {
	return &MediaMapper{}
}

func (m *MediaMapper) ToEntity(u *model.MediaUpload) *entity.MediaUpload {
	if u == nil {
		return nil
	}
	return &entity.MediaUpload{
		Id:           u.Id,
		WeddingId:    u.WeddingId,
		GuestId:      u.GuestId,
		FileType:     entity.FileType(u.FileType),
		FileName:     u.FileName,
		ObjectKey:    u.ObjectKey,
		FileUrl:      u.FileUrl,
		FileSize:     u.FileSize,
		ThumbnailUrl: u.ThumbnailUrl,
		Caption:      u.Caption,
		EventTag:     u.EventTag,
		IsApproved:   u.IsApproved,
		UploadedAt:   u.UploadedAt,
		ApprovedAt:   u.ApprovedAt,
	}
}

func (m *MediaMapper) ToModel(u *entity.MediaUpload) *model.MediaUpload {
	if u == nil {
		return nil
	}
	return &model.MediaUpload{
		Id:           u.Id,
		WeddingId:    u.WeddingId,
		GuestId:      u.GuestId,
		FileType:     string(u.FileType),
		FileName:     u.FileName,
		ObjectKey:    u.ObjectKey,
		FileUrl:      u.FileUrl,
		FileSize:     u.FileSize,
		ThumbnailUrl: u.ThumbnailUrl,
		Caption:      u.Caption,
		EventTag:     u.EventTag,
		IsApproved:   u.IsApproved,
		UploadedAt:   u.UploadedAt,
		ApprovedAt:   u.ApprovedAt,
	}
}

func (m *MediaMapper) ToEntities(uploads []*model.MediaUpload) []*entity.MediaUpload {
	entities := make([]*entity.MediaUpload, len(uploads))
	for i, u := range uploads {
		entities[i] = m.ToEntity(u)
	}
	return entities
}
