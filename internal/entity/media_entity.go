package entity

import (
	"time"

	"github.com/google/uuid"
)

type FileType string

const (
	FileTypeImage FileType = "image"
	FileTypeVideo FileType = "video"
)

type MediaUpload struct {
	Id           uuid.UUID
	WeddingId    uuid.UUID
	GuestId      uuid.UUID
	FileType     FileType
	FileName     string
	ObjectKey    string
	FileUrl      string
	FileSize     int64
	ThumbnailUrl *string
	Caption      *string
	EventTag     *string
	IsApproved   bool
	UploadedAt   time.Time
	ApprovedAt   *time.Time
}
