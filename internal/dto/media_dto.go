package dto

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// UploadMediaRequest is assembled by the controller from a multipart form.
type UploadMediaRequest struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
	Caption     *string
	EventTag    *string
}

type ListMediaRequest struct {
	Approved *bool `query:"approved"`
	Page     int   `query:"page" validate:"omitempty,min=1"`
	Limit    int   `query:"limit" validate:"omitempty,min=1,max=200"`
}

type MediaResponse struct {
	Id           uuid.UUID  `json:"id"`
	GuestId      uuid.UUID  `json:"guest_id"`
	GuestName    string     `json:"guest_name,omitempty"`
	FileType     string     `json:"file_type"`
	FileName     string     `json:"file_name"`
	FileUrl      string     `json:"file_url"`
	FileSize     int64      `json:"file_size"`
	ThumbnailUrl *string    `json:"thumbnail_url"`
	Caption      *string    `json:"caption"`
	EventTag     *string    `json:"event_tag"`
	IsApproved   bool       `json:"is_approved"`
	UploadedAt   time.Time  `json:"uploaded_at"`
	ApprovedAt   *time.Time `json:"approved_at"`
}
