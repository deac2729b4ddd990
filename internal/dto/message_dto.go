package dto

import (
	"time"

	"github.com/google/uuid"
)

type GuestAccessedMessage struct {
	GuestId    uuid.UUID `json:"guest_id"`
	AccessedAt time.Time `json:"accessed_at"`
}
