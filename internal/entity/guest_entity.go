package entity

import (
	"time"

	"github.com/google/uuid"
)

type RSVPStatus string

const (
	RSVPPending   RSVPStatus = "pending"
	RSVPConfirmed RSVPStatus = "confirmed"
	RSVPDeclined  RSVPStatus = "declined"
	RSVPMaybe     RSVPStatus = "maybe"
)

func (s RSVPStatus) Valid() bool {
	switch s {
	case RSVPPending, RSVPConfirmed, RSVPDeclined, RSVPMaybe:
		return true
	}
	return false
}

type Guest struct {
	Id                uuid.UUID
	WeddingId         uuid.UUID
	AccessToken       string
	FullName          string
	Email             *string
	Phone             *string
	CountryOfOrigin   *string
	RSVPStatus        RSVPStatus
	NumberOfAttendees int
	SpecialRequests   *string
	SongRequests      *string
	NotesToCouple     *string
	RSVPSubmittedAt   *time.Time
	LastAccessedAt    *time.Time
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}
