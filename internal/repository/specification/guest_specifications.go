package specification

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByAccessToken struct {
	Token string
}

func (s ByAccessToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("access_token = ?", s.Token)
}

type ByGuest struct {
	GuestID uuid.UUID
}

func (s ByGuest) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("guest_id = ?", s.GuestID)
}

type ByGuests struct {
	GuestIDs []uuid.UUID
}

func (s ByGuests) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("guest_id IN ?", s.GuestIDs)
}

type ByDressCode struct {
	DressCodeID uuid.UUID
}

func (s ByDressCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("dress_code_id = ?", s.DressCodeID)
}

type ByActivity struct {
	ActivityID uuid.UUID
}

func (s ByActivity) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("activity_id = ?", s.ActivityID)
}

type ByRSVPStatus struct {
	Status string
}

func (s ByRSVPStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("rsvp_status = ?", s.Status)
}

// GuestSearch matches name, email or phone case-insensitively.
type GuestSearch struct {
	Term string
}

func (s GuestSearch) Apply(db *gorm.DB) *gorm.DB {
	term := "%" + strings.ToLower(strings.TrimSpace(s.Term)) + "%"
	return db.Where("(LOWER(full_name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?)", term, term, term)
}

// GuestsOfWedding restricts a guest-owned table to guests of one wedding.
type GuestsOfWedding struct {
	WeddingID uuid.UUID
}

func (s GuestsOfWedding) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("guest_id IN (?)", db.Session(&gorm.Session{NewDB: true}).
		Table("guests").Select("id").Where("wedding_id = ?", s.WeddingID))
}
