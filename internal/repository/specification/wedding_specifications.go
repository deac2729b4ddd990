package specification

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedByWedding scopes any tenant-owned table.
type OwnedByWedding struct {
	WeddingID uuid.UUID
}

func (s OwnedByWedding) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("wedding_id = ?", s.WeddingID)
}

type ByAdminEmail struct {
	Email string
}

func (s ByAdminEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(admin_email) = ?", strings.ToLower(strings.TrimSpace(s.Email)))
}

type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
