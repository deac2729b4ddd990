package specification

import "gorm.io/gorm"

type BySession struct {
	SessionID string
}

func (s BySession) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

type ApprovedMedia struct {
	Approved bool
}

func (s ApprovedMedia) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_approved = ?", s.Approved)
}
