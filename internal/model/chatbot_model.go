package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ChatbotLog struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	WeddingId      uuid.UUID  `gorm:"type:uuid;not null;index"`
	GuestId        *uuid.UUID `gorm:"type:uuid;index"`
	SessionId      string     `gorm:"type:varchar(100);not null;index"`
	UserMessage    string     `gorm:"type:text;not null"`
	BotResponse    string     `gorm:"type:text;not null"`
	Language       string     `gorm:"type:varchar(5);not null;default:'en'"`
	MessageType    string     `gorm:"type:varchar(20);not null;default:'question'"`
	TopicDetected  *string    `gorm:"type:varchar(50)"`
	WasHelpful     *bool
	CouldNotAnswer bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index"`
}

func (ChatbotLog) TableName() string {
	return "chatbot_logs"
}

func (m *ChatbotLog) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	return nil
}

type ChatbotSettings struct {
	Id                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	WeddingId            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ChatbotName          string    `gorm:"type:varchar(100);not null;default:'Rada'"`
	GreetingMessageEn    *string   `gorm:"type:text"`
	GreetingMessageAr    *string   `gorm:"type:text"`
	SuggestedQuestionsEn datatypes.JSONSlice[string]
	SuggestedQuestionsAr datatypes.JSONSlice[string]
	CreatedAt            time.Time `gorm:"autoCreateTime"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime"`
}

func (ChatbotSettings) TableName() string {
	return "chatbot_settings"
}

func (m *ChatbotSettings) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	return nil
}
