package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatbotLog is append-only apart from WasHelpful, which is set at most once.
type ChatbotLog struct {
	Id             uuid.UUID
	WeddingId      uuid.UUID
	GuestId        *uuid.UUID
	SessionId      string
	UserMessage    string
	BotResponse    string
	Language       string
	MessageType    string
	TopicDetected  *string
	WasHelpful     *bool
	CouldNotAnswer bool
	CreatedAt      time.Time
}

type ChatbotSettings struct {
	Id                   uuid.UUID
	WeddingId            uuid.UUID
	ChatbotName          string
	GreetingMessageEn    *string
	GreetingMessageAr    *string
	SuggestedQuestionsEn []string
	SuggestedQuestionsAr []string
	UpdatedAt            *time.Time
}

type ChatbotStats struct {
	TotalMessages   int64
	UniqueSessions  int64
	UnansweredCount int64
	Topics          map[string]int64
	Languages       map[string]int64
	HelpfulCount    int64
	RatedCount      int64
}

// HelpfulRate is a percentage rounded to one decimal.
func (s ChatbotStats) HelpfulRate() float64 {
	if s.RatedCount == 0 {
		return 0
	}
	rate := float64(s.HelpfulCount) / float64(s.RatedCount) * 100
	return float64(int64(rate*10+0.5)) / 10
}
