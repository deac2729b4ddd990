package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatTurn struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

type ChatRequest struct {
	Message   string     `json:"message" validate:"required,max=2000"`
	SessionId string     `json:"session_id" validate:"required,max=100"`
	History   []ChatTurn `json:"history" validate:"omitempty,max=50,dive"`
	Language  string     `json:"language" validate:"omitempty,oneof=en ar"`
}

type ChatResponse struct {
	LogId     uuid.UUID `json:"log_id"`
	SessionId string    `json:"session_id"`
	Response  string    `json:"response"`
	Language  string    `json:"language"`
	Topic     *string   `json:"topic"`
}

type ChatbotSettingsResponse struct {
	ChatbotName          string   `json:"chatbot_name"`
	GreetingMessageEn    *string  `json:"greeting_message_en"`
	GreetingMessageAr    *string  `json:"greeting_message_ar"`
	SuggestedQuestionsEn []string `json:"suggested_questions_en"`
	SuggestedQuestionsAr []string `json:"suggested_questions_ar"`
}

type UpdateChatbotSettingsRequest struct {
	ChatbotName          *string  `json:"chatbot_name" validate:"omitempty,min=1,max=100"`
	GreetingMessageEn    *string  `json:"greeting_message_en"`
	GreetingMessageAr    *string  `json:"greeting_message_ar"`
	SuggestedQuestionsEn []string `json:"suggested_questions_en"`
	SuggestedQuestionsAr []string `json:"suggested_questions_ar"`
}

type ChatFeedbackRequest struct {
	LogId   uuid.UUID `json:"log_id" validate:"required"`
	Helpful *bool     `json:"helpful" validate:"required"`
}

type ChatbotStatsResponse struct {
	TotalMessages   int64            `json:"total_messages"`
	UniqueSessions  int64            `json:"unique_sessions"`
	UnansweredCount int64            `json:"unanswered_count"`
	Topics          map[string]int64 `json:"topics"`
	Languages       map[string]int64 `json:"languages"`
	HelpfulCount    int64            `json:"helpful_count"`
	RatedCount      int64            `json:"rated_count"`
	HelpfulRate     float64          `json:"helpful_rate"`
}

type ListChatLogsRequest struct {
	SessionId string `query:"session_id"`
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=500"`
	Offset    int    `query:"offset" validate:"omitempty,min=0"`
}

type ChatLogResponse struct {
	Id             uuid.UUID  `json:"id"`
	GuestId        *uuid.UUID `json:"guest_id"`
	SessionId      string     `json:"session_id"`
	UserMessage    string     `json:"user_message"`
	BotResponse    string     `json:"bot_response"`
	Language       string     `json:"language"`
	TopicDetected  *string    `json:"topic_detected"`
	WasHelpful     *bool      `json:"was_helpful"`
	CouldNotAnswer bool       `json:"could_not_answer"`
	CreatedAt      time.Time  `json:"created_at"`
}

type SystemLogResponse struct {
	Level     string                 `json:"level"`
	Timestamp string                 `json:"timestamp"`
	Module    string                 `json:"module"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
}
