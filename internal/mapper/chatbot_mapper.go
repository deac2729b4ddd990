package mapper

import (
	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/model"
)

type ChatbotMapper struct{}

func NewChatbotMapper() *ChatbotMapper {
	return &ChatbotMapper{}
}

func (m *ChatbotMapper) LogToEntity(l *model.ChatbotLog) *entity.ChatbotLog {
	if l == nil {
		return nil
	}
	return &entity.ChatbotLog{
		Id:             l.Id,
		WeddingId:      l.WeddingId,
		GuestId:        l.GuestId,
		SessionId:      l.SessionId,
		UserMessage:    l.UserMessage,
		BotResponse:    l.BotResponse,
		Language:       l.Language,
		MessageType:    l.MessageType,
		TopicDetected:  l.TopicDetected,
		WasHelpful:     l.WasHelpful,
		CouldNotAnswer: l.CouldNotAnswer,
		CreatedAt:      l.CreatedAt,
	}
}

func (m *ChatbotMapper) LogToModel(l *entity.ChatbotLog) *model.ChatbotLog {
	if l == nil {
		return nil
	}
	return &model.ChatbotLog{
		Id:             l.Id,
		WeddingId:      l.WeddingId,
		GuestId:        l.GuestId,
		SessionId:      l.SessionId,
		UserMessage:    l.UserMessage,
		BotResponse:    l.BotResponse,
		Language:       l.Language,
		MessageType:    l.MessageType,
		TopicDetected:  l.TopicDetected,
		WasHelpful:     l.WasHelpful,
		CouldNotAnswer: l.CouldNotAnswer,
		CreatedAt:      l.CreatedAt,
	}
}

func (m *ChatbotMapper) LogsToEntities(logs []*model.ChatbotLog) []*entity.ChatbotLog {
	entities := make([]*entity.ChatbotLog, len(logs))
	for i, l := range logs {
		entities[i] = m.LogToEntity(l)
	}
	return entities
}

func (m *ChatbotMapper) SettingsToEntity(s *model.ChatbotSettings) *entity.ChatbotSettings {
	if s == nil {
		return nil
	}
	return &entity.ChatbotSettings{
		Id:                   s.Id,
		WeddingId:            s.WeddingId,
		ChatbotName:          s.ChatbotName,
		GreetingMessageEn:    s.GreetingMessageEn,
		GreetingMessageAr:    s.GreetingMessageAr,
		SuggestedQuestionsEn: []string(s.SuggestedQuestionsEn),
		SuggestedQuestionsAr: []string(s.SuggestedQuestionsAr),
		UpdatedAt:            updatedAtPtr(s.UpdatedAt),
	}
}

func (m *ChatbotMapper) SettingsToModel(s *entity.ChatbotSettings) *model.ChatbotSettings {
	if s == nil {
		return nil
	}
	return &model.ChatbotSettings{
		Id:                   s.Id,
		WeddingId:            s.WeddingId,
		ChatbotName:          s.ChatbotName,
		GreetingMessageEn:    s.GreetingMessageEn,
		GreetingMessageAr:    s.GreetingMessageAr,
		SuggestedQuestionsEn: s.SuggestedQuestionsEn,
		SuggestedQuestionsAr: s.SuggestedQuestionsAr,
		UpdatedAt:            derefTime(s.UpdatedAt),
	}
}
