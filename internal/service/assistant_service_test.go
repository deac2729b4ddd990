package service

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"wedding-portal-be/internal/dto"
	"wedding-portal-be/internal/pkg/apperror"
	"wedding-portal-be/internal/repository/memory"
	"wedding-portal-be/internal/repository/specification"
	"wedding-portal-be/pkg/assistant"
	"wedding-portal-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAssistantForTest(f *fixture, provider llm.LLMProvider) IAssistantService {
	return NewAssistantService(
		f.factory,
		provider,
		memory.NewSessionRepository(time.Hour, time.Hour),
		memory.NewSettingsCache(time.Minute, time.Minute),
		AssistantConfig{Timeout: time.Second},
		f.log,
	)
}

func TestChatFallsBackWhenModelFails(t *testing.T) {
	f := newFixture(t)
	provider := &mockLLM{}
	provider.On("Chat", mock.Anything, mock.Anything).Return("", errors.New("connection refused"))
	svc := newAssistantForTest(f, provider)
	w := f.wedding()
	g := f.guest(w, "Sara Haddad")

	res, err := svc.Chat(f.ctx, w, g, &dto.ChatRequest{Message: "Which hotel should I book?", SessionId: "s1"})
	require.NoError(t, err)
	assert.Equal(t, assistant.FallbackMessage(assistant.English), res.Response)
	require.NotNil(t, res.Topic)
	assert.Equal(t, "hotel", *res.Topic)

	logged, err := f.uow().ChatbotLogRepository().FindOne(f.ctx, specification.ByID{ID: res.LogId})
	require.NoError(t, err)
	require.NotNil(t, logged)
	assert.Equal(t, res.Response, logged.BotResponse)
	assert.Equal(t, "question", logged.MessageType)
	assert.Equal(t, "hotel", *logged.TopicDetected)
	require.NotNil(t, logged.GuestId)
	assert.Equal(t, g.Id, *logged.GuestId)
}

func TestChatArabicFallback(t *testing.T) {
	f := newFixture(t)
	svc := newAssistantForTest(f, nil)
	w := f.wedding()

	res, err := svc.Chat(f.ctx, w, nil, &dto.ChatRequest{Message: "أين مكان الحفل؟", SessionId: "s1"})
	require.NoError(t, err)
	assert.Equal(t, "ar", res.Language)
	assert.Equal(t, assistant.FallbackMessage(assistant.Arabic), res.Response)
}

func TestChatLanguageHintWins(t *testing.T) {
	f := newFixture(t)
	svc := newAssistantForTest(f, nil)

	res, err := svc.Chat(f.ctx, f.wedding(), nil, &dto.ChatRequest{Message: "hello", SessionId: "s1", Language: "ar"})
	require.NoError(t, err)
	assert.Equal(t, "ar", res.Language)
}

func TestChatPromptCarriesWeddingAndHistory(t *testing.T) {
	f := newFixture(t)
	provider := &mockLLM{}
	svc := newAssistantForTest(f, provider)
	w := f.wedding()
	g := f.guest(w, "Sara Haddad")
	f.activity(w, "Henna Night", nil)

	provider.On("Chat", mock.Anything, mock.MatchedBy(func(msgs []llm.Message) bool {
		return len(msgs) == 2 && msgs[0].Role == "system" &&
			strings.Contains(msgs[0].Content, "Layla & Omar") &&
			strings.Contains(msgs[0].Content, "Henna Night") &&
			strings.Contains(msgs[0].Content, "Sara Haddad")
	})).Return("The henna night starts at 7pm.", nil).Once()

	res, err := svc.Chat(f.ctx, w, g, &dto.ChatRequest{Message: "When is the henna?", SessionId: "s1"})
	require.NoError(t, err)
	assert.Equal(t, "The henna night starts at 7pm.", res.Response)

	// second turn replays the stored exchange
	provider.On("Chat", mock.Anything, mock.MatchedBy(func(msgs []llm.Message) bool {
		return len(msgs) == 4 && msgs[1].Content == "When is the henna?" && msgs[2].Role == "assistant"
	})).Return("You're welcome!", nil).Once()

	_, err = svc.Chat(f.ctx, w, g, &dto.ChatRequest{Message: "thanks", SessionId: "s1"})
	require.NoError(t, err)
	provider.AssertExpectations(t)
}

func TestChatMarksUnansweredReplies(t *testing.T) {
	f := newFixture(t)
	provider := &mockLLM{}
	provider.On("Chat", mock.Anything, mock.Anything).Return("Sorry, I don't have information about parking.", nil)
	svc := newAssistantForTest(f, provider)

	res, err := svc.Chat(f.ctx, f.wedding(), nil, &dto.ChatRequest{Message: "Is there parking?", SessionId: "s1"})
	require.NoError(t, err)

	logged, err := f.uow().ChatbotLogRepository().FindOne(f.ctx, specification.ByID{ID: res.LogId})
	require.NoError(t, err)
	assert.True(t, logged.CouldNotAnswer)
}

func TestFeedbackOnlyOnce(t *testing.T) {
	f := newFixture(t)
	svc := newAssistantForTest(f, nil)
	w := f.wedding()

	res, err := svc.Chat(f.ctx, w, nil, &dto.ChatRequest{Message: "hello", SessionId: "s1"})
	require.NoError(t, err)

	helpful := true
	require.NoError(t, svc.Feedback(f.ctx, &dto.ChatFeedbackRequest{LogId: res.LogId, Helpful: &helpful}))

	err = svc.Feedback(f.ctx, &dto.ChatFeedbackRequest{LogId: res.LogId, Helpful: &helpful})
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))

	err = svc.Feedback(f.ctx, &dto.ChatFeedbackRequest{LogId: uuid.New(), Helpful: &helpful})
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	stats, err := svc.Stats(f.ctx, w.Id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalMessages)
	assert.EqualValues(t, 1, stats.RatedCount)
	assert.EqualValues(t, 1, stats.HelpfulCount)
}

func TestChatbotSettings(t *testing.T) {
	f := newFixture(t)
	svc := newAssistantForTest(f, nil)
	w := f.wedding()

	res, err := svc.Settings(f.ctx, w.Id)
	require.NoError(t, err)
	assert.Equal(t, assistant.DefaultBotName, res.ChatbotName)

	name := "Noor"
	res, err = svc.UpdateSettings(f.ctx, w.Id, &dto.UpdateChatbotSettingsRequest{
		ChatbotName:          &name,
		SuggestedQuestionsEn: []string{"Where is the venue?"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Noor", res.ChatbotName)

	res, err = svc.Settings(f.ctx, w.Id)
	require.NoError(t, err)
	assert.Equal(t, "Noor", res.ChatbotName)
	assert.Equal(t, []string{"Where is the venue?"}, res.SuggestedQuestionsEn)

	blank := "  "
	_, err = svc.UpdateSettings(f.ctx, w.Id, &dto.UpdateChatbotSettingsRequest{ChatbotName: &blank})
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidArgument))
}

func TestChatLogsBySession(t *testing.T) {
	f := newFixture(t)
	svc := newAssistantForTest(f, nil)
	w := f.wedding()

	for _, session := range []string{"a", "a", "b"} {
		_, err := svc.Chat(f.ctx, w, nil, &dto.ChatRequest{Message: "hello", SessionId: session})
		require.NoError(t, err)
	}

	logs, err := svc.Logs(f.ctx, w.Id, &dto.ListChatLogsRequest{SessionId: "a"})
	require.NoError(t, err)
	assert.Len(t, logs, 2)

	logs, err = svc.Logs(f.ctx, w.Id, &dto.ListChatLogsRequest{})
	require.NoError(t, err)
	assert.Len(t, logs, 3)
}

func TestChatSessionIsPrivateToGuest(t *testing.T) {
	f := newFixture(t)
	provider := &mockLLM{}
	svc := newAssistantForTest(f, provider)
	w := f.wedding()
	first := f.guest(w, "Sara Haddad")
	second := f.guest(w, "Karim Nasser")

	provider.On("Chat", mock.Anything, mock.Anything).Return("Noted.", nil).Once()
	_, err := svc.Chat(f.ctx, w, first, &dto.ChatRequest{Message: "my flight is EK999", SessionId: "shared"})
	require.NoError(t, err)

	var seen []llm.Message
	provider.On("Chat", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		seen = args.Get(1).([]llm.Message)
	}).Return("Hello!", nil).Once()
	_, err = svc.Chat(f.ctx, w, second, &dto.ChatRequest{Message: "hello", SessionId: "shared"})
	require.NoError(t, err)

	require.Len(t, seen, 2)
	for _, m := range seen[1:] {
		assert.NotContains(t, m.Content, "EK999")
	}
	provider.AssertExpectations(t)
}

func TestChatConcurrentTurnsOnOneSession(t *testing.T) {
	f := newFixture(t)
	provider := &mockLLM{}
	provider.On("Chat", mock.Anything, mock.Anything).Return("ok", nil)
	svc := newAssistantForTest(f, provider)
	w := f.wedding()
	g := f.guest(w, "Sara Haddad")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Chat(f.ctx, w, g, &dto.ChatRequest{Message: "hello", SessionId: "s1"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}
