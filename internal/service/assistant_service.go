package service

import (
	"context"
	"strings"
	"time"

	"wedding-portal-be/internal/dto"
	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/mapper"
	"wedding-portal-be/internal/pkg/apperror"
	"wedding-portal-be/internal/pkg/logger"
	"wedding-portal-be/internal/repository/memory"
	"wedding-portal-be/internal/repository/specification"
	"wedding-portal-be/internal/repository/unitofwork"
	"wedding-portal-be/pkg/assistant"
	"wedding-portal-be/pkg/llm"
	"wedding-portal-be/pkg/store"

	"github.com/google/uuid"
)

const (
	chatHistoryLimit = 20
	chatTemperature  = 0.7
	chatMaxTokens    = 1024
	chatMessageType  = "question"
)

type AssistantConfig struct {
	Timeout time.Duration
}

// IAssistantService answers guest questions from the wedding's own data.
// Language model failures never reach the caller; the guest gets an apology
// and the exchange is still logged.
type IAssistantService interface {
	Chat(ctx context.Context, wedding *entity.Wedding, guest *entity.Guest, req *dto.ChatRequest) (*dto.ChatResponse, error)
	Feedback(ctx context.Context, req *dto.ChatFeedbackRequest) error

	Settings(ctx context.Context, weddingId uuid.UUID) (*dto.ChatbotSettingsResponse, error)
	UpdateSettings(ctx context.Context, weddingId uuid.UUID, req *dto.UpdateChatbotSettingsRequest) (*dto.ChatbotSettingsResponse, error)
	Stats(ctx context.Context, weddingId uuid.UUID) (*dto.ChatbotStatsResponse, error)
	Logs(ctx context.Context, weddingId uuid.UUID, req *dto.ListChatLogsRequest) ([]dto.ChatLogResponse, error)
}

type assistantService struct {
	uowFactory    unitofwork.RepositoryFactory
	llmProvider   llm.LLMProvider
	sessions      *memory.SessionRepository
	settingsCache *memory.SettingsCache
	cfg           AssistantConfig
	logger        logger.ILogger
}

func NewAssistantService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	sessions *memory.SessionRepository,
	settingsCache *memory.SettingsCache,
	cfg AssistantConfig,
	log logger.ILogger,
) IAssistantService {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &assistantService{
		uowFactory:    uowFactory,
		llmProvider:   llmProvider,
		sessions:      sessions,
		settingsCache: settingsCache,
		cfg:           cfg,
		logger:        log,
	}
}

func (s *assistantService) Chat(ctx context.Context, wedding *entity.Wedding, guest *entity.Guest, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, apperror.InvalidArgument("message is required")
	}

	lang := assistant.DetectLanguage(message)
	if hint, ok := assistant.ParseLanguage(req.Language); ok {
		lang = hint
	}
	var topic *string
	if t, ok := assistant.DetectTopic(message); ok {
		topic = &t
	}

	settings, err := s.loadSettings(ctx, wedding.Id)
	if err != nil {
		return nil, err
	}

	weddingFacts, err := s.weddingFacts(ctx, wedding)
	if err != nil {
		return nil, err
	}
	var guestFacts *assistant.GuestFacts
	if guest != nil {
		if guestFacts, err = s.guestFacts(ctx, guest); err != nil {
			return nil, err
		}
	}

	session := s.session(wedding, guest, req)
	history := session.Tail(chatHistoryLimit)
	if len(req.History) > 0 {
		history = historyFromRequest(req.History)
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{
		Role:    "system",
		Content: assistant.BuildSystemPrompt(settings.ChatbotName, lang, weddingFacts, guestFacts),
	})
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: "user", Content: message})

	response := s.complete(ctx, messages, lang, wedding.Id)

	entry := &entity.ChatbotLog{
		WeddingId:      wedding.Id,
		SessionId:      req.SessionId,
		UserMessage:    message,
		BotResponse:    response,
		Language:       string(lang),
		MessageType:    chatMessageType,
		TopicDetected:  topic,
		CouldNotAnswer: assistant.CouldNotAnswer(response),
		CreatedAt:      time.Now(),
	}
	if guest != nil {
		entry.GuestId = &guest.Id
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ChatbotLogRepository().Create(ctx, entry); err != nil {
		return nil, err
	}

	session.Append(chatHistoryLimit,
		llm.Message{Role: "user", Content: message},
		llm.Message{Role: "assistant", Content: response},
	)
	if s.sessions != nil {
		s.sessions.Save(session)
	}

	return &dto.ChatResponse{
		LogId:     entry.Id,
		SessionId: req.SessionId,
		Response:  response,
		Language:  string(lang),
		Topic:     topic,
	}, nil
}

// complete calls the model under the request timeout and substitutes the
// apology in the detected language on any failure.
func (s *assistantService) complete(ctx context.Context, messages []llm.Message, lang assistant.Language, weddingId uuid.UUID) string {
	if s.llmProvider == nil {
		return assistant.FallbackMessage(lang)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	started := time.Now()
	out, err := s.llmProvider.Chat(callCtx, messages,
		llm.WithTemperature(chatTemperature),
		llm.WithMaxTokens(chatMaxTokens),
	)
	if err == nil && strings.TrimSpace(out) == "" {
		err = apperror.Unavailable("language model returned an empty reply", nil)
	}
	if err != nil {
		s.logger.Error("ASSISTANT", "Language model call failed", map[string]interface{}{
			"wedding_id": weddingId.String(),
			"elapsed_ms": time.Since(started).Milliseconds(),
			"error":      err.Error(),
		})
		return assistant.FallbackMessage(lang)
	}
	return strings.TrimSpace(out)
}

func historyFromRequest(turns []dto.ChatTurn) []llm.Message {
	if len(turns) > chatHistoryLimit {
		turns = turns[len(turns)-chatHistoryLimit:]
	}
	out := make([]llm.Message, 0, len(turns))
	for _, t := range turns {
		if t.Role != "user" && t.Role != "assistant" {
			continue
		}
		out = append(out, llm.Message{Role: t.Role, Content: t.Content})
	}
	return out
}

func (s *assistantService) session(wedding *entity.Wedding, guest *entity.Guest, req *dto.ChatRequest) *store.ChatSession {
	session := &store.ChatSession{ID: req.SessionId, WeddingID: wedding.Id.String()}
	if guest != nil {
		session.GuestID = guest.Id.String()
	}
	if s.sessions != nil {
		if existing, ok := s.sessions.Get(session.WeddingID, session.GuestID, session.ID); ok {
			return existing
		}
	}
	return session
}

func (s *assistantService) weddingFacts(ctx context.Context, wedding *entity.Wedding) (assistant.WeddingFacts, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	date := wedding.WeddingDate
	facts := assistant.WeddingFacts{
		CoupleNames:  wedding.CoupleNames,
		Date:         &date,
		VenueName:    deref(wedding.VenueName),
		VenueAddress: deref(wedding.VenueAddress),
		VenueCity:    deref(wedding.VenueCity),
		VenueCountry: deref(wedding.VenueCountry),
	}

	activities, err := uow.ActivityRepository().FindAll(ctx,
		specification.OwnedByWedding{WeddingID: wedding.Id},
		specification.OrderBy{Field: "date_time"},
	)
	if err != nil {
		return facts, err
	}
	for _, a := range activities {
		facts.Schedule = append(facts.Schedule, assistant.ScheduleItem{
			Name:      a.ActivityName,
			At:        a.DateTime,
			Location:  deref(a.Location),
			DressCode: deref(a.DressCodeInfo),
			Food:      deref(a.FoodDescription),
		})
	}

	hotels, err := uow.SuggestedHotelRepository().FindAll(ctx,
		specification.OwnedByWedding{WeddingID: wedding.Id},
		specification.ActiveOnly{},
		specification.OrderBy{Field: "display_order"},
	)
	if err != nil {
		return facts, err
	}
	for _, h := range hotels {
		facts.Hotels = append(facts.Hotels, assistant.HotelItem{
			Name:       h.HotelName,
			Stars:      h.StarRating,
			PriceRange: deref(h.PriceRange),
			Distance:   deref(h.DistanceFromVenue),
		})
	}

	return facts, nil
}

func (s *assistantService) guestFacts(ctx context.Context, guest *entity.Guest) (*assistant.GuestFacts, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	facts := &assistant.GuestFacts{
		Name:       guest.FullName,
		RSVPStatus: string(guest.RSVPStatus),
		Attendees:  guest.NumberOfAttendees,
	}

	travel, err := uow.TravelInfoRepository().FindOne(ctx, specification.ByGuest{GuestID: guest.Id})
	if err != nil {
		return nil, err
	}
	if travel != nil {
		facts.Travel = &assistant.TravelFacts{
			Arriving:    travel.ArrivalDate,
			Departing:   travel.DepartureDate,
			NeedsPickup: travel.NeedsPickup,
		}
	}

	hotel, err := uow.HotelInfoRepository().FindOne(ctx, specification.ByGuest{GuestID: guest.Id})
	if err != nil {
		return nil, err
	}
	if hotel != nil {
		facts.Hotel = &assistant.HotelFacts{CustomName: deref(hotel.CustomHotelName)}
		if hotel.SuggestedHotelId != nil {
			suggested, err := uow.SuggestedHotelRepository().FindOne(ctx, specification.ByID{ID: *hotel.SuggestedHotelId})
			if err != nil {
				return nil, err
			}
			if suggested != nil {
				facts.Hotel.CustomName = suggested.HotelName
			}
		}
	}

	registrations, err := uow.GuestActivityRepository().FindAll(ctx, specification.ByGuest{GuestID: guest.Id})
	if err != nil {
		return nil, err
	}
	if len(registrations) > 0 {
		ids := make([]uuid.UUID, 0, len(registrations))
		for _, r := range registrations {
			ids = append(ids, r.ActivityId)
		}
		activities, err := uow.ActivityRepository().FindAll(ctx,
			specification.ByIDs{IDs: ids},
			specification.OrderBy{Field: "date_time"},
		)
		if err != nil {
			return nil, err
		}
		for _, a := range activities {
			facts.Activities = append(facts.Activities, a.ActivityName)
		}
	}

	return facts, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// loadSettings falls back to defaults when the wedding never saved any.
func (s *assistantService) loadSettings(ctx context.Context, weddingId uuid.UUID) (*entity.ChatbotSettings, error) {
	if s.settingsCache != nil {
		if cached, ok := s.settingsCache.Get(weddingId); ok {
			return cached, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	settings, err := uow.ChatbotSettingsRepository().FindOne(ctx, specification.OwnedByWedding{WeddingID: weddingId})
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.ChatbotSettings{WeddingId: weddingId, ChatbotName: assistant.DefaultBotName}
	}

	if s.settingsCache != nil {
		s.settingsCache.Set(settings)
	}
	return settings, nil
}

func (s *assistantService) Settings(ctx context.Context, weddingId uuid.UUID) (*dto.ChatbotSettingsResponse, error) {
	settings, err := s.loadSettings(ctx, weddingId)
	if err != nil {
		return nil, err
	}
	res := mapper.ChatbotSettingsToResponse(settings)
	return &res, nil
}

func (s *assistantService) UpdateSettings(ctx context.Context, weddingId uuid.UUID, req *dto.UpdateChatbotSettingsRequest) (*dto.ChatbotSettingsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ChatbotSettingsRepository()

	settings, err := repo.FindOne(ctx, specification.OwnedByWedding{WeddingID: weddingId})
	if err != nil {
		return nil, err
	}
	isNew := settings == nil
	if isNew {
		settings = &entity.ChatbotSettings{WeddingId: weddingId, ChatbotName: assistant.DefaultBotName}
	}

	if req.ChatbotName != nil {
		name := strings.TrimSpace(*req.ChatbotName)
		if name == "" {
			return nil, apperror.InvalidArgument("chatbot_name must not be empty")
		}
		settings.ChatbotName = name
	}
	if req.GreetingMessageEn != nil {
		settings.GreetingMessageEn = req.GreetingMessageEn
	}
	if req.GreetingMessageAr != nil {
		settings.GreetingMessageAr = req.GreetingMessageAr
	}
	if req.SuggestedQuestionsEn != nil {
		settings.SuggestedQuestionsEn = req.SuggestedQuestionsEn
	}
	if req.SuggestedQuestionsAr != nil {
		settings.SuggestedQuestionsAr = req.SuggestedQuestionsAr
	}

	if isNew {
		err = repo.Create(ctx, settings)
	} else {
		err = repo.Update(ctx, settings)
	}
	if err != nil {
		return nil, err
	}

	if s.settingsCache != nil {
		s.settingsCache.Invalidate(weddingId)
	}

	res := mapper.ChatbotSettingsToResponse(settings)
	return &res, nil
}

// Feedback can be given once per exchange.
func (s *assistantService) Feedback(ctx context.Context, req *dto.ChatFeedbackRequest) error {
	if req.Helpful == nil {
		return apperror.InvalidArgument("helpful is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	updated, err := uow.ChatbotLogRepository().SetHelpful(ctx, req.LogId, *req.Helpful)
	if err != nil {
		return err
	}
	if updated {
		return nil
	}

	existing, err := uow.ChatbotLogRepository().FindOne(ctx, specification.ByID{ID: req.LogId})
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("chat log not found")
	}
	return apperror.Conflict("feedback already recorded")
}

func (s *assistantService) Stats(ctx context.Context, weddingId uuid.UUID) (*dto.ChatbotStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	stats, err := uow.ChatbotLogRepository().Stats(ctx, weddingId)
	if err != nil {
		return nil, err
	}
	res := mapper.ChatbotStatsToResponse(stats)
	return &res, nil
}

func (s *assistantService) Logs(ctx context.Context, weddingId uuid.UUID, req *dto.ListChatLogsRequest) ([]dto.ChatLogResponse, error) {
	limit := req.Limit
	if limit < 1 {
		limit = 100
	}

	filters := []specification.Specification{specification.OwnedByWedding{WeddingID: weddingId}}
	if id := strings.TrimSpace(req.SessionId); id != "" {
		filters = append(filters, specification.BySession{SessionID: id})
	}
	filters = append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: req.Offset},
	)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	logs, err := uow.ChatbotLogRepository().FindAll(ctx, filters...)
	if err != nil {
		return nil, err
	}

	res := make([]dto.ChatLogResponse, 0, len(logs))
	for _, l := range logs {
		res = append(res, mapper.ChatLogToResponse(l))
	}
	return res, nil
}
