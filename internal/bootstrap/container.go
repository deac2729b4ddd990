package bootstrap

import (
	"context"
	"time"

	"wedding-portal-be/internal/config"
	"wedding-portal-be/internal/controller"
	"wedding-portal-be/internal/pkg/logger"
	"wedding-portal-be/internal/pkg/mailer"
	"wedding-portal-be/internal/pkg/ratelimit"
	"wedding-portal-be/internal/repository/memory"
	"wedding-portal-be/internal/repository/unitofwork"
	"wedding-portal-be/internal/service"
	"wedding-portal-be/pkg/events"
	"wedding-portal-be/pkg/llm"
	"wedding-portal-be/pkg/llm/factory"
	"wedding-portal-be/pkg/llm/resilient"
	pktNats "wedding-portal-be/pkg/nats"
	"wedding-portal-be/pkg/storage"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	Logger logger.ILogger

	// Controllers
	AuthController     controller.IAuthController
	WeddingController  controller.IWeddingController
	GuestController    controller.IGuestController
	ActivityController controller.IActivityController
	CatalogController  controller.ICatalogController
	MediaController    controller.IMediaController
	AdminController    controller.IAdminController
	PortalController   controller.IPortalController
	ChatbotController  controller.IChatbotController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	chatLogger := logger.NewIsolatedLogger(cfg.App.ChatLogFilePath)

	c := &Container{Logger: sysLogger}

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		sysLogger,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Infrastructure
	// NATS
	var publisher events.Publisher = events.NoopPublisher{}
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		sysLogger.Warn("BOOTSTRAP", "NATS unavailable, domain events disabled", map[string]interface{}{"error": err.Error()})
	} else {
		publisher = natsPub
		c.closers = append(c.closers, natsPub.Close)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		sysLogger.Warn("BOOTSTRAP", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{"error": err.Error()})
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if _, err := rdb.Ping(pingCtx).Result(); err != nil {
		sysLogger.Warn("BOOTSTRAP", "Failed to connect to Redis, chat rate limit fails open", map[string]interface{}{"error": err.Error()})
	}
	cancel()
	c.closers = append(c.closers, func() { _ = rdb.Close() })

	// Object storage
	var fileStorage storage.FileStorage
	storageCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	minioStorage, err := storage.NewMinioStorage(storageCtx, storage.MinioConfig{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
		PublicURL: cfg.Storage.PublicURL,
	})
	cancel()
	if err != nil {
		sysLogger.Warn("BOOTSTRAP", "Object storage unavailable, media uploads disabled", map[string]interface{}{"error": err.Error()})
	} else {
		fileStorage = minioStorage
	}

	// LLM
	var llmProvider llm.LLMProvider
	baseProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.LLMBaseURL,
		cfg.Ai.LLMAPIKey,
	)
	if err != nil {
		sysLogger.Warn("BOOTSTRAP", "LLM provider not configured, assistant answers with fallback", map[string]interface{}{"error": err.Error()})
	} else {
		resilientCfg := resilient.DefaultConfig()
		resilientCfg.RatePerSecond = cfg.Ai.LLMRatePerSecond
		llmProvider = resilient.New(baseProvider, resilientCfg, sysLogger)
		sysLogger.Info("BOOTSTRAP", "LLM provider ready", map[string]interface{}{
			"provider": cfg.Ai.LLMProvider,
			"model":    cfg.Ai.LLMModel,
		})
	}

	// In-memory caches
	sessionRepo := memory.NewSessionRepository(cfg.Cache.ChatHistoryTTL, cfg.Cache.CleanupInterval)
	settingsCache := memory.NewSettingsCache(cfg.Cache.SettingsTTL, cfg.Cache.CleanupInterval)

	// 4. Services
	publisherService := service.NewPublisherService(service.TopicGuestAccessed, pubSub)
	c.ConsumerService = service.NewConsumerService(pubSub, service.TopicGuestAccessed, uowFactory, sysLogger)

	guestAccessService := service.NewGuestAccessService(uowFactory, publisherService, publisher, sysLogger)
	authService := service.NewAuthService(uowFactory, cfg.Auth, sysLogger)
	weddingService := service.NewWeddingService(uowFactory, sysLogger)
	guestService := service.NewGuestService(uowFactory, guestAccessService, fileStorage, emailService, cfg.App.ClientURL, sysLogger)
	activityService := service.NewActivityService(uowFactory, sysLogger)
	catalogService := service.NewCatalogService(uowFactory, sysLogger)
	mediaService := service.NewMediaService(uowFactory, fileStorage, publisher, sysLogger)
	portalService := service.NewPortalService(uowFactory, sysLogger)
	preferenceService := service.NewPreferenceService(uowFactory, sysLogger)
	registrationService := service.NewActivityRegistrationService(uowFactory, publisher, sysLogger)
	rsvpService := service.NewRSVPService(uowFactory, publisher, sysLogger)
	adminService := service.NewAdminService(sysLogger)
	assistantService := service.NewAssistantService(
		uowFactory,
		llmProvider,
		sessionRepo,
		settingsCache,
		service.AssistantConfig{Timeout: cfg.Ai.LLMTimeout},
		chatLogger,
	)
	chatLimiter := ratelimit.NewChatLimiter(rdb, cfg.Ai.ChatRatePerMinute, sysLogger)

	// 5. Controllers
	c.AuthController = controller.NewAuthController(authService)
	c.WeddingController = controller.NewWeddingController(weddingService)
	c.GuestController = controller.NewGuestController(guestService)
	c.ActivityController = controller.NewActivityController(activityService)
	c.CatalogController = controller.NewCatalogController(catalogService)
	c.MediaController = controller.NewMediaController(mediaService)
	c.AdminController = controller.NewAdminController(adminService, assistantService)
	c.PortalController = controller.NewPortalController(
		guestAccessService,
		portalService,
		preferenceService,
		registrationService,
		rsvpService,
		mediaService,
	)
	c.ChatbotController = controller.NewChatbotController(guestAccessService, assistantService, chatLimiter)

	c.closers = append(c.closers, func() {
		_ = chatLogger.Sync()
		_ = sysLogger.Sync()
	})

	return c
}

// Close releases connections in reverse order of acquisition.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
