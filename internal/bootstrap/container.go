package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"gourmet-bot-be/internal/config"
	"gourmet-bot-be/internal/controller"
	"gourmet-bot-be/internal/pkg/logger"
	"gourmet-bot-be/internal/repository/implementation"
	"gourmet-bot-be/internal/repository/memory"
	"gourmet-bot-be/internal/repository/redisstore"
	"gourmet-bot-be/internal/service"
	"gourmet-bot-be/pkg/extract"
	"gourmet-bot-be/pkg/hotpepper"
	"gourmet-bot-be/pkg/intent"
	"gourmet-bot-be/pkg/line"
	"gourmet-bot-be/pkg/llm"
	"gourmet-bot-be/pkg/llm/factory"
	pkgNats "gourmet-bot-be/pkg/nats"
	"gourmet-bot-be/pkg/payment"
	"gourmet-bot-be/pkg/quota"
	"gourmet-bot-be/pkg/recommend"
	"gourmet-bot-be/pkg/store"
)

type Container struct {
	// Controllers
	WebhookController controller.IWebhookController
	PaymentController controller.IPaymentController

	// Exposed for shutdown
	NatsPublisher *pkgNats.Publisher
	Logger        logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	userRepo := implementation.NewUserRepository(db)

	// 2. Plan Catalog
	catalog := quota.DefaultCatalog()
	// Quick replies carry the plan labels back as message text.
	intent.RegisterPlanLabels(catalog.Labels())

	// 3. LLM Provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Ai.OpenAIAPIKey,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	llmProvider = llm.NewTrafficProvider(llmProvider, llm.InitTrafficLogger())
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// 4. Session Storage
	var sessionRepo store.Repository
	if cfg.App.SessionBackend == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		sessionRepo = redisstore.NewSessionRepository(rdb, 1*time.Hour, sysLogger)
		log.Println("[INFO] Using Session Backend: REDIS")
	} else {
		sessionRepo = memory.NewSessionRepository(1 * time.Hour)
		log.Println("[INFO] Using Session Backend: MEMORY")
	}

	// 5. Event Bus (optional)
	var natsPub *pkgNats.Publisher
	if cfg.App.NatsURL != "" {
		natsPub, err = pkgNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// 6. External Collaborators
	lineClient := line.NewClient(cfg.Line.ChannelToken, cfg.Line.ChannelSecret)
	hotpepperClient := hotpepper.NewClient(cfg.Hotpepper.APIKey)
	gateway := payment.NewMidtransGateway(
		cfg.Payment.ServerKey,
		cfg.Payment.IsProduction,
		cfg.Payment.PortalBaseURL,
		catalog,
	)

	// 7. Domain Services
	ledger := quota.NewLedger(implementation.NewUserQuotaStore(userRepo), catalog)
	extractor := extract.NewExtractor(llmProvider)
	pipeline := recommend.NewPipeline(hotpepperClient, llmProvider, sessionRepo, cfg.Bot.RecommendCount)

	paymentService := service.NewPaymentService(gateway, gateway, userRepo, catalog, natsPub, sysLogger)
	botService := service.NewBotService(
		lineClient,
		ledger,
		catalog,
		extractor,
		pipeline,
		sessionRepo,
		paymentService,
		userRepo,
		natsPub,
		sysLogger,
	)

	// 8. Controllers
	webhookController := controller.NewWebhookController(botService, cfg.Line.ChannelSecret, sysLogger)
	paymentController := controller.NewPaymentController(paymentService, sysLogger)

	return &Container{
		WebhookController: webhookController,
		PaymentController: paymentController,
		NatsPublisher:     natsPub,
		Logger:            sysLogger,
	}
}
