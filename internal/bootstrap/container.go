package bootstrap

import (
	"context"
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"resumeforge-be/internal/config"
	"resumeforge-be/internal/controller"
	"resumeforge-be/internal/handler"
	"resumeforge-be/internal/pkg/logger"
	"resumeforge-be/internal/pkg/mailer"
	"resumeforge-be/internal/repository/memory"
	"resumeforge-be/internal/repository/unitofwork"
	"resumeforge-be/internal/service"
	"resumeforge-be/internal/websocket"
	"resumeforge-be/pkg/embedding"
	llmOllama "resumeforge-be/pkg/llm/ollama"
	pktNats "resumeforge-be/pkg/nats"
)

type Container struct {
	// Controllers
	AuthController        controller.IAuthController
	OAuthController       controller.IOAuthController
	PlanController        controller.IPlanController
	CreditController      controller.ICreditController
	PaymentController     controller.IPaymentController
	ResumeController      controller.IResumeController
	CoverLetterController controller.ICoverLetterController
	AiController          controller.IAiController
	SessionController     controller.ISessionController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil
	}

	// AI Providers
	embeddingProvider := embedding.NewOllamaProvider(
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OllamaEmbeddingModel,
	)
	llmProvider := llmOllama.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.LLMModel)

	// WebSocket Hub
	wsHub := websocket.NewHub(rdb, sysLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Keys.EmbedResumeTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmbedResumeTopic,
		uowFactory,
		embeddingProvider,
	)

	entitlementService := service.NewEntitlementService(uowFactory, natsPub)

	var redisViewStateRepo *memory.RedisViewStateRepository
	if rdb != nil {
		redisViewStateRepo = memory.NewRedisViewStateRepository(rdb)
	}
	sessionService := service.NewSessionService(memory.NewViewStateRepository(), redisViewStateRepo)

	authService := service.NewAuthService(uowFactory, emailService, entitlementService, sessionService)
	oauthService := service.NewOAuthService(uowFactory, entitlementService)
	planService := service.NewPlanService(uowFactory, entitlementService)
	paymentService := service.NewPaymentService(uowFactory, entitlementService, natsPub, emailService)
	resumeService := service.NewResumeService(uowFactory, entitlementService, publisherService, natsPub)
	coverLetterService := service.NewCoverLetterService(uowFactory, entitlementService, llmProvider)
	aiService := service.NewAiService(uowFactory, entitlementService, publisherService, llmProvider, embeddingProvider)

	// 3.5 Notification System
	notifHandler := handler.NewNotificationHandler(wsHub, sysLogger)
	if natsSub != nil {
		if err := notifHandler.BindEventStream(natsSub); err != nil {
			log.Printf("[WARN] Failed to bind notification event stream: %v", err)
		}
	}

	// 4. Controllers
	return &Container{
		NotificationHandler:   notifHandler,
		WebSocketHub:          wsHub,
		AuthController:        controller.NewAuthController(authService),
		OAuthController:       controller.NewOAuthController(oauthService),
		PlanController:        controller.NewPlanController(planService),
		CreditController:      controller.NewCreditController(entitlementService),
		PaymentController:     controller.NewPaymentController(paymentService),
		ResumeController:      controller.NewResumeController(resumeService),
		CoverLetterController: controller.NewCoverLetterController(coverLetterService),
		AiController:          controller.NewAiController(aiService),
		SessionController:     controller.NewSessionController(sessionService),

		ConsumerService: consumerService,
	}
}
