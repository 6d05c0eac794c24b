package bootstrap

import (
	"time"

	"mindful-campus-be/internal/config"
	"mindful-campus-be/internal/controller"
	"mindful-campus-be/internal/pkg/logger"
	"mindful-campus-be/internal/pkg/mailer"
	"mindful-campus-be/internal/repository/memory"
	"mindful-campus-be/internal/repository/unitofwork"
	"mindful-campus-be/internal/service"
	"mindful-campus-be/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	WellnessController   controller.IWellnessController
	BookingController    controller.IBookingController
	AssessmentController controller.IAssessmentController
	ChatController       controller.IChatController
	HealthController     controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	PubSub *gochannel.GoChannel
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config, sysLogger logger.ILogger) (*Container, error) {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		sysLogger,
	)

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)

	// 3. Chat backend; nil provider means fallback-only
	llmProvider, err := factory.NewLLMProvider(
		factory.ProviderOpenAI,
		cfg.Chat.APIKey,
		cfg.Chat.BaseURL,
		cfg.Chat.Model,
		time.Duration(cfg.Chat.TimeoutSeconds)*time.Second,
	)
	if err != nil {
		return nil, err
	}
	if llmProvider == nil {
		sysLogger.Warn("BOOTSTRAP", "OPENAI_API_KEY not set, chat runs in fallback-only mode", nil)
	} else {
		sysLogger.Info("BOOTSTRAP", "Using chat model", map[string]interface{}{"model": cfg.Chat.Model})
	}

	chatThrottle := memory.NewChatThrottleRepository(cfg.Chat.RateLimitPerMinute, time.Minute)

	// Outbound chat failures and breaker changes go to their own file
	var chatLogger logger.ILogger = sysLogger
	if cfg.Chat.LogFilePath != "" {
		chatLogger = logger.NewIsolatedLogger(cfg.Chat.LogFilePath)
	}

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Booking.EventsTopic)
	consumerService := service.NewConsumerService(pubSub, cfg.Booking.EventsTopic, emailService, sysLogger)

	contentService := service.NewContentService(nil, nil)
	historyService := service.NewHistoryService(uowFactory, sysLogger)
	bookingService := service.NewBookingService(uowFactory, publisherService, cfg.Booking.JoinLinkBaseURL, nil, sysLogger)
	assessmentService := service.NewAssessmentService(uowFactory, sysLogger)
	chatService := service.NewChatService(
		uowFactory,
		llmProvider,
		chatThrottle,
		time.Duration(cfg.Chat.TimeoutSeconds)*time.Second,
		chatLogger,
	)
	healthService := service.NewHealthService(uowFactory)

	// 5. Controllers
	return &Container{
		WellnessController:   controller.NewWellnessController(contentService, historyService),
		BookingController:    controller.NewBookingController(bookingService),
		AssessmentController: controller.NewAssessmentController(assessmentService),
		ChatController:       controller.NewChatController(chatService),
		HealthController:     controller.NewHealthController(healthService),

		ConsumerService: consumerService,
		PubSub:          pubSub,
		Logger:          sysLogger,
	}, nil
}

func (c *Container) Close() error {
	return c.PubSub.Close()
}
