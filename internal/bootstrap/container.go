package bootstrap

import (
	"time"

	"ai-productivity-be/internal/config"
	"ai-productivity-be/internal/controller"
	"ai-productivity-be/internal/pkg/logger"
	"ai-productivity-be/internal/repository/memory"
	"ai-productivity-be/internal/repository/unitofwork"
	"ai-productivity-be/internal/service"
	"ai-productivity-be/pkg/llm"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	HealthController     controller.IHealthController
	SummaryController    controller.ISummaryController
	QuestionController   controller.IQuestionController
	GenerationController controller.IGenerationController
	TemplateController   controller.ITemplateController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	UowFactory unitofwork.RepositoryFactory
	Logger     logger.ILogger
	PubSub     *gochannel.GoChannel
}

// NewContainer wires every service around one provider and one database handle.
// activityLog receives the consumed activity events.
func NewContainer(
	db *gorm.DB,
	cfg *config.Config,
	llmProvider llm.LLMProvider,
	sysLogger logger.ILogger,
	activityLog logger.ILogger,
) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	publisherService := service.NewPublisherService(pubSub, cfg.App.EventTopic, sysLogger)
	consumerService := service.NewConsumerService(pubSub, cfg.App.EventTopic, activityLog, sysLogger)

	// 3. Services
	summaryService := service.NewSummaryService(uowFactory, llmProvider, publisherService, sysLogger)
	questionService := service.NewQuestionService(uowFactory, llmProvider, publisherService, sysLogger)
	generationService := service.NewGenerationService(uowFactory, llmProvider, publisherService, sysLogger)
	templateService := service.NewTemplateService(uowFactory, memory.NewTemplateCache(time.Hour))

	// 4. Controllers
	return &Container{
		HealthController:     controller.NewHealthController(),
		SummaryController:    controller.NewSummaryController(summaryService),
		QuestionController:   controller.NewQuestionController(questionService),
		GenerationController: controller.NewGenerationController(generationService),
		TemplateController:   controller.NewTemplateController(templateService),

		ConsumerService: consumerService,

		UowFactory: uowFactory,
		Logger:     sysLogger,
		PubSub:     pubSub,
	}
}
