package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ai-productivity-be/internal/bootstrap"
	"ai-productivity-be/internal/config"
	"ai-productivity-be/internal/pkg/logger"
	"ai-productivity-be/internal/repository/unitofwork"
	"ai-productivity-be/internal/seeder"
	"ai-productivity-be/internal/server"
	"ai-productivity-be/internal/tracer"
	"ai-productivity-be/pkg/database"
	"ai-productivity-be/pkg/llm/factory"

	gormlogger "gorm.io/gorm/logger"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()
	activityLogger := logger.NewIsolatedLogger(cfg.App.ActivityLogPath)
	defer activityLogger.Sync()

	// 2. Initialize Tracer
	shutdownTracer := tracer.InitTracer(cfg.Tracing, sysLogger)
	defer shutdownTracer(context.Background())

	// 3. Initialize LLM Provider; a missing credential stops the boot.
	llmProvider, err := factory.NewLLMProvider(context.Background(), factory.Params{
		Provider:      cfg.Ai.LLMProvider,
		Model:         cfg.Ai.LLMModel,
		GoogleAPIKey:  cfg.Keys.GoogleGemini,
		OpenAIAPIKey:  cfg.Keys.OpenAI,
		AnthropicKey:  cfg.Keys.Anthropic,
		OllamaBaseURL: cfg.Ai.OllamaBaseURL,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	sysLogger.Info("BOOT", "LLM provider ready", map[string]interface{}{
		"provider": llmProvider.Name(),
		"model":    cfg.Ai.LLMModel,
	})

	// 4. Initialize Database
	gormLevel := gormlogger.Info
	if cfg.IsProduction() {
		gormLevel = gormlogger.Warn
	}
	gormDB, err := database.NewGormDB(database.GormConfig{
		Driver:   cfg.Database.Driver,
		DSN:      cfg.Database.Connection,
		LogLevel: gormLevel,
	})
	if err != nil {
		log.Fatalf("[FATAL] Unable to connect to database: %v", err)
	}

	// 5. Schema + default templates
	if err := seeder.Migrate(gormDB); err != nil {
		log.Fatalf("[FATAL] Migration failed: %v", err)
	}
	inserted, err := seeder.SeedTemplates(context.Background(), unitofwork.NewRepositoryFactory(gormDB))
	if err != nil {
		log.Fatalf("[FATAL] Template seeding failed: %v", err)
	}
	sysLogger.Info("BOOT", "Templates seeded", map[string]interface{}{"inserted": inserted})

	// 6. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg, llmProvider, sysLogger, activityLogger)

	// 7. Start Background Services
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := container.ConsumerService.Consume(ctx); err != nil {
		sysLogger.Error("BOOT", "Activity consumer failed to start", map[string]interface{}{"error": err.Error()})
	}

	// 8. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		<-ctx.Done()
		sysLogger.Info("BOOT", "Shutting down", nil)
		if err := srv.Shutdown(); err != nil {
			sysLogger.Error("BOOT", "Server shutdown failed", map[string]interface{}{"error": err.Error()})
		}
	}()

	// 9. Run Server
	if err := srv.Run(); err != nil {
		log.Fatalf("[FATAL] Server stopped: %v", err)
	}
	_ = container.PubSub.Close()
}
