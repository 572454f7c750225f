package main

import (
	"context"
	"log"

	"ai-productivity-be/internal/config"
	"ai-productivity-be/internal/repository/unitofwork"
	"ai-productivity-be/internal/seeder"
	"ai-productivity-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	// 1. Load Environment Variables
	cfg := config.Load()

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDB(database.GormConfig{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.Connection,
	})
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Running AutoMigrate for %d tables...", len(seeder.Models()))

	// 3. AutoMigrate All Models
	if err := seeder.Migrate(db); err != nil {
		log.Fatalf("Error: %v", err)
	}

	color.Green("Success: Database migration completed.")

	stats, err := seeder.CountRows(context.Background(), unitofwork.NewRepositoryFactory(db))
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	color.White("summaries=%d questions=%d generations=%d templates=%d",
		stats.Summaries, stats.Questions, stats.Generations, stats.Templates)
}
