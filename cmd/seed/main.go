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
	cfg := config.Load()

	db, err := database.NewGormDB(database.GormConfig{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.Connection,
	})
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	// Seeding needs the tables; migrating first keeps this command usable on a fresh database.
	if err := seeder.Migrate(db); err != nil {
		log.Fatalf("Error: %v", err)
	}

	color.Cyan("Seeding template catalog...")

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(db)

	inserted, err := seeder.SeedTemplates(ctx, uowFactory)
	if err != nil {
		log.Fatalf("Error: Failed to seed templates: %v", err)
	}
	if inserted == 0 {
		color.Yellow("Templates already present, skipping.")
	} else {
		color.Green("Success: Seeded %d templates.", inserted)
	}

	stats, err := seeder.CountRows(ctx, uowFactory)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	color.White("summaries=%d questions=%d generations=%d templates=%d",
		stats.Summaries, stats.Questions, stats.Generations, stats.Templates)
}
