// Package seeder prepares the schema and the default template catalog.
package seeder

import (
	"context"
	"fmt"

	"ai-productivity-be/internal/entity"
	"ai-productivity-be/internal/model"
	"ai-productivity-be/internal/repository/unitofwork"

	"gorm.io/gorm"
)

// Models lists every table the service owns, in dependency order.
func Models() []interface{} {
	return []interface{}{
		&model.Summary{},
		&model.Question{},
		&model.Generation{},
		&model.Template{},
	}
}

// Migrate is idempotent.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func DefaultTemplates() []*entity.Template {
	return []*entity.Template{
		{
			Title:        "Professional Email",
			Description:  "Clear and concise business email template",
			ContentType:  entity.ContentTypeEmail,
			WritingStyle: entity.WritingStyleProfessional,
			Prompt:       "Write a professional email about [topic] to [recipient]",
		},
		{
			Title:        "Meeting Notes",
			Description:  "Structured summary of meeting discussions",
			ContentType:  entity.ContentTypeReport,
			WritingStyle: entity.WritingStyleProfessional,
			Prompt:       "Create detailed meeting notes covering: [agenda items]",
		},
		{
			Title:        "Project Proposal",
			Description:  "Comprehensive project outline and plan",
			ContentType:  entity.ContentTypeReport,
			WritingStyle: entity.WritingStyleProfessional,
			Prompt:       "Write a project proposal for [project name] including objectives, timeline, and resources",
		},
		{
			Title:        "Research Summary",
			Description:  "Academic research summary with key findings",
			ContentType:  entity.ContentTypeReport,
			WritingStyle: entity.WritingStyleAcademic,
			Prompt:       "Summarize research findings on [topic] including methodology and conclusions",
		},
		{
			Title:        "Technical Guide",
			Description:  "Clear technical documentation template",
			ContentType:  entity.ContentTypeReport,
			WritingStyle: entity.WritingStyleProfessional,
			Prompt:       "Create technical documentation for [feature/system] including setup and usage",
		},
	}
}

// SeedTemplates inserts the default catalog in one transaction when the table is empty
// and returns how many rows it wrote. Any existing template makes it a no-op.
func SeedTemplates(ctx context.Context, uowFactory unitofwork.RepositoryFactory) (int, error) {
	uow := uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer uow.Rollback()

	count, err := uow.TemplateRepository().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count templates: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	templates := DefaultTemplates()
	if err := uow.TemplateRepository().CreateBulk(ctx, templates); err != nil {
		return 0, fmt.Errorf("insert templates: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return 0, err
	}
	return len(templates), nil
}

// TableStats holds row counts per table.
type TableStats struct {
	Summaries   int64
	Questions   int64
	Generations int64
	Templates   int64
}

func CountRows(ctx context.Context, uowFactory unitofwork.RepositoryFactory) (TableStats, error) {
	uow := uowFactory.NewUnitOfWork(ctx)

	var (
		stats TableStats
		err   error
	)
	if stats.Summaries, err = uow.SummaryRepository().Count(ctx); err != nil {
		return TableStats{}, fmt.Errorf("count summaries: %w", err)
	}
	if stats.Questions, err = uow.QuestionRepository().Count(ctx); err != nil {
		return TableStats{}, fmt.Errorf("count questions: %w", err)
	}
	if stats.Generations, err = uow.GenerationRepository().Count(ctx); err != nil {
		return TableStats{}, fmt.Errorf("count generations: %w", err)
	}
	if stats.Templates, err = uow.TemplateRepository().Count(ctx); err != nil {
		return TableStats{}, fmt.Errorf("count templates: %w", err)
	}
	return stats, nil
}
