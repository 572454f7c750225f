package unitofwork

import (
	"context"

	"ai-productivity-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	SummaryRepository() contract.SummaryRepository
	QuestionRepository() contract.QuestionRepository
	GenerationRepository() contract.GenerationRepository
	TemplateRepository() contract.TemplateRepository
}
