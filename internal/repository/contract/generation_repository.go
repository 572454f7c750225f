package contract

import (
	"context"

	"ai-productivity-be/internal/entity"
	"ai-productivity-be/internal/repository/specification"
)

type GenerationRepository interface {
	Create(ctx context.Context, generation *entity.Generation) error
	// Delete returns the number of removed rows so callers can detect a missing id.
	Delete(ctx context.Context, id uint) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Generation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Generation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
