package contract

import (
	"context"

	"ai-productivity-be/internal/entity"
	"ai-productivity-be/internal/repository/specification"
)

type SummaryRepository interface {
	Create(ctx context.Context, summary *entity.Summary) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Summary, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
