package contract

import (
	"context"

	"ai-productivity-be/internal/entity"
	"ai-productivity-be/internal/repository/specification"
)

type TemplateRepository interface {
	CreateBulk(ctx context.Context, templates []*entity.Template) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Template, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
