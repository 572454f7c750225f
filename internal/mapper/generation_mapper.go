package mapper

import (
	"ai-productivity-be/internal/entity"
	"ai-productivity-be/internal/model"

	"gorm.io/datatypes"
)

type GenerationMapper struct{}

func NewGenerationMapper() *GenerationMapper {
	return &GenerationMapper{}
}

func (m *GenerationMapper) ToEntity(g *model.Generation) *entity.Generation {
	if g == nil {
		return nil
	}

	var additionalContext map[string]interface{}
	if len(g.AdditionalContext) > 0 {
		additionalContext = map[string]interface{}(g.AdditionalContext)
	}

	return &entity.Generation{
		Id:                g.Id,
		Content:           g.Content,
		ContentType:       entity.ContentType(g.ContentType),
		WritingStyle:      entity.WritingStyle(g.WritingStyle),
		Prompt:            g.Prompt,
		AdditionalContext: additionalContext,
		CreatedAt:         g.CreatedAt,
	}
}

func (m *GenerationMapper) ToModel(g *entity.Generation) *model.Generation {
	if g == nil {
		return nil
	}

	var additionalContext datatypes.JSONMap
	if len(g.AdditionalContext) > 0 {
		additionalContext = datatypes.JSONMap(g.AdditionalContext)
	}

	return &model.Generation{
		Id:                g.Id,
		Content:           g.Content,
		ContentType:       string(g.ContentType),
		WritingStyle:      string(g.WritingStyle),
		Prompt:            g.Prompt,
		AdditionalContext: additionalContext,
		CreatedAt:         g.CreatedAt,
	}
}

func (m *GenerationMapper) ToEntities(generations []*model.Generation) []*entity.Generation {
	entities := make([]*entity.Generation, len(generations))
	for i, g := range generations {
		entities[i] = m.ToEntity(g)
	}
	return entities
}
