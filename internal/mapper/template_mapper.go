package mapper

import (
	"ai-productivity-be/internal/entity"
	"ai-productivity-be/internal/model"
)

type TemplateMapper struct{}

func NewTemplateMapper() *TemplateMapper {
	return &TemplateMapper{}
}

func (m *TemplateMapper) ToEntity(t *model.Template) *entity.Template {
	if t == nil {
		return nil
	}
	return &entity.Template{
		Id:           t.Id,
		Title:        t.Title,
		Description:  t.Description,
		ContentType:  entity.ContentType(t.ContentType),
		WritingStyle: entity.WritingStyle(t.WritingStyle),
		Prompt:       t.Prompt,
		CreatedAt:    t.CreatedAt,
	}
}

func (m *TemplateMapper) ToModel(t *entity.Template) *model.Template {
	if t == nil {
		return nil
	}
	return &model.Template{
		Id:           t.Id,
		Title:        t.Title,
		Description:  t.Description,
		ContentType:  string(t.ContentType),
		WritingStyle: string(t.WritingStyle),
		Prompt:       t.Prompt,
		CreatedAt:    t.CreatedAt,
	}
}

func (m *TemplateMapper) ToEntities(templates []*model.Template) []*entity.Template {
	entities := make([]*entity.Template, len(templates))
	for i, t := range templates {
		entities[i] = m.ToEntity(t)
	}
	return entities
}

func (m *TemplateMapper) ToModels(templates []*entity.Template) []*model.Template {
	models := make([]*model.Template, len(templates))
	for i, t := range templates {
		models[i] = m.ToModel(t)
	}
	return models
}
