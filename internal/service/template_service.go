package service

import (
	"context"

	"ai-productivity-be/internal/dto"
	"ai-productivity-be/internal/entity"
	"ai-productivity-be/internal/pkg/apperror"
	"ai-productivity-be/internal/repository/memory"
	"ai-productivity-be/internal/repository/specification"
	"ai-productivity-be/internal/repository/unitofwork"
)

type ITemplateService interface {
	GetAll(ctx context.Context) ([]*dto.TemplateResponse, error)
}

type templateService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.TemplateCache
}

// NewTemplateService serves the catalog from cache when one is given; nil disables caching.
func NewTemplateService(uowFactory unitofwork.RepositoryFactory, cache *memory.TemplateCache) ITemplateService {
	return &templateService{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

func (s *templateService) GetAll(ctx context.Context) ([]*dto.TemplateResponse, error) {
	templates, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		result = append(result, &dto.TemplateResponse{
			Id:           t.Id,
			Title:        t.Title,
			Description:  t.Description,
			ContentType:  string(t.ContentType),
			WritingStyle: string(t.WritingStyle),
			Prompt:       t.Prompt,
			CreatedAt:    t.CreatedAt,
		})
	}
	return result, nil
}

func (s *templateService) load(ctx context.Context) ([]*entity.Template, error) {
	if s.cache != nil {
		if templates, found := s.cache.Get(); found {
			return templates, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	templates, err := uow.TemplateRepository().FindAll(ctx, specification.OldestIDFirst{})
	if err != nil {
		return nil, apperror.Internal("Failed to load templates", err)
	}

	// An empty table means seeding has not run yet; don't pin that.
	if s.cache != nil && len(templates) > 0 {
		s.cache.Save(templates)
	}
	return templates, nil
}
