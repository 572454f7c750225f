package service

import (
	"context"
	"strings"

	"ai-productivity-be/internal/dto"
	"ai-productivity-be/internal/entity"
	"ai-productivity-be/internal/pkg/apperror"
	"ai-productivity-be/internal/pkg/logger"
	"ai-productivity-be/internal/repository/specification"
	"ai-productivity-be/internal/repository/unitofwork"
	"ai-productivity-be/pkg/events"
	"ai-productivity-be/pkg/llm"
	"ai-productivity-be/pkg/prompt"
)

const DefaultHistoryLimit = 10

type IGenerationService interface {
	Generate(ctx context.Context, req *dto.GenerateContentRequest) (*dto.GenerationResponse, error)
	History(ctx context.Context, query dto.HistoryQuery) ([]*dto.GenerationResponse, error)
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) error
}

type generationService struct {
	uowFactory       unitofwork.RepositoryFactory
	llmProvider      llm.LLMProvider
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewGenerationService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	publisherService IPublisherService,
	log logger.ILogger,
) IGenerationService {
	return &generationService{
		uowFactory:       uowFactory,
		llmProvider:      llmProvider,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *generationService) Generate(ctx context.Context, req *dto.GenerateContentRequest) (*dto.GenerationResponse, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, apperror.Validation("Prompt cannot be empty")
	}
	contentType, err := entity.ParseContentType(req.ContentType)
	if err != nil {
		return nil, apperror.Validation("Content type must be one of: email, report, article, outline")
	}
	style, err := entity.ParseWritingStyle(req.Style)
	if err != nil {
		return nil, apperror.Validation("Style must be one of: professional, casual, academic, technical, creative")
	}

	content, err := s.llmProvider.Generate(ctx, prompt.BuildContentPrompt(req.Prompt, contentType, style, req.AdditionalContext))
	if err != nil {
		s.logger.Warn("GENERATION", "Oracle call failed", map[string]interface{}{
			"provider":     s.llmProvider.Name(),
			"content_type": string(contentType),
			"error":        err.Error(),
		})
		return nil, apperror.Oracle("Error generating content", err)
	}

	generation := entity.Generation{
		Content:           content,
		ContentType:       contentType,
		WritingStyle:      style,
		Prompt:            req.Prompt,
		AdditionalContext: req.AdditionalContext,
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.GenerationRepository().Create(ctx, &generation); err != nil {
		return nil, apperror.Internal("Failed to save generation", err)
	}

	s.publisherService.PublishEvent(ctx, events.New(events.TypeGenerationCreated, map[string]interface{}{
		"id":            generation.Id,
		"content_type":  string(contentType),
		"writing_style": string(style),
	}))

	return toGenerationResponse(&generation), nil
}

// ClampHistoryQuery resolves the page window. A missing limit becomes
// DefaultHistoryLimit and negative values become zero.
func ClampHistoryQuery(query dto.HistoryQuery) (skip, limit int) {
	skip = max(query.Skip, 0)
	limit = DefaultHistoryLimit
	if query.Limit != nil {
		limit = max(*query.Limit, 0)
	}
	return skip, limit
}

func (s *generationService) History(ctx context.Context, query dto.HistoryQuery) ([]*dto.GenerationResponse, error) {
	skip, limit := ClampHistoryQuery(query)
	if limit == 0 {
		return []*dto.GenerationResponse{}, nil
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)

	generations, err := uow.GenerationRepository().FindAll(ctx,
		specification.NewestFirst{},
		specification.Pagination{Limit: limit, Offset: skip},
	)
	if err != nil {
		return nil, apperror.Internal("Failed to load history", err)
	}

	result := make([]*dto.GenerationResponse, 0, len(generations))
	for _, g := range generations {
		result = append(result, toGenerationResponse(g))
	}
	return result, nil
}

func (s *generationService) Delete(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	affected, err := uow.GenerationRepository().Delete(ctx, id)
	if err != nil {
		return apperror.Internal("Failed to delete generation", err)
	}
	if affected == 0 {
		return apperror.NotFound("Generation not found")
	}

	s.publisherService.PublishEvent(ctx, events.New(events.TypeGenerationDeleted, map[string]interface{}{
		"id": id,
	}))
	return nil
}

func (s *generationService) DeleteAll(ctx context.Context) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	affected, err := uow.GenerationRepository().DeleteAll(ctx)
	if err != nil {
		return apperror.Internal("Failed to delete history", err)
	}

	s.publisherService.PublishEvent(ctx, events.New(events.TypeHistoryCleared, map[string]interface{}{
		"deleted": affected,
	}))
	return nil
}

func toGenerationResponse(g *entity.Generation) *dto.GenerationResponse {
	return &dto.GenerationResponse{
		Id:                g.Id,
		Content:           g.Content,
		ContentType:       string(g.ContentType),
		WritingStyle:      string(g.WritingStyle),
		Prompt:            g.Prompt,
		AdditionalContext: g.AdditionalContext,
		CreatedAt:         g.CreatedAt,
	}
}
