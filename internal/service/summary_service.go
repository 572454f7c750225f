package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"ai-productivity-be/internal/dto"
	"ai-productivity-be/internal/entity"
	"ai-productivity-be/internal/pkg/apperror"
	"ai-productivity-be/internal/pkg/logger"
	"ai-productivity-be/internal/repository/unitofwork"
	"ai-productivity-be/pkg/events"
	"ai-productivity-be/pkg/llm"
	"ai-productivity-be/pkg/prompt"
)

// MaxSummaryTextLength is measured in characters, not bytes.
const MaxSummaryTextLength = 10000

type ISummaryService interface {
	Summarise(ctx context.Context, req *dto.SummariseRequest) (*dto.SummariseResponse, error)
}

type summaryService struct {
	uowFactory       unitofwork.RepositoryFactory
	llmProvider      llm.LLMProvider
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewSummaryService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	publisherService IPublisherService,
	log logger.ILogger,
) ISummaryService {
	return &summaryService{
		uowFactory:       uowFactory,
		llmProvider:      llmProvider,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *summaryService) Summarise(ctx context.Context, req *dto.SummariseRequest) (*dto.SummariseResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, apperror.Validation("Text cannot be empty")
	}
	if utf8.RuneCountInString(req.Text) > MaxSummaryTextLength {
		return nil, apperror.Validation("Text is too long (max 10000 characters)")
	}
	length, err := entity.ParseSummaryLength(req.Length)
	if err != nil {
		return nil, apperror.Validation("Length must be one of: short, medium, long")
	}

	summaryText, err := s.llmProvider.Generate(ctx, prompt.BuildSummaryPrompt(req.Text, length))
	if err != nil {
		s.logger.Warn("SUMMARY", "Oracle call failed", map[string]interface{}{
			"provider": s.llmProvider.Name(),
			"error":    err.Error(),
		})
		return nil, apperror.Oracle("Error generating summary", err)
	}

	summary := entity.Summary{
		OriginalText:   req.Text,
		SummarizedText: summaryText,
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SummaryRepository().Create(ctx, &summary); err != nil {
		return nil, apperror.Internal("Failed to save summary", err)
	}

	s.publisherService.PublishEvent(ctx, events.New(events.TypeSummaryCreated, map[string]interface{}{
		"id":     summary.Id,
		"length": string(length),
	}))

	return &dto.SummariseResponse{
		OriginalText: req.Text,
		Summary:      summaryText,
		Id:           summary.Id,
		Length:       string(length),
	}, nil
}
