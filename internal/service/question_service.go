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

type IQuestionService interface {
	Ask(ctx context.Context, req *dto.AskRequest) (*dto.AskResponse, error)
	History(ctx context.Context, summaryId uint) ([]*dto.QuestionHistoryResponse, error)
}

type questionService struct {
	uowFactory       unitofwork.RepositoryFactory
	llmProvider      llm.LLMProvider
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewQuestionService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	publisherService IPublisherService,
	log logger.ILogger,
) IQuestionService {
	return &questionService{
		uowFactory:       uowFactory,
		llmProvider:      llmProvider,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *questionService) Ask(ctx context.Context, req *dto.AskRequest) (*dto.AskResponse, error) {
	if strings.TrimSpace(req.Question) == "" {
		return nil, apperror.Validation("Question cannot be empty")
	}
	if strings.TrimSpace(req.Context) == "" {
		return nil, apperror.Validation("Context cannot be empty")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// A dangling summary id would fail the foreign key after the oracle call; reject it first.
	if req.SummaryId != nil {
		summary, err := uow.SummaryRepository().FindOne(ctx, specification.ByID{ID: *req.SummaryId})
		if err != nil {
			return nil, apperror.Internal("Failed to load summary", err)
		}
		if summary == nil {
			return nil, apperror.NotFound("Summary not found")
		}
	}

	var summaryText string
	if req.Summary != nil {
		summaryText = *req.Summary
	}

	answer, err := s.llmProvider.Generate(ctx, prompt.BuildQuestionPrompt(req.Context, req.Question, summaryText))
	if err != nil {
		s.logger.Warn("QUESTION", "Oracle call failed", map[string]interface{}{
			"provider": s.llmProvider.Name(),
			"error":    err.Error(),
		})
		return nil, apperror.Oracle("Error answering question", err)
	}

	question := entity.Question{
		SummaryId:    req.SummaryId,
		QuestionText: req.Question,
		AnswerText:   answer,
	}
	if err := uow.QuestionRepository().Create(ctx, &question); err != nil {
		return nil, apperror.Internal("Failed to save question", err)
	}

	data := map[string]interface{}{"id": question.Id}
	if question.SummaryId != nil {
		data["summary_id"] = *question.SummaryId
	}
	s.publisherService.PublishEvent(ctx, events.New(events.TypeQuestionAnswered, data))

	return &dto.AskResponse{Answer: answer}, nil
}

func (s *questionService) History(ctx context.Context, summaryId uint) ([]*dto.QuestionHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	questions, err := uow.QuestionRepository().FindAll(ctx,
		specification.BySummaryID{SummaryID: summaryId},
		specification.NewestFirst{},
	)
	if err != nil {
		return nil, apperror.Internal("Failed to load questions", err)
	}

	result := make([]*dto.QuestionHistoryResponse, 0, len(questions))
	for _, q := range questions {
		result = append(result, &dto.QuestionHistoryResponse{
			Id:           q.Id,
			QuestionText: q.QuestionText,
			AnswerText:   q.AnswerText,
			CreatedAt:    q.CreatedAt,
		})
	}
	return result, nil
}
