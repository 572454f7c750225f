package mapper

import (
	"ai-productivity-be/internal/entity"
	"ai-productivity-be/internal/model"
)

type SummaryMapper struct{}

func NewSummaryMapper() *SummaryMapper {
	return &SummaryMapper{}
}

func (m *SummaryMapper) ToEntity(s *model.Summary) *entity.Summary {
	if s == nil {
		return nil
	}
	return &entity.Summary{
		Id:             s.Id,
		OriginalText:   s.OriginalText,
		SummarizedText: s.SummarizedText,
		CreatedAt:      s.CreatedAt,
	}
}

func (m *SummaryMapper) ToModel(s *entity.Summary) *model.Summary {
	if s == nil {
		return nil
	}
	return &model.Summary{
		Id:             s.Id,
		OriginalText:   s.OriginalText,
		SummarizedText: s.SummarizedText,
		CreatedAt:      s.CreatedAt,
	}
}
