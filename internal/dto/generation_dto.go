package dto

import "time"

type GenerateContentRequest struct {
	Prompt            string                 `json:"prompt" validate:"notblank"`
	ContentType       string                 `json:"content_type" validate:"required,oneof=email report article outline"`
	Style             string                 `json:"style" validate:"required,oneof=professional casual academic technical creative"`
	AdditionalContext map[string]interface{} `json:"additional_context"`
}

type GenerationResponse struct {
	Id                uint                   `json:"id"`
	Content           string                 `json:"content"`
	ContentType       string                 `json:"content_type"`
	WritingStyle      string                 `json:"writing_style"`
	Prompt            string                 `json:"prompt"`
	AdditionalContext map[string]interface{} `json:"additional_context,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
}

// HistoryQuery carries the raw paging values. A nil Limit means the default page size.
type HistoryQuery struct {
	Skip  int
	Limit *int
}
