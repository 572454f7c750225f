package dto

import "time"

// AskRequest lists question before context so a request missing both reports the question first.
type AskRequest struct {
	Question  string  `json:"question" validate:"notblank"`
	Context   string  `json:"context" validate:"notblank"`
	Summary   *string `json:"summary"`
	SummaryId *uint   `json:"summary_id"`
}

type AskResponse struct {
	Answer string `json:"answer"`
}

type QuestionHistoryResponse struct {
	Id           uint      `json:"id"`
	QuestionText string    `json:"question_text"`
	AnswerText   string    `json:"answer_text"`
	CreatedAt    time.Time `json:"created_at"`
}
