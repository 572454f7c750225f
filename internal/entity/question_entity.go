package entity

import "time"

type Question struct {
	Id           uint
	SummaryId    *uint // nil when the question was asked without a stored summary
	QuestionText string
	AnswerText   string
	CreatedAt    time.Time
}
