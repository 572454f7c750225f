package model

import "time"

type Question struct {
	Id           uint      `gorm:"primaryKey;autoIncrement"`
	SummaryId    *uint     `gorm:"index"`
	QuestionText string    `gorm:"type:text"`
	AnswerText   string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index"`
}

func (Question) TableName() string {
	return "questions"
}
