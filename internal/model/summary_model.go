package model

import "time"

type Summary struct {
	Id             uint       `gorm:"primaryKey;autoIncrement"`
	OriginalText   string     `gorm:"type:text"`
	SummarizedText string     `gorm:"type:text"`
	CreatedAt      time.Time  `gorm:"autoCreateTime;index"`
	Questions      []Question `gorm:"foreignKey:SummaryId"`
}

func (Summary) TableName() string {
	return "summaries"
}
