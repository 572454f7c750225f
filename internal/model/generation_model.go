package model

import (
	"time"

	"gorm.io/datatypes"
)

type Generation struct {
	Id                uint   `gorm:"primaryKey;autoIncrement"`
	Content           string `gorm:"type:text;not null"`
	ContentType       string `gorm:"type:varchar(32);not null"`
	WritingStyle      string `gorm:"type:varchar(32);not null"`
	Prompt            string `gorm:"type:text;not null"`
	AdditionalContext datatypes.JSONMap
	CreatedAt         time.Time `gorm:"autoCreateTime;index"`
}

func (Generation) TableName() string {
	return "generations"
}
