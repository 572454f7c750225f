package model

import "time"

type Template struct {
	Id           uint      `gorm:"primaryKey;autoIncrement"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:varchar(255);not null"`
	ContentType  string    `gorm:"type:varchar(32);not null"`
	WritingStyle string    `gorm:"type:varchar(32);not null"`
	Prompt       string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (Template) TableName() string {
	return "templates"
}
