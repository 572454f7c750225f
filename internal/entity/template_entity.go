package entity

import "time"

type Template struct {
	Id           uint
	Title        string
	Description  string
	ContentType  ContentType
	WritingStyle WritingStyle
	Prompt       string
	CreatedAt    time.Time
}
