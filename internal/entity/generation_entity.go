package entity

import "time"

type Generation struct {
	Id                uint
	Content           string
	ContentType       ContentType
	WritingStyle      WritingStyle
	Prompt            string
	AdditionalContext map[string]interface{}
	CreatedAt         time.Time
}
