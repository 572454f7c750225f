package entity

import "time"

type Summary struct {
	Id             uint
	OriginalText   string
	SummarizedText string
	CreatedAt      time.Time
}
