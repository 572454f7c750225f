package dto

import "time"

type TemplateResponse struct {
	Id           uint      `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ContentType  string    `json:"content_type"`
	WritingStyle string    `json:"writing_style"`
	Prompt       string    `json:"prompt"`
	CreatedAt    time.Time `json:"created_at"`
}
