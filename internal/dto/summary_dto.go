package dto

type SummariseRequest struct {
	Text   string `json:"text" validate:"notblank,max=10000"`
	Length string `json:"length" validate:"omitempty,oneof=short medium long"`
}

type SummariseResponse struct {
	OriginalText string `json:"original_text"`
	Summary      string `json:"summary"`
	Id           uint   `json:"id"`
	Length       string `json:"length"`
}
