package serverutils

import (
	"strings"
	"testing"

	"ai-productivity-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Text        string `json:"text" validate:"notblank,max=10"`
	ContentType string `json:"content_type" validate:"oneof=email report"`
}

func TestValidateRequestMessages(t *testing.T) {
	tests := []struct {
		name    string
		req     sampleRequest
		wantMsg string
	}{
		{"blank text", sampleRequest{Text: "   ", ContentType: "email"}, "Text cannot be empty"},
		{"too long", sampleRequest{Text: strings.Repeat("a", 11), ContentType: "email"}, "Text is too long (max 10 characters)"},
		{"unknown enum", sampleRequest{Text: "ok", ContentType: "memo"}, "Content type must be one of: email, report"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)
			assert.True(t, apperror.Is(err, apperror.KindValidation))

			var appErr *apperror.Error
			assert.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantMsg, appErr.Message)
		})
	}
}

func TestValidateRequestPasses(t *testing.T) {
	assert.NoError(t, ValidateRequest(sampleRequest{Text: "hello", ContentType: "report"}))
}
