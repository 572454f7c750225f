package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMProvider(t *testing.T) {
	tests := []struct {
		name     string
		params   Params
		wantName string
		wantErr  bool
	}{
		{name: "gemini default", params: Params{GoogleAPIKey: "k"}, wantName: "gemini"},
		{name: "gemini missing key", params: Params{Provider: "gemini"}, wantErr: true},
		{name: "openai", params: Params{Provider: "openai", OpenAIAPIKey: "k"}, wantName: "openai"},
		{name: "openai missing key", params: Params{Provider: "openai"}, wantErr: true},
		{name: "anthropic", params: Params{Provider: "Anthropic", AnthropicKey: "k"}, wantName: "anthropic"},
		{name: "anthropic missing key", params: Params{Provider: "anthropic"}, wantErr: true},
		{name: "ollama needs no key", params: Params{Provider: "ollama"}, wantName: "ollama"},
		{name: "unknown", params: Params{Provider: "mystery", GoogleAPIKey: "k"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewLLMProvider(context.Background(), tt.params)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, p.Name())
		})
	}
}
