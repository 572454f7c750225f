package factory

import (
	"context"
	"fmt"
	"strings"

	"ai-productivity-be/pkg/llm"
	"ai-productivity-be/pkg/llm/anthropic"
	"ai-productivity-be/pkg/llm/gemini"
	"ai-productivity-be/pkg/llm/ollama"
	"ai-productivity-be/pkg/llm/openai"

	"google.golang.org/genai"
)

const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderOllama    = "ollama"
)

type Params struct {
	Provider      string
	Model         string
	GoogleAPIKey  string
	OpenAIAPIKey  string
	AnthropicKey  string
	OllamaBaseURL string
}

// NewLLMProvider builds the configured backend. Remote backends need their credential.
func NewLLMProvider(ctx context.Context, p Params) (llm.LLMProvider, error) {
	switch strings.ToLower(strings.TrimSpace(p.Provider)) {
	case ProviderGemini, "":
		if strings.TrimSpace(p.GoogleAPIKey) == "" {
			return nil, fmt.Errorf("GOOGLE_API_KEY is required for provider %q", ProviderGemini)
		}
		return gemini.NewGeminiProvider(ctx, p.GoogleAPIKey, p.Model, genai.HTTPOptions{})
	case ProviderOpenAI:
		if strings.TrimSpace(p.OpenAIAPIKey) == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for provider %q", ProviderOpenAI)
		}
		return openai.NewOpenAIProvider(p.OpenAIAPIKey, p.Model)
	case ProviderAnthropic:
		if strings.TrimSpace(p.AnthropicKey) == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required for provider %q", ProviderAnthropic)
		}
		return anthropic.NewAnthropicProvider(p.AnthropicKey, p.Model)
	case ProviderOllama:
		baseURL := p.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, p.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", p.Provider)
	}
}
