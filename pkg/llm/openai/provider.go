package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ai-productivity-be/pkg/llm"

	openaisdk "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
)

const DefaultModel = openaisdk.ChatModelGPT4oMini

// OpenAIProvider calls the Responses API. SDK retries are disabled: one call per request.
type OpenAIProvider struct {
	client    openaisdk.Client
	modelName string
}

var _ llm.LLMProvider = &OpenAIProvider{}

func NewOpenAIProvider(apiKey, modelName string, extra ...option.RequestOption) (*OpenAIProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("openai api key is empty")
	}
	if modelName == "" {
		modelName = DefaultModel
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(120 * time.Second),
	}
	opts = append(opts, extra...)

	return &OpenAIProvider{
		client:    openaisdk.NewClient(opts...),
		modelName: modelName,
	}, nil
}

func (p *OpenAIProvider) Name() string {
	return "openai"
}

func (p *OpenAIProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.ApplyOptions(opts...)

	var instructions, input strings.Builder
	for _, msg := range history {
		if msg.Role == llm.RoleSystem {
			instructions.WriteString(msg.Content)
			instructions.WriteString("\n")
			continue
		}
		if input.Len() > 0 {
			input.WriteString("\n\n")
		}
		input.WriteString(msg.Content)
	}

	model := p.modelName
	if options.Model != "" {
		model = options.Model
	}

	params := responses.ResponseNewParams{
		Model:       model,
		Temperature: openaisdk.Float(options.Temperature),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openaisdk.String(input.String()),
		},
	}
	if instructions.Len() > 0 {
		params.Instructions = openaisdk.String(strings.TrimSpace(instructions.String()))
	}
	if options.MaxTokens > 0 {
		params.MaxOutputTokens = openaisdk.Int(int64(options.MaxTokens))
	}

	resp, err := p.client.Responses.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}

	text := resp.OutputText()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w (status = %s)", llm.ErrEmptyResponse, resp.Status)
	}
	return text, nil
}

func (p *OpenAIProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}
