package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

// OpenAIProvider implements the Provider interface over the OpenAI chat API
type OpenAIProvider struct {
	client      *openai.LLM
	temperature float32
	maxTokens   int32
}

// NewOpenAIProvider creates a new OpenAI provider for the given key and model
func NewOpenAIProvider(apiKey, model string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if model == "" {
		model = "gpt-4"
	}

	client, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return &OpenAIProvider{
		client:      client,
		temperature: 0.5,
		maxTokens:   1000,
	}, nil
}

// Complete implements the Provider interface
func (p *OpenAIProvider) Complete(ctx context.Context, messages []Message) (string, error) {
	content := make([]llms.MessageContent, len(messages))
	for i, msg := range messages {
		var msgType schema.ChatMessageType
		switch msg.Role {
		case "system":
			msgType = schema.ChatMessageTypeSystem
		case "assistant":
			msgType = schema.ChatMessageTypeAI
		default:
			msgType = schema.ChatMessageTypeHuman
		}
		content[i] = llms.TextParts(msgType, msg.Content)
	}

	resp, err := p.client.GenerateContent(ctx, content,
		llms.WithMaxTokens(int(p.maxTokens)),
		llms.WithTemperature(float64(p.temperature)),
	)
	if err != nil {
		return "", fmt.Errorf("OpenAI completion failed: %w", err)
	}

	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from OpenAI")
	}

	return resp.Choices[0].Content, nil
}

// SetTemperature sets the temperature for completions
func (p *OpenAIProvider) SetTemperature(temp float32) {
	p.temperature = temp
}

// SetMaxTokens sets the max tokens for completions
func (p *OpenAIProvider) SetMaxTokens(tokens int32) {
	p.maxTokens = tokens
}
