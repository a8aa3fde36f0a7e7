package openai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ai-comicstory-be/pkg/llm"

	openaigo "github.com/sashabaranov/go-openai"
)

var ErrEmptyResponse = errors.New("model returned no content")

const providerName = "openai"

// OpenAIProvider talks to api.openai.com or any OpenAI-compatible gateway.
type OpenAIProvider struct {
	client *openaigo.Client
	model  string
}

var _ llm.LLMProvider = &OpenAIProvider{}

func NewOpenAIProvider(apiKey, baseURL, model string) *OpenAIProvider {
	cfg := openaigo.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &OpenAIProvider{
		client: openaigo.NewClientWithConfig(cfg),
		model:  model,
	}
}

func toChatMessages(history []llm.Message) []openaigo.ChatCompletionMessage {
	messages := make([]openaigo.ChatCompletionMessage, len(history))
	for i, msg := range history {
		role := msg.Role
		if role == "model" {
			role = openaigo.ChatMessageRoleAssistant
		}
		messages[i] = openaigo.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		}
	}
	return messages
}

func (p *OpenAIProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := &llm.Options{Model: p.model}
	for _, opt := range opts {
		opt(options)
	}

	req := openaigo.ChatCompletionRequest{
		Model:       options.Model,
		Messages:    toChatMessages(history),
		Temperature: float32(options.Temperature),
		MaxTokens:   options.MaxTokens,
	}

	start := time.Now()
	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		llm.ObserveRequest(providerName, options.Model, start, llm.StatusError)
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		llm.ObserveRequest(providerName, options.Model, start, llm.StatusEmptyResponse)
		return "", ErrEmptyResponse
	}

	llm.ObserveRequest(providerName, options.Model, start, llm.StatusSuccess)
	llm.ObserveTokens(providerName, options.Model, resp.Usage.TotalTokens)

	return resp.Choices[0].Message.Content, nil
}

func (p *OpenAIProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}
