package openai

import (
	"context"
	"fmt"
	"time"

	"ai-comicstory-be/pkg/imagegen"

	openaigo "github.com/sashabaranov/go-openai"
)

type OpenAIProvider struct {
	client *openaigo.Client
	model  string
	size   string
}

var _ imagegen.ImageProvider = &OpenAIProvider{}

func NewOpenAIProvider(apiKey, baseURL, model, size string) *OpenAIProvider {
	cfg := openaigo.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	if model == "" {
		model = openaigo.CreateImageModelDallE3
	}
	if size == "" {
		size = openaigo.CreateImageSize1024x1024
	}

	return &OpenAIProvider{
		client: openaigo.NewClientWithConfig(cfg),
		model:  model,
		size:   size,
	}
}

func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (url string, err error) {
	start := time.Now()
	defer func() { imagegen.ObserveRequest("openai", start, err) }()

	resp, err := p.client.CreateImage(ctx, openaigo.ImageRequest{
		Prompt:         prompt,
		Model:          p.model,
		N:              1,
		Size:           p.size,
		ResponseFormat: openaigo.CreateImageResponseFormatURL,
	})
	if err != nil {
		return "", fmt.Errorf("create image: %w", err)
	}

	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", imagegen.ErrNoImage
	}

	return resp.Data[0].URL, nil
}
