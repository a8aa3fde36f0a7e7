package factory

import (
	"fmt"

	"ai-comicstory-be/pkg/imagegen"
	"ai-comicstory-be/pkg/imagegen/integration"
	"ai-comicstory-be/pkg/imagegen/openai"
)

const (
	ProviderOpenAI      = "openai"
	ProviderIntegration = "integration"
)

type Config struct {
	Provider       string
	Model          string
	Size           string
	APIKey         string
	BaseURL        string
	IntegrationURL string
}

func NewImageProvider(cfg Config) (imagegen.ImageProvider, error) {
	switch cfg.Provider {
	case ProviderOpenAI, "":
		if cfg.APIKey == "" && cfg.BaseURL == "" {
			return nil, fmt.Errorf("openai image provider requires an API key")
		}
		return openai.NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Size), nil
	case ProviderIntegration:
		if cfg.IntegrationURL == "" {
			return nil, fmt.Errorf("integration image provider requires IMAGE_INTEGRATION_URL")
		}
		return integration.NewIntegrationProvider(cfg.IntegrationURL), nil
	default:
		return nil, fmt.Errorf("unsupported image provider: %s", cfg.Provider)
	}
}
