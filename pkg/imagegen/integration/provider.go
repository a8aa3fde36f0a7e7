package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"ai-comicstory-be/pkg/imagegen"
)

// IntegrationProvider calls an image proxy that answers GET <base>?prompt=... with {"data": ["<url>", ...]}.
type IntegrationProvider struct {
	BaseURL string
	Client  *http.Client
}

var _ imagegen.ImageProvider = &IntegrationProvider{}

func NewIntegrationProvider(baseURL string) *IntegrationProvider {
	return &IntegrationProvider{
		BaseURL: baseURL,
		Client:  &http.Client{},
	}
}

type imageResponse struct {
	Data []string `json:"data"`
}

func (p *IntegrationProvider) Generate(ctx context.Context, prompt string) (imageUrl string, err error) {
	start := time.Now()
	defer func() { imagegen.ObserveRequest("integration", start, err) }()

	endpoint, err := url.Parse(p.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parse image url: %w", err)
	}
	q := endpoint.Query()
	q.Set("prompt", prompt)
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("image request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image service error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var out imageResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if len(out.Data) == 0 || out.Data[0] == "" {
		return "", imagegen.ErrNoImage
	}

	return out.Data[0], nil
}
