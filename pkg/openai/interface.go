package openai

import (
	"context"
	"fmt"

	pkghttp "repurpose-srv/pkg/http"
)

// IOpenAI defines the interface for OpenAI chat completions.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	// ChatCompletion sends a chat request and returns the first choice's
	// message content.
	ChatCompletion(ctx context.Context, req ChatRequest) (string, error)
}

// NewOpenAI creates a new OpenAI client. Returns the interface.
func NewOpenAI(cfg OpenAIConfig) (IOpenAI, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = BaseURL
	}
	return &openaiImpl{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   RequestTimeout,
			Retries:   2,
			RetryWait: RetryWait,
		}),
	}, nil
}
