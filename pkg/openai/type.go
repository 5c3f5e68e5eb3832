package openai

import (
	"time"

	pkghttp "repurpose-srv/pkg/http"
)

const (
	// BaseURL is the OpenAI API root.
	BaseURL = "https://api.openai.com/v1"

	// ModelGPT4 is the heavier model used for content generation.
	ModelGPT4 = "gpt-4"
	// ModelGPT35Turbo is the faster model used for translation.
	ModelGPT35Turbo = "gpt-3.5-turbo"

	// RequestTimeout bounds a single completion request.
	RequestTimeout = 120 * time.Second
	// RetryWait is the wait between completion retries.
	RetryWait = 2 * time.Second
)

// OpenAIConfig holds the configuration for the OpenAI client.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
}

// openaiImpl implements IOpenAI.
type openaiImpl struct {
	apiKey     string
	baseURL    string
	httpClient pkghttp.IClient
}

// Message is a single chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest holds the parameters for a chat completion.
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

// chatResponse mirrors the chat completions response body.
type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
