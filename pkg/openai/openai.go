package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ChatCompletion sends a chat request and returns the first choice's content.
func (o *openaiImpl) ChatCompletion(ctx context.Context, req ChatRequest) (string, error) {
	if req.Model == "" {
		req.Model = ModelGPT4
	}
	if len(req.Messages) == 0 {
		return "", fmt.Errorf("openai: at least one message is required")
	}

	reqURL := fmt.Sprintf("%s/chat/completions", o.baseURL)
	headers := map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", o.apiKey),
	}

	body, statusCode, err := o.httpClient.Post(ctx, reqURL, req, headers)
	if err != nil {
		return "", fmt.Errorf("failed to call OpenAI API: %w", err)
	}

	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to unmarshal OpenAI response: %w", err)
	}

	if statusCode != http.StatusOK {
		if resp.Error != nil {
			return "", fmt.Errorf("OpenAI API error (%s): %s", resp.Error.Type, resp.Error.Message)
		}
		return "", fmt.Errorf("OpenAI API returned status: %d, body: %s", statusCode, string(body))
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion generated")
	}
	return resp.Choices[0].Message.Content, nil
}
