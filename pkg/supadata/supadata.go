package supadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"repurpose-srv/internal/model"
)

func (s *supadataImpl) WithAPIKey(apiKey string) ISupadata {
	if apiKey == "" {
		return s
	}
	clone := *s
	clone.apiKey = apiKey
	return &clone
}

func (s *supadataImpl) FetchTranscript(ctx context.Context, videoURL string) (*Result, error) {
	reqURL := fmt.Sprintf("%s/transcript?url=%s", s.baseURL, url.QueryEscape(videoURL))
	return s.get(ctx, reqURL)
}

func (s *supadataImpl) FetchJobStatus(ctx context.Context, jobID string) (*Result, error) {
	reqURL := fmt.Sprintf("%s/transcript/%s", s.baseURL, url.PathEscape(jobID))
	return s.get(ctx, reqURL)
}

func (s *supadataImpl) get(ctx context.Context, reqURL string) (*Result, error) {
	headers := map[string]string{"x-api-key": s.apiKey}

	body, statusCode, err := s.httpClient.Get(ctx, reqURL, headers)
	if err != nil {
		return nil, fmt.Errorf("failed to call Supadata API: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, classifyError(statusCode, body)
	}

	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Supadata response: %w", err)
	}

	result := &Result{
		JobID:  resp.JobID,
		Status: resp.Status,
		Error:  resp.Error,
	}
	if resp.Content != nil || len(resp.Chunks) > 0 {
		result.Transcript = &model.Transcript{
			Content:        resp.Content,
			Lang:           resp.Lang,
			AvailableLangs: resp.AvailableLangs,
			Chunks:         resp.Chunks,
		}
	}
	return result, nil
}

// classifyError maps provider failures onto the package sentinels so callers
// can branch without parsing messages.
func classifyError(statusCode int, body []byte) error {
	var apiErr apiError
	message := ""
	if err := json.Unmarshal(body, &apiErr); err == nil {
		if apiErr.Message != "" {
			message = apiErr.Message
		} else if apiErr.Error != "" {
			message = apiErr.Error
		}
	}
	if message == "" {
		message = fmt.Sprintf("HTTP %d", statusCode)
	}

	switch {
	case statusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case statusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, message)
	case statusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case statusCode >= 400 && statusCode < 500:
		return fmt.Errorf("%w: %s", ErrInvalidInput, message)
	default:
		return fmt.Errorf("%w: %s", ErrUnavailable, message)
	}
}
