package supadata

import (
	"context"
	"fmt"

	pkghttp "repurpose-srv/pkg/http"
)

// ISupadata defines the interface for the Supadata transcript API.
// Implementations are safe for concurrent use.
type ISupadata interface {
	// FetchTranscript requests a transcript for a video URL. The provider
	// either returns the transcript inline or hands back a job ID for
	// polling; inspect Result.JobID to tell them apart.
	FetchTranscript(ctx context.Context, videoURL string) (*Result, error)
	// FetchJobStatus polls an async transcript job.
	FetchJobStatus(ctx context.Context, jobID string) (*Result, error)
	// WithAPIKey returns a client that authenticates with the given key
	// instead of the configured default.
	WithAPIKey(apiKey string) ISupadata
}

// NewSupadata creates a new Supadata client. Returns the interface.
func NewSupadata(cfg SupadataConfig) (ISupadata, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("supadata: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = BaseURL
	}
	return &supadataImpl{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   RequestTimeout,
			Retries:   0,
			RetryWait: 0,
		}),
	}, nil
}
