package apify

import (
	"context"
	"fmt"

	"repurpose-srv/internal/model"
	pkghttp "repurpose-srv/pkg/http"
)

// IApify defines the interface for the Apify Instagram scrapers.
// Implementations are safe for concurrent use.
type IApify interface {
	// FetchProfileReels runs the profile scraper and returns the profile's
	// reels sorted by engagement, strongest first.
	FetchProfileReels(ctx context.Context, username string) ([]model.Reel, error)
	// FetchReelMetadata runs the post scraper for a single reel URL.
	// Returns nil when the scraper finds nothing.
	FetchReelMetadata(ctx context.Context, reelURL string) (*model.Reel, error)
	// WithAPIKey returns a client that authenticates with the given key
	// instead of the configured default.
	WithAPIKey(apiKey string) IApify
}

// NewApify creates a new Apify client. Returns the interface.
func NewApify(cfg ApifyConfig) (IApify, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("apify: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = BaseURL
	}
	return &apifyImpl{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   ActorRunTimeout,
			Retries:   1,
			RetryWait: RetryWait,
		}),
	}, nil
}
