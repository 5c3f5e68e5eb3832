package http

import (
	"io"
	"net/http"
	"time"
)

// ClientConfig holds configuration for the HTTP client.
type ClientConfig struct {
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
}

// StreamResponse wraps a streamed response body. The caller owns Body
// and must close it.
type StreamResponse struct {
	Body          io.ReadCloser
	StatusCode    int
	ContentType   string
	ContentLength int64
}

// clientImpl implements IClient.
type clientImpl struct {
	client *http.Client
	config ClientConfig
}
