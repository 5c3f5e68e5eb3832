package transcript

import "errors"

var (
	ErrURLRequired         = errors.New("video url is required")
	ErrJobIDRequired       = errors.New("job id is required")
	ErrRateLimited         = errors.New("transcript provider rate limit exceeded")
	ErrNotFound            = errors.New("no transcript available for this video")
	ErrInvalidInput        = errors.New("video url was rejected by the provider")
	ErrUpstreamUnavailable = errors.New("transcript provider unavailable")
)
