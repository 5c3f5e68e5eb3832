package supadata

import "errors"

var (
	// ErrRateLimited means the provider's rate limit was exceeded.
	ErrRateLimited = errors.New("supadata: rate limit exceeded")
	// ErrUnauthorized means the API key was rejected.
	ErrUnauthorized = errors.New("supadata: invalid API key")
	// ErrNotFound means no transcript exists for the video.
	ErrNotFound = errors.New("supadata: transcript not found")
	// ErrInvalidInput means the video URL was rejected.
	ErrInvalidInput = errors.New("supadata: invalid input")
	// ErrUnavailable means the provider failed upstream.
	ErrUnavailable = errors.New("supadata: service unavailable")
)
