package media

import "errors"

var (
	ErrURLRequired = errors.New("image URL is required")
	ErrFetchFailed = errors.New("failed to fetch image")
	ErrStoreFailed = errors.New("failed to store image")
)
