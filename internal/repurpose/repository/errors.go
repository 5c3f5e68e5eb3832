package repository

import "errors"

var (
	ErrContentCreateFailed = errors.New("repository: failed to store repurposed content")
)
