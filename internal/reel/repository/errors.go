package repository

import "errors"

var (
	ErrSavedReelNotFound     = errors.New("repository: saved reel not found")
	ErrSavedReelCreateFailed = errors.New("repository: failed to save reel")
)
