package reel

import "errors"

var (
	ErrInvalidProfileURL = errors.New("profile url does not contain a username")
	ErrURLRequired       = errors.New("reel url is required")
	ErrReelNotFound      = errors.New("reel not found")
	ErrScrapeFailed      = errors.New("failed to fetch data from instagram")
	ErrSavedReelNotFound = errors.New("saved reel not found")
)
