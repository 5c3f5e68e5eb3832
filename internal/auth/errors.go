package auth

import "errors"

var (
	ErrInvalidEmail   = errors.New("invalid email address")
	ErrCodeRequired   = errors.New("verification code is required")
	ErrInvalidCode    = errors.New("invalid or expired verification code")
	ErrUserNotFound   = errors.New("user not found")
	ErrNoKeysProvided = errors.New("no API keys provided")
)
