package repository

import "errors"

var (
	ErrUserNotFound     = errors.New("repository: user not found")
	ErrUserCreateFailed = errors.New("repository: failed to create user")
	ErrUserUpdateFailed = errors.New("repository: failed to update user")
	ErrCodeNotFound     = errors.New("repository: verification code not found")
)
