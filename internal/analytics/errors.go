package analytics

import "errors"

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrUserIDRequired   = errors.New("user id is required")
	ErrReportNotFound   = errors.New("analytics report not found")
)
