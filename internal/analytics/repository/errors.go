package repository

import "errors"

var (
	ErrReportNotFound = errors.New("repository: analytics report not found")
)
