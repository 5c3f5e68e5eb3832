package repository

import "repurpose-srv/internal/analytics"

type SetReportOptions struct {
	UserID   string
	Username string
	Report   analytics.Report
}

type GetReportOptions struct {
	UserID   string
	Username string
}
