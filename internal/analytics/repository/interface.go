package repository

import (
	"context"

	"repurpose-srv/internal/analytics"
)

//go:generate mockery --name RedisRepository
type RedisRepository interface {
	SetReport(ctx context.Context, opts SetReportOptions) error
	GetReport(ctx context.Context, opts GetReportOptions) (analytics.Report, error)
}
