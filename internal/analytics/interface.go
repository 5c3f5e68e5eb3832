package analytics

import (
	"context"

	"repurpose-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Analyze(ctx context.Context, sc model.Scope, input AnalyzeInput) (Report, error)
	GetCachedReport(ctx context.Context, sc model.Scope, input GetReportInput) (Report, error)
}
