package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"repurpose-srv/internal/analytics"
	"repurpose-srv/internal/analytics/repository"
	"repurpose-srv/internal/model"
)

func (uc *implUseCase) Analyze(ctx context.Context, sc model.Scope, input analytics.AnalyzeInput) (analytics.Report, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return analytics.Report{}, analytics.ErrUsernameRequired
	}

	userID := input.UserID
	if userID == "" {
		userID = sc.UserID
	}
	if userID == "" {
		return analytics.Report{}, analytics.ErrUserIDRequired
	}

	report := analytics.Report{
		UserID:             userID,
		Username:           username,
		ProfileURL:         input.ProfileURL,
		TotalReelsAnalyzed: len(input.Reels),
		TopReels:           input.Reels,
		HashtagAnalysis:    analyzeHashtags(input.Reels),
		CaptionAnalysis:    analyzeCaptions(input.Reels),
		TranscriptAnalysis: analyzeTranscripts(input.Reels),
		PostTimeAnalysis:   analyzePostTimes(input.Reels),
		EngagementMetrics:  analyzeEngagement(input.Reels),
		LastAnalyzedAt:     time.Now().UnixMilli(),
	}
	if report.TopReels == nil {
		report.TopReels = []model.Reel{}
	}
	report.Insights, report.Recommendations = buildInsights(report)

	// Cache failures degrade repeat lookups, not the analysis itself.
	if err := uc.repo.SetReport(ctx, repository.SetReportOptions{
		UserID:   userID,
		Username: username,
		Report:   report,
	}); err != nil {
		uc.l.Warnf(ctx, "analytics.usecase.Analyze: Failed to cache report: %v", err)
	}

	return report, nil
}

func (uc *implUseCase) GetCachedReport(ctx context.Context, sc model.Scope, input analytics.GetReportInput) (analytics.Report, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return analytics.Report{}, analytics.ErrUsernameRequired
	}
	if sc.UserID == "" {
		return analytics.Report{}, analytics.ErrUserIDRequired
	}

	report, err := uc.repo.GetReport(ctx, repository.GetReportOptions{
		UserID:   sc.UserID,
		Username: username,
	})
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return analytics.Report{}, analytics.ErrReportNotFound
		}
		uc.l.Errorf(ctx, "analytics.usecase.GetCachedReport: Failed to load report: %v", err)
		return analytics.Report{}, err
	}
	return report, nil
}
