package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"repurpose-srv/internal/analytics"
	"repurpose-srv/internal/analytics/repository"
	pkgRedis "repurpose-srv/pkg/redis"
)

// reportTTL keeps a profile report warm for an hour. Re-analyzing the same
// profile within that window reuses the cached report.
const reportTTL = time.Hour

func reportKey(userID, username string) string {
	return fmt.Sprintf("analytics:report:%s:%s", userID, username)
}

func (r *implCacheRepository) SetReport(ctx context.Context, opts repository.SetReportOptions) error {
	data, err := json.Marshal(opts.Report)
	if err != nil {
		return err
	}
	key := reportKey(opts.UserID, opts.Username)
	if err := r.redis.Set(ctx, key, data, reportTTL); err != nil {
		r.l.Errorf(ctx, "analytics.repository.redis.SetReport: Failed to save to cache: %v", err)
		return err
	}
	return nil
}

func (r *implCacheRepository) GetReport(ctx context.Context, opts repository.GetReportOptions) (analytics.Report, error) {
	key := reportKey(opts.UserID, opts.Username)
	data, err := r.redis.Get(ctx, key)
	if err != nil {
		if errors.Is(err, pkgRedis.ErrNotFound) {
			return analytics.Report{}, repository.ErrReportNotFound
		}
		return analytics.Report{}, err
	}

	var report analytics.Report
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		r.l.Errorf(ctx, "analytics.repository.redis.GetReport: Failed to unmarshal report: %v", err)
		return analytics.Report{}, err
	}
	return report, nil
}
