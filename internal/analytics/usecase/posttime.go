package usecase

import (
	"sort"

	"repurpose-srv/internal/analytics"
	"repurpose-srv/internal/model"
)

// Fallback recommendation when no reel carries a usable posting time:
// mid-day, mid-week.
const (
	defaultBestHour = 12
	defaultBestDay  = 3
)

// analyzePostTimes buckets engagement by local posting hour (0-23) and day
// of week (0=Sunday). Best hour/day is the bucket with the highest mean
// engagement, ties resolving to the numerically smaller key.
func analyzePostTimes(reels []model.Reel) analytics.PostTimeReport {
	hourTotals := make(map[int]int)
	hourCounts := make(map[int]int)
	dayTotals := make(map[int]int)
	dayCounts := make(map[int]int)

	for _, reel := range reels {
		postedAt, ok := reel.PostedAt()
		if !ok {
			continue
		}
		engagement := reel.EngagementScore()
		hour := postedAt.Hour()
		day := int(postedAt.Weekday())
		hourTotals[hour] += engagement
		hourCounts[hour]++
		dayTotals[day] += engagement
		dayCounts[day]++
	}

	byHour := make(map[int]int, len(hourTotals))
	for hour, total := range hourTotals {
		byHour[hour] = roundMean(total, hourCounts[hour])
	}
	byDay := make(map[int]int, len(dayTotals))
	for day, total := range dayTotals {
		byDay[day] = roundMean(total, dayCounts[day])
	}

	bestHour := bestBucket(byHour, defaultBestHour)
	bestDay := bestBucket(byDay, defaultBestDay)

	return analytics.PostTimeReport{
		BestHour:            bestHour,
		BestDayOfWeek:       bestDay,
		AvgEngagementByHour: byHour,
		AvgEngagementByDay:  byDay,
	}
}

func bestBucket(buckets map[int]int, fallback int) int {
	if len(buckets) == 0 {
		return fallback
	}
	keys := make([]int, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	sort.SliceStable(keys, func(i, j int) bool {
		return buckets[keys[i]] > buckets[keys[j]]
	})
	return keys[0]
}
