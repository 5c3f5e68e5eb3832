package usecase

import (
	"sort"

	"repurpose-srv/internal/analytics"
	"repurpose-srv/internal/model"
)

const maxHashtagStats = 20

type hashtagAccum struct {
	count      int
	likes      int
	views      int
	comments   int
	engagement int
}

// analyzeHashtags aggregates per-tag performance across the batch. The full
// engagement of a post is attributed to every tag it carries. Output is
// ordered by mean engagement descending, ties keeping first-seen order,
// truncated to the top 20.
func analyzeHashtags(reels []model.Reel) []analytics.HashtagStat {
	accums := make(map[string]*hashtagAccum)
	order := make([]string, 0)

	for _, reel := range reels {
		engagement := reel.EngagementScore()
		for _, tag := range reel.Hashtags {
			acc, ok := accums[tag]
			if !ok {
				acc = &hashtagAccum{}
				accums[tag] = acc
				order = append(order, tag)
			}
			acc.count++
			acc.likes += reel.LikesCount
			acc.views += reel.ViewsCount
			acc.comments += reel.CommentsCount
			acc.engagement += engagement
		}
	}

	stats := make([]analytics.HashtagStat, 0, len(order))
	for _, tag := range order {
		acc := accums[tag]
		stats = append(stats, analytics.HashtagStat{
			Hashtag:        tag,
			Frequency:      acc.count,
			AvgLikes:       roundMean(acc.likes, acc.count),
			AvgViews:       roundMean(acc.views, acc.count),
			AvgComments:    roundMean(acc.comments, acc.count),
			EngagementRate: roundMean(acc.engagement, acc.count),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].EngagementRate > stats[j].EngagementRate
	})

	if len(stats) > maxHashtagStats {
		stats = stats[:maxHashtagStats]
	}
	return stats
}
