package usecase

import (
	"sort"

	"repurpose-srv/internal/analytics"
	"repurpose-srv/internal/model"
)

// analyzeEngagement aggregates raw engagement over the whole batch and picks
// the best and worst performing reels by likes+views+comments.
func analyzeEngagement(reels []model.Reel) analytics.EngagementReport {
	if len(reels) == 0 {
		return analytics.EngagementReport{}
	}

	totalLikes := 0
	totalViews := 0
	totalComments := 0
	for _, reel := range reels {
		totalLikes += reel.LikesCount
		totalViews += reel.ViewsCount
		totalComments += reel.CommentsCount
	}

	rate := 0.0
	if totalViews > 0 {
		rate = round2(float64(totalLikes+totalComments) / float64(totalViews) * 100)
	}

	ranked := make([]model.Reel, len(reels))
	copy(ranked, reels)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].EngagementScore() > ranked[j].EngagementScore()
	})

	return analytics.EngagementReport{
		AvgLikes:            roundMean(totalLikes, len(reels)),
		AvgViews:            roundMean(totalViews, len(reels)),
		AvgComments:         roundMean(totalComments, len(reels)),
		TotalEngagement:     totalLikes + totalViews + totalComments,
		EngagementRate:      rate,
		BestPerformingReel:  ranked[0].ID,
		WorstPerformingReel: ranked[len(ranked)-1].ID,
	}
}
