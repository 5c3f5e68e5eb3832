package usecase

import (
	"fmt"
	"strings"

	"repurpose-srv/internal/analytics"
)

var dayNames = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// formatHour renders a 0-23 hour as a 12-hour clock label, e.g. 0 -> "12AM",
// 13 -> "1PM".
func formatHour(hour int) string {
	switch {
	case hour > 12:
		return fmt.Sprintf("%dPM", hour-12)
	case hour == 12:
		return "12PM"
	case hour == 0:
		return "12AM"
	default:
		return fmt.Sprintf("%dAM", hour)
	}
}

// buildInsights turns the individual analyses into human-readable insights
// and recommendations. Ordering is deterministic.
func buildInsights(report analytics.Report) (insights, recommendations []string) {
	insights = []string{}
	recommendations = []string{}

	if len(report.HashtagAnalysis) > 0 {
		top := report.HashtagAnalysis[0]
		insights = append(insights, fmt.Sprintf(
			"Your best performing hashtag is #%s with an average of %s engagement per post",
			top.Hashtag, formatNumber(top.EngagementRate)))

		if len(report.HashtagAnalysis) >= 3 {
			tags := make([]string, 0, 3)
			for _, stat := range report.HashtagAnalysis[:3] {
				tags = append(tags, "#"+stat.Hashtag)
			}
			recommendations = append(recommendations, fmt.Sprintf(
				"Focus on these high-performing hashtags: %s", strings.Join(tags, ", ")))
		}
	}

	captions := report.CaptionAnalysis
	insights = append(insights, fmt.Sprintf(
		"Your captions average %d words with %s style",
		captions.AvgWordCount, captions.CaptionStyle))

	if captions.CallToActionUsage < 30 {
		recommendations = append(recommendations,
			"Consider adding more calls-to-action in your captions to drive engagement")
	}
	if captions.QuestionUsage < 20 {
		recommendations = append(recommendations,
			"Try asking more questions in your captions to boost comments")
	}

	sentiment := report.TranscriptAnalysis.SentimentScore
	if sentiment > 0.3 {
		insights = append(insights,
			"Your content has a positive tone, which resonates well with audiences")
	} else if sentiment < -0.3 {
		insights = append(insights,
			"Your content has a more serious or critical tone")
	}

	insights = append(insights, fmt.Sprintf(
		"Your speaking pace is %s, which %s",
		report.TranscriptAnalysis.PaceStyle, paceRemark(report.TranscriptAnalysis.PaceStyle)))

	bestDay := dayNames[report.PostTimeAnalysis.BestDayOfWeek]
	bestHour := formatHour(report.PostTimeAnalysis.BestHour)
	insights = append(insights, fmt.Sprintf(
		"Your best posting time is %ss at %s", bestDay, bestHour))
	recommendations = append(recommendations, fmt.Sprintf(
		"Schedule your posts on %ss around %s for maximum reach", bestDay, bestHour))

	rate := report.EngagementMetrics.EngagementRate
	insights = append(insights, fmt.Sprintf(
		"Your average engagement rate is %s%%", formatFloat(rate)))
	if rate < 3 {
		recommendations = append(recommendations,
			"Try experimenting with trending audio and more dynamic hooks in the first 3 seconds")
	}
	if rate > 5 {
		insights = append(insights,
			"Your engagement rate is excellent! Keep up the great content")
	}

	return insights, recommendations
}

func paceRemark(pace string) string {
	switch pace {
	case analytics.PaceStyleFast:
		return "keeps viewers engaged"
	case analytics.PaceStyleSlow:
		return "allows for better comprehension"
	default:
		return "maintains good balance"
	}
}
