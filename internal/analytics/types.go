package analytics

import "repurpose-srv/internal/model"

// Caption style classes derived from mean caption length.
const (
	CaptionStyleShort  = "short"
	CaptionStyleMedium = "medium"
	CaptionStyleLong   = "long"
)

// Pace classes derived from estimated speaking speed.
const (
	PaceStyleFast   = "fast"
	PaceStyleMedium = "medium"
	PaceStyleSlow   = "slow"
)

// AnalyzeInput carries one analysis request: the identifying context plus the
// already-materialized reel batch.
type AnalyzeInput struct {
	Username   string
	ProfileURL string
	UserID     string
	Reels      []model.Reel
}

// GetReportInput identifies a previously cached report.
type GetReportInput struct {
	Username string
}

// HashtagStat is the per-hashtag performance row. EngagementRate is the mean
// engagement score of the posts carrying the tag, rounded to an integer.
type HashtagStat struct {
	Hashtag        string `json:"hashtag"`
	Frequency      int    `json:"frequency"`
	AvgLikes       int    `json:"avgLikes"`
	AvgViews       int    `json:"avgViews"`
	AvgComments    int    `json:"avgComments"`
	EngagementRate int    `json:"engagementRate"`
}

// CaptionReport summarizes caption writing patterns. Usage metrics are
// percentages of the non-empty caption set, rounded to integers.
type CaptionReport struct {
	AvgLength         int      `json:"avgLength"`
	AvgWordCount      int      `json:"avgWordCount"`
	TopKeywords       []string `json:"topKeywords"`
	CaptionStyle      string   `json:"captionStyle"`
	EmojiUsage        int      `json:"emojiUsage"`
	QuestionUsage     int      `json:"questionUsage"`
	CallToActionUsage int      `json:"callToActionUsage"`
}

// TranscriptReport summarizes spoken content across transcripts.
// SentimentScore ranges -1..1 with two decimals.
type TranscriptReport struct {
	AvgLength      int      `json:"avgLength"`
	TopTopics      []string `json:"topTopics"`
	SentimentScore float64  `json:"sentimentScore"`
	PaceStyle      string   `json:"paceStyle"`
	KeyPhrases     []string `json:"keyPhrases"`
}

// PostTimeReport holds posting-time buckets. Hours are 0-23 local time and
// days 0=Sunday..6=Saturday.
type PostTimeReport struct {
	BestHour            int         `json:"bestHour"`
	BestDayOfWeek       int         `json:"bestDayOfWeek"`
	AvgEngagementByHour map[int]int `json:"avgEngagementByHour"`
	AvgEngagementByDay  map[int]int `json:"avgEngagementByDay"`
}

// EngagementReport holds aggregate engagement over the whole batch.
// EngagementRate is (likes+comments)/views as a percentage, two decimals.
type EngagementReport struct {
	AvgLikes            int     `json:"avgLikes"`
	AvgViews            int     `json:"avgViews"`
	AvgComments         int     `json:"avgComments"`
	TotalEngagement     int     `json:"totalEngagement"`
	EngagementRate      float64 `json:"engagementRate"`
	BestPerformingReel  string  `json:"bestPerformingReel"`
	WorstPerformingReel string  `json:"worstPerformingReel"`
}

// Report is the full analytics report for one profile. A pure function of
// its inputs except LastAnalyzedAt, the generation time in epoch millis.
type Report struct {
	UserID             string           `json:"userId"`
	Username           string           `json:"username"`
	ProfileURL         string           `json:"profileUrl"`
	TotalReelsAnalyzed int              `json:"totalReelsAnalyzed"`
	TopReels           []model.Reel     `json:"topReels"`
	HashtagAnalysis    []HashtagStat    `json:"hashtagAnalysis"`
	CaptionAnalysis    CaptionReport    `json:"captionAnalysis"`
	TranscriptAnalysis TranscriptReport `json:"transcriptAnalysis"`
	PostTimeAnalysis   PostTimeReport   `json:"postTimeAnalysis"`
	EngagementMetrics  EngagementReport `json:"engagementMetrics"`
	LastAnalyzedAt     int64            `json:"lastAnalyzedAt"`
	Insights           []string         `json:"insights"`
	Recommendations    []string         `json:"recommendations"`
}
