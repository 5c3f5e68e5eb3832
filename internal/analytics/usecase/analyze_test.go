package usecase

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"repurpose-srv/internal/analytics"
	"repurpose-srv/internal/analytics/repository"
	"repurpose-srv/internal/model"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Info(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Warn(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Error(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Fatal(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...interface{}) {}

type stubRepo struct {
	saved  map[string]analytics.Report
	setErr error
}

func newStubRepo() *stubRepo {
	return &stubRepo{saved: make(map[string]analytics.Report)}
}

func (s *stubRepo) SetReport(ctx context.Context, opts repository.SetReportOptions) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.saved[opts.UserID+":"+opts.Username] = opts.Report
	return nil
}

func (s *stubRepo) GetReport(ctx context.Context, opts repository.GetReportOptions) (analytics.Report, error) {
	report, ok := s.saved[opts.UserID+":"+opts.Username]
	if !ok {
		return analytics.Report{}, repository.ErrReportNotFound
	}
	return report, nil
}

func newTestUseCase(repo repository.RedisRepository) analytics.UseCase {
	return New(nopLogger{}, repo)
}

func TestAnalyzeValidation(t *testing.T) {
	uc := newTestUseCase(newStubRepo())
	ctx := context.Background()

	_, err := uc.Analyze(ctx, model.Scope{UserID: "u1"}, analytics.AnalyzeInput{})
	if !errors.Is(err, analytics.ErrUsernameRequired) {
		t.Errorf("expected ErrUsernameRequired, got %v", err)
	}

	_, err = uc.Analyze(ctx, model.Scope{}, analytics.AnalyzeInput{Username: "creator"})
	if !errors.Is(err, analytics.ErrUserIDRequired) {
		t.Errorf("expected ErrUserIDRequired, got %v", err)
	}
}

func TestAnalyzeEmptyBatchDefaults(t *testing.T) {
	uc := newTestUseCase(newStubRepo())

	report, err := uc.Analyze(context.Background(), model.Scope{UserID: "u1"}, analytics.AnalyzeInput{
		Username: "creator",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.TotalReelsAnalyzed != 0 || len(report.TopReels) != 0 {
		t.Errorf("expected empty batch, got %d reels", report.TotalReelsAnalyzed)
	}
	if len(report.HashtagAnalysis) != 0 {
		t.Errorf("expected no hashtag stats, got %d", len(report.HashtagAnalysis))
	}

	captions := report.CaptionAnalysis
	if captions.AvgLength != 0 || captions.AvgWordCount != 0 || captions.CaptionStyle != analytics.CaptionStyleShort {
		t.Errorf("unexpected caption defaults: %+v", captions)
	}
	if captions.TopKeywords == nil || len(captions.TopKeywords) != 0 {
		t.Errorf("expected empty keyword slice, got %v", captions.TopKeywords)
	}

	transcripts := report.TranscriptAnalysis
	if transcripts.PaceStyle != analytics.PaceStyleMedium || transcripts.SentimentScore != 0 {
		t.Errorf("unexpected transcript defaults: %+v", transcripts)
	}

	postTimes := report.PostTimeAnalysis
	if postTimes.BestHour != 12 || postTimes.BestDayOfWeek != 3 {
		t.Errorf("unexpected post time defaults: hour=%d day=%d", postTimes.BestHour, postTimes.BestDayOfWeek)
	}
	if len(postTimes.AvgEngagementByHour) != 0 || len(postTimes.AvgEngagementByDay) != 0 {
		t.Errorf("expected empty buckets, got %+v", postTimes)
	}

	metrics := report.EngagementMetrics
	if metrics.AvgLikes != 0 || metrics.EngagementRate != 0 || metrics.BestPerformingReel != "" {
		t.Errorf("unexpected engagement defaults: %+v", metrics)
	}
	if report.LastAnalyzedAt == 0 {
		t.Error("expected LastAnalyzedAt to be set")
	}
}

func TestAnalyzeHashtagAveraging(t *testing.T) {
	reels := []model.Reel{
		{ID: "r1", LikesCount: 10, Hashtags: []string{"x"}},
		{ID: "r2", LikesCount: 20, Hashtags: []string{"x"}},
	}

	stats := analyzeHashtags(reels)
	if len(stats) != 1 {
		t.Fatalf("expected one stat, got %d", len(stats))
	}
	stat := stats[0]
	if stat.Hashtag != "x" || stat.Frequency != 2 {
		t.Errorf("unexpected stat identity: %+v", stat)
	}
	if stat.AvgLikes != 15 {
		t.Errorf("expected avgLikes 15, got %d", stat.AvgLikes)
	}
	if stat.EngagementRate != 15 {
		t.Errorf("expected engagementRate 15, got %d", stat.EngagementRate)
	}
}

func TestAnalyzeHashtagOrderingAndTruncation(t *testing.T) {
	reels := make([]model.Reel, 0, 25)
	for i := 0; i < 25; i++ {
		reels = append(reels, model.Reel{
			LikesCount: 25 - i,
			Hashtags:   []string{string(rune('a' + i))},
		})
	}

	stats := analyzeHashtags(reels)
	if len(stats) != 20 {
		t.Fatalf("expected 20 stats, got %d", len(stats))
	}
	for i := 1; i < len(stats); i++ {
		if stats[i].EngagementRate > stats[i-1].EngagementRate {
			t.Errorf("stats not in non-increasing order at %d: %d > %d",
				i, stats[i].EngagementRate, stats[i-1].EngagementRate)
		}
	}
	if stats[0].Hashtag != "a" {
		t.Errorf("expected highest-engagement tag first, got %q", stats[0].Hashtag)
	}
}

func TestCaptionStyleBoundaries(t *testing.T) {
	cases := []struct {
		length int
		want   string
	}{
		{150, analytics.CaptionStyleShort},
		{151, analytics.CaptionStyleMedium},
		{500, analytics.CaptionStyleMedium},
		{501, analytics.CaptionStyleLong},
	}
	for _, tc := range cases {
		reels := []model.Reel{{Caption: strings.Repeat("a", tc.length)}}
		got := analyzeCaptions(reels)
		if got.CaptionStyle != tc.want {
			t.Errorf("length %d: expected style %q, got %q", tc.length, tc.want, got.CaptionStyle)
		}
	}
}

func TestCaptionUsageMetrics(t *testing.T) {
	reels := []model.Reel{
		{Caption: "Check the link in my bio?"},
		{Caption: "Just a plain caption here"},
		{Caption: ""}, // empty captions are excluded from the caption set
	}

	got := analyzeCaptions(reels)
	if got.QuestionUsage != 50 {
		t.Errorf("expected questionUsage 50, got %d", got.QuestionUsage)
	}
	if got.CallToActionUsage != 50 {
		t.Errorf("expected callToActionUsage 50, got %d", got.CallToActionUsage)
	}
}

func TestCaptionEmojiUsage(t *testing.T) {
	reels := []model.Reel{
		{Caption: "On fire today 🔥🔥🔥"},
		{Caption: "No symbols in this one"},
	}

	// The metric divides total emoji matches by caption count, so a single
	// emoji-heavy caption pushes it past 100.
	got := analyzeCaptions(reels)
	if got.EmojiUsage != 150 {
		t.Errorf("expected emojiUsage 150, got %d", got.EmojiUsage)
	}
}

func TestTopKeywordsFiltering(t *testing.T) {
	reels := []model.Reel{
		{Caption: "Morning workout routine #fitness with this workout plan"},
		{Caption: "Another workout for that morning energy"},
	}

	got := analyzeCaptions(reels)
	if len(got.TopKeywords) == 0 || got.TopKeywords[0] != "workout" {
		t.Fatalf("expected 'workout' as top keyword, got %v", got.TopKeywords)
	}
	for _, keyword := range got.TopKeywords {
		if keyword == "fitness" {
			t.Error("hashtag tokens should be stripped before keyword extraction")
		}
		if len(keyword) <= 3 {
			t.Errorf("short word %q should be filtered", keyword)
		}
		if keyword == "with" || keyword == "this" || keyword == "that" {
			t.Errorf("stop word %q should be filtered", keyword)
		}
	}
}

func TestSentimentScore(t *testing.T) {
	cases := []struct {
		name string
		text string
		want float64
	}{
		{"neutral", "walking down the street today", 0},
		{"positive", "this is great and awesome and amazing", 1},
		{"negative", "bad terrible awful", -1},
		{"mixed", "great great great bad", 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sentimentScore(tc.text); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestTranscriptPace(t *testing.T) {
	slow := strings.Repeat("word ", 80)   // ~80 words over 45s
	fast := strings.Repeat("word ", 200)  // ~200 words over 45s
	medium := strings.Repeat("word ", 99) // 2.2 words/s

	cases := []struct {
		name string
		text string
		want string
	}{
		{"slow", slow, analytics.PaceStyleSlow},
		{"fast", fast, analytics.PaceStyleFast},
		{"medium", medium, analytics.PaceStyleMedium},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reels := []model.Reel{{
				Transcript: &model.Transcript{
					Content: &model.TranscriptContent{Plain: strings.TrimSpace(tc.text)},
				},
			}}
			got := analyzeTranscripts(reels)
			if got.PaceStyle != tc.want {
				t.Errorf("expected pace %q, got %q", tc.want, got.PaceStyle)
			}
		})
	}
}

func TestTranscriptChunksJoined(t *testing.T) {
	reels := []model.Reel{{
		Transcript: &model.Transcript{
			Content: &model.TranscriptContent{Chunks: []model.TranscriptChunk{
				{Text: "great content"},
				{Text: "amazing results"},
			}},
		},
	}}

	got := analyzeTranscripts(reels)
	if got.SentimentScore != 1 {
		t.Errorf("expected sentiment 1 from joined chunks, got %v", got.SentimentScore)
	}
	if got.AvgLength != len("great content amazing results") {
		t.Errorf("unexpected avgLength %d", got.AvgLength)
	}
}

func TestTranscriptPhraseLengthBoundary(t *testing.T) {
	reels := []model.Reel{{
		Transcript: &model.Transcript{
			Content: &model.TranscriptContent{Plain: "go now go now go now"},
		},
	}}

	// The length filter runs on the joined phrase, space included, so
	// "go now" (6 chars) survives while "ab cd" (5 chars) would not.
	got := analyzeTranscripts(reels)
	want := []string{"go now", "now go"}
	if !reflect.DeepEqual(got.KeyPhrases, want) {
		t.Errorf("expected key phrases %v, got %v", want, got.KeyPhrases)
	}

	short := topPhrases([]string{"ab", "cd", "ab", "cd"})
	if len(short) != 0 {
		t.Errorf("expected 5-char phrases filtered out, got %v", short)
	}
}

func TestPostTimeTieBreaksToSmallerHour(t *testing.T) {
	reels := []model.Reel{
		{LikesCount: 100, PostedTime: model.FlexTimestamp("2024-01-01T17:30:00")},
		{LikesCount: 100, PostedTime: model.FlexTimestamp("2024-01-01T09:30:00")},
	}

	got := analyzePostTimes(reels)
	if got.BestHour != 9 {
		t.Errorf("expected tie to resolve to hour 9, got %d", got.BestHour)
	}
	if got.BestDayOfWeek != 1 {
		t.Errorf("expected Monday (1), got %d", got.BestDayOfWeek)
	}
	if got.AvgEngagementByHour[9] != 100 || got.AvgEngagementByHour[17] != 100 {
		t.Errorf("unexpected hour buckets: %v", got.AvgEngagementByHour)
	}
}

func TestPostTimePrefersPostedTime(t *testing.T) {
	reels := []model.Reel{{
		LikesCount: 10,
		PostedTime: model.FlexTimestamp("2024-01-01T08:00:00"),
		Timestamp:  model.FlexTimestamp("2024-01-01T20:00:00"),
	}}

	got := analyzePostTimes(reels)
	if got.BestHour != 8 {
		t.Errorf("expected posted_time to win, got hour %d", got.BestHour)
	}
}

func TestEngagementRate(t *testing.T) {
	reels := []model.Reel{
		{ID: "r1", LikesCount: 60, CommentsCount: 30, ViewsCount: 600},
		{ID: "r2", LikesCount: 40, CommentsCount: 20, ViewsCount: 400},
	}

	got := analyzeEngagement(reels)
	if got.EngagementRate != 15 {
		t.Errorf("expected rate 15, got %v", got.EngagementRate)
	}
	if got.TotalEngagement != 1150 {
		t.Errorf("expected totalEngagement 1150, got %d", got.TotalEngagement)
	}
	if got.AvgLikes != 50 || got.AvgViews != 500 || got.AvgComments != 25 {
		t.Errorf("unexpected averages: %+v", got)
	}
}

func TestEngagementBestWorstOrderIndependent(t *testing.T) {
	a := model.Reel{ID: "low", LikesCount: 1}
	b := model.Reel{ID: "high", LikesCount: 100}

	forward := analyzeEngagement([]model.Reel{a, b})
	backward := analyzeEngagement([]model.Reel{b, a})

	if forward.BestPerformingReel != "high" || backward.BestPerformingReel != "high" {
		t.Errorf("best reel should be 'high' regardless of order: %q vs %q",
			forward.BestPerformingReel, backward.BestPerformingReel)
	}
	if forward.WorstPerformingReel != "low" || backward.WorstPerformingReel != "low" {
		t.Errorf("worst reel should be 'low' regardless of order: %q vs %q",
			forward.WorstPerformingReel, backward.WorstPerformingReel)
	}
}

func TestFormatHour(t *testing.T) {
	cases := map[int]string{
		0:  "12AM",
		5:  "5AM",
		12: "12PM",
		13: "1PM",
		23: "11PM",
	}
	for hour, want := range cases {
		if got := formatHour(hour); got != want {
			t.Errorf("hour %d: expected %q, got %q", hour, want, got)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[int]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		1234567: "1,234,567",
	}
	for n, want := range cases {
		if got := formatNumber(n); got != want {
			t.Errorf("%d: expected %q, got %q", n, want, got)
		}
	}
}

func TestInsightsContent(t *testing.T) {
	reels := []model.Reel{
		{ID: "r1", LikesCount: 1000, ViewsCount: 10000, CommentsCount: 100,
			Caption:  "Morning routine tips for better focus",
			Hashtags: []string{"fitness", "health", "morning"},
		},
	}

	uc := newTestUseCase(newStubRepo())
	report, err := uc.Analyze(context.Background(), model.Scope{UserID: "u1"}, analytics.AnalyzeInput{
		Username: "creator",
		Reels:    reels,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantInsight := "Your best performing hashtag is #fitness with an average of 11,100 engagement per post"
	if len(report.Insights) == 0 || report.Insights[0] != wantInsight {
		t.Errorf("expected first insight %q, got %v", wantInsight, report.Insights)
	}

	wantRec := "Focus on these high-performing hashtags: #fitness, #health, #morning"
	if len(report.Recommendations) == 0 || report.Recommendations[0] != wantRec {
		t.Errorf("expected first recommendation %q, got %v", wantRec, report.Recommendations)
	}

	// (1000+100)/10000*100 = 11% engagement rate, above the excellence bar.
	wantRate := "Your average engagement rate is 11%"
	found := false
	excellent := false
	for _, insight := range report.Insights {
		if insight == wantRate {
			found = true
		}
		if insight == "Your engagement rate is excellent! Keep up the great content" {
			excellent = true
		}
	}
	if !found {
		t.Errorf("missing rate insight %q in %v", wantRate, report.Insights)
	}
	if !excellent {
		t.Error("expected excellence insight for rate above 5")
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	reels := []model.Reel{
		{ID: "r1", LikesCount: 10, ViewsCount: 100, Caption: "Great workout session today",
			Hashtags: []string{"fitness", "gym"}},
		{ID: "r2", LikesCount: 20, ViewsCount: 50, Caption: "Check the link in bio",
			Hashtags: []string{"fitness"}},
	}

	uc := newTestUseCase(newStubRepo())
	sc := model.Scope{UserID: "u1"}
	input := analytics.AnalyzeInput{Username: "creator", Reels: reels}

	first, err := uc.Analyze(context.Background(), sc, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.Analyze(context.Background(), sc, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first.LastAnalyzedAt = 0
	second.LastAnalyzedAt = 0
	if !reflect.DeepEqual(first, second) {
		t.Errorf("reports differ across identical runs:\n%+v\n%+v", first, second)
	}
}

func TestAnalyzeCachesReport(t *testing.T) {
	repo := newStubRepo()
	uc := newTestUseCase(repo)
	sc := model.Scope{UserID: "u1"}

	report, err := uc.Analyze(context.Background(), sc, analytics.AnalyzeInput{Username: "creator"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cached, err := uc.GetCachedReport(context.Background(), sc, analytics.GetReportInput{Username: "creator"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(report, cached) {
		t.Error("cached report does not match the analyzed report")
	}
}

func TestAnalyzeSurvivesCacheFailure(t *testing.T) {
	repo := newStubRepo()
	repo.setErr = errors.New("redis down")
	uc := newTestUseCase(repo)

	_, err := uc.Analyze(context.Background(), model.Scope{UserID: "u1"}, analytics.AnalyzeInput{Username: "creator"})
	if err != nil {
		t.Errorf("cache failure should not fail analysis: %v", err)
	}
}

func TestGetCachedReportMiss(t *testing.T) {
	uc := newTestUseCase(newStubRepo())

	_, err := uc.GetCachedReport(context.Background(), model.Scope{UserID: "u1"}, analytics.GetReportInput{Username: "nobody"})
	if !errors.Is(err, analytics.ErrReportNotFound) {
		t.Errorf("expected ErrReportNotFound, got %v", err)
	}
}
