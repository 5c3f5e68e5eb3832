package apify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"repurpose-srv/internal/model"
)

var (
	// hashtagRegex matches hashtags including Hebrew characters.
	hashtagRegex  = regexp.MustCompile(`#[\w\x{0590}-\x{05ff}]+`)
	usernameRegex = regexp.MustCompile(`instagram\.com/([a-zA-Z0-9._]+)`)
)

// ExtractUsername extracts the username from an Instagram profile URL.
// Returns an empty string when the URL does not match.
func ExtractUsername(profileURL string) string {
	match := usernameRegex.FindStringSubmatch(profileURL)
	if match == nil {
		return ""
	}
	return match[1]
}

// ExtractHashtags returns the hashtags in a caption without the # prefix.
func ExtractHashtags(caption string) []string {
	if caption == "" {
		return []string{}
	}
	matches := hashtagRegex.FindAllString(caption, -1)
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, strings.TrimPrefix(m, "#"))
	}
	return tags
}

func (a *apifyImpl) WithAPIKey(apiKey string) IApify {
	if apiKey == "" {
		return a
	}
	clone := *a
	clone.apiKey = apiKey
	return &clone
}

func (a *apifyImpl) FetchProfileReels(ctx context.Context, username string) ([]model.Reel, error) {
	input := profileRunInput{
		Usernames:    []string{username},
		ResultsLimit: ProfileResultsLimit,
	}
	items, err := a.runActorSync(ctx, ProfileScraperActor, input)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reels from profile: %w", err)
	}

	reels := make([]model.Reel, 0)
	for _, item := range items {
		for _, post := range item.LatestPosts {
			if !isReel(post) {
				continue
			}
			reels = append(reels, toReel(post, ""))
		}
	}

	// Comments weighted double: they indicate stronger engagement than
	// passive likes or views.
	sort.SliceStable(reels, func(i, j int) bool {
		scoreI := reels[i].LikesCount + reels[i].ViewsCount + reels[i].CommentsCount*2
		scoreJ := reels[j].LikesCount + reels[j].ViewsCount + reels[j].CommentsCount*2
		return scoreI > scoreJ
	})

	return reels, nil
}

func (a *apifyImpl) FetchReelMetadata(ctx context.Context, reelURL string) (*model.Reel, error) {
	input := postRunInput{
		DirectURLs:   []string{reelURL},
		ResultsLimit: 1,
	}
	items, err := a.runActorSync(ctx, PostScraperActor, input)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reel metadata: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	reel := toReel(items[0].rawPost, reelURL)
	return &reel, nil
}

// runActorSync runs an actor synchronously and returns its dataset items.
func (a *apifyImpl) runActorSync(ctx context.Context, actorID string, input interface{}) ([]datasetItem, error) {
	runURL := fmt.Sprintf("%s/acts/%s/run-sync-get-dataset-items?token=%s",
		a.baseURL, actorID, url.QueryEscape(a.apiKey))

	body, statusCode, err := a.httpClient.Post(ctx, runURL, input, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call Apify API: %w", err)
	}
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("Apify API returned status: %d, body: %s", statusCode, string(body))
	}

	var items []datasetItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Apify dataset: %w", err)
	}
	return items, nil
}

// isReel reports whether a scraped post is a short-form video.
func isReel(post rawPost) bool {
	if post.Type == "Video" || post.Type == "Reel" {
		return true
	}
	return strings.Contains(post.DisplayURL, "video")
}

func toReel(post rawPost, overrideURL string) model.Reel {
	id := post.ID
	if id == "" {
		id = post.ShortCode
	}

	reelURL := overrideURL
	if reelURL == "" {
		reelURL = post.URL
		if reelURL == "" && post.ShortCode != "" {
			reelURL = fmt.Sprintf("https://instagram.com/reel/%s", post.ShortCode)
		}
	}

	caption := firstString(post.Caption, post.Text)
	postedTime := firstTimestamp(post.Timestamp, post.TakenAt, post.Created)

	musicTitle := ""
	if post.MusicInfo != nil {
		musicTitle = post.MusicInfo.Name
	}
	musicTitle = firstString(musicTitle, post.AudioName, post.MusicName, post.OriginalAudioTitle)

	return model.Reel{
		ID:            id,
		URL:           reelURL,
		Caption:       caption,
		Thumbnail:     firstString(post.DisplayURL, post.ThumbnailURL, post.Thumbnail),
		LikesCount:    firstCount(post.LikesCount, post.Likes),
		ViewsCount:    firstCount(post.VideoViewCount, post.PlaysCount, post.ViewCount),
		CommentsCount: firstCount(post.CommentsCount, post.Comments),
		Timestamp:     postedTime,
		PostedTime:    postedTime,
		VideoURL:      firstString(post.VideoURL, post.Video),
		Hashtags:      ExtractHashtags(caption),
		MusicTitle:    musicTitle,
	}
}

func firstString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstCount(values ...*int) int {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return 0
}

func firstTimestamp(values ...model.FlexTimestamp) model.FlexTimestamp {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
