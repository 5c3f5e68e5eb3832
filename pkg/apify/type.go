package apify

import (
	"repurpose-srv/internal/model"
	pkghttp "repurpose-srv/pkg/http"
)

// ApifyConfig holds the configuration for the Apify client.
type ApifyConfig struct {
	APIKey  string
	BaseURL string
}

// apifyImpl implements IApify over the Apify REST API.
type apifyImpl struct {
	apiKey     string
	baseURL    string
	httpClient pkghttp.IClient
}

// profileRunInput is the profile scraper actor input.
type profileRunInput struct {
	Usernames    []string `json:"usernames"`
	ResultsLimit int      `json:"resultsLimit"`
}

// postRunInput is the post scraper actor input.
type postRunInput struct {
	DirectURLs   []string `json:"directUrls"`
	ResultsLimit int      `json:"resultsLimit"`
}

// datasetItem is one item of a scraper dataset. Profile scraper items carry
// the posts under latestPosts; post scraper items are the post itself.
type datasetItem struct {
	LatestPosts []rawPost `json:"latestPosts"`
	rawPost
}

// musicInfo carries the audio attached to a post.
type musicInfo struct {
	Name string `json:"name"`
}

// rawPost mirrors the scraper's post shape. The scrapers are inconsistent
// about field names across versions, so every value has fallbacks.
type rawPost struct {
	ID        string `json:"id"`
	ShortCode string `json:"shortCode"`
	Type      string `json:"type"`
	URL       string `json:"url"`

	Caption string `json:"caption"`
	Text    string `json:"text"`

	DisplayURL   string `json:"displayUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Thumbnail    string `json:"thumbnail"`

	LikesCount *int `json:"likesCount"`
	Likes      *int `json:"likes"`

	VideoViewCount *int `json:"videoViewCount"`
	PlaysCount     *int `json:"playsCount"`
	ViewCount      *int `json:"viewCount"`

	CommentsCount *int `json:"commentsCount"`
	Comments      *int `json:"comments"`

	Timestamp model.FlexTimestamp `json:"timestamp"`
	TakenAt   model.FlexTimestamp `json:"takenAt"`
	Created   model.FlexTimestamp `json:"created"`

	VideoURL string `json:"videoUrl"`
	Video    string `json:"video"`

	MusicInfo          *musicInfo `json:"musicInfo"`
	AudioName          string     `json:"audioName"`
	MusicName          string     `json:"musicName"`
	OriginalAudioTitle string     `json:"originalAudioTitle"`
}
