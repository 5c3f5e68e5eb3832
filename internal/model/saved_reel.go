package model

import "time"

// SavedReel is a reel a user bookmarked, with a transcript snapshot when one
// was available at save time.
type SavedReel struct {
	ID     string
	UserID string

	ReelID        string
	URL           string
	Caption       string
	Thumbnail     string
	LikesCount    int
	ViewsCount    int
	CommentsCount int
	Hashtags      []string
	MusicTitle    string
	PostedTime    string
	Username      string

	Transcript     string
	TranscriptLang string

	CreatedAt time.Time
}
