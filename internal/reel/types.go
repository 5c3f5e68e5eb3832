package reel

import (
	"repurpose-srv/internal/model"
	"repurpose-srv/pkg/paginator"
)

// TopReelsLimit caps how many reels a profile listing returns.
const TopReelsLimit = 5

type GetTopReelsInput struct {
	ProfileURL string
}

type GetTopReelsOutput struct {
	Username      string
	ProfileURL    string
	TopReels      []model.Reel
	TotalAnalyzed int
}

type GetReelMetadataInput struct {
	URL string
}

type SaveReelInput struct {
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
}

type ListSavedReelsInput struct {
	PagQuery paginator.PaginateQuery
}

type ListSavedReelsOutput struct {
	Reels     []model.SavedReel
	Paginator paginator.Paginator
}

type DeleteSavedReelInput struct {
	ID string
}
