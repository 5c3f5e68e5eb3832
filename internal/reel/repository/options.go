package repository

import "repurpose-srv/pkg/paginator"

type CreateSavedReelOptions struct {
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
}

type ListSavedReelsOptions struct {
	UserID   string
	PagQuery paginator.PaginateQuery
}

type DeleteSavedReelOptions struct {
	ID     string
	UserID string
}
