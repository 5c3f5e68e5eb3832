package repository

import "repurpose-srv/pkg/paginator"

type CreateContentOptions struct {
	ID     string
	UserID string

	OriginalReelID   string
	Goal             string
	TargetPlatform   string
	Tone             string
	VisualPreference string
	TargetLanguage   string

	GeneratedScript   string
	GeneratedCaption  string
	SuggestedHashtags []string
	VisualSuggestions []string
	Duration          string
}

type ListContentsOptions struct {
	UserID   string
	PagQuery paginator.PaginateQuery
}
