package model

import "time"

// RepurposedContent is one LLM-generated rewrite of a reel for another
// platform/tone, persisted per user.
type RepurposedContent struct {
	ID             string
	UserID         string
	OriginalReelID string

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

	CreatedAt time.Time
}
