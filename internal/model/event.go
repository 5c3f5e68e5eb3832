package model

// TranscriptFetchRequestedEvent is published once per listed reel so the
// consumer can prefetch its transcript in the background.
type TranscriptFetchRequestedEvent struct {
	URL    string `json:"url"`
	UserID string `json:"userId"`
}
