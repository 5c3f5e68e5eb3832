package kafka

// TranscriptFetchRequestedMessage is the wire shape of transcript prefetch
// events published by the reel domain.
type TranscriptFetchRequestedMessage struct {
	URL    string `json:"url"`
	UserID string `json:"userId"`
}
