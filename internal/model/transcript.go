package model

import (
	"encoding/json"
	"strings"
	"time"
)

// TranscriptChunk is one timed fragment of a transcript.
type TranscriptChunk struct {
	Text     string  `json:"text"`
	Offset   float64 `json:"offset"`
	Duration float64 `json:"duration"`
}

// TranscriptContent is the union the transcript provider returns: either a
// single plain-text string or an ordered chunk list. Exactly one variant is
// set after decoding.
type TranscriptContent struct {
	Plain  string
	Chunks []TranscriptChunk
}

// UnmarshalJSON decodes either variant.
func (c *TranscriptContent) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '[' {
		return json.Unmarshal(b, &c.Chunks)
	}
	return json.Unmarshal(b, &c.Plain)
}

// MarshalJSON re-encodes whichever variant is set, chunks taking precedence.
func (c TranscriptContent) MarshalJSON() ([]byte, error) {
	if c.Chunks != nil {
		return json.Marshal(c.Chunks)
	}
	return json.Marshal(c.Plain)
}

// Text normalizes the content to flat text: the plain string as-is, or chunk
// texts joined with single spaces.
func (c TranscriptContent) Text() string {
	if c.Chunks != nil {
		parts := make([]string, 0, len(c.Chunks))
		for _, chunk := range c.Chunks {
			parts = append(parts, chunk.Text)
		}
		return strings.Join(parts, " ")
	}
	return c.Plain
}

// Transcript is the transcript payload attached to a reel.
type Transcript struct {
	Content        *TranscriptContent `json:"content,omitempty"`
	Lang           string             `json:"lang,omitempty"`
	AvailableLangs []string           `json:"availableLangs,omitempty"`
	Chunks         []TranscriptChunk  `json:"chunks,omitempty"`
}

// Text returns the normalized transcript text, or "" when there is none.
// A transcript with no textual content is treated as absent by callers.
func (t *Transcript) Text() string {
	if t == nil {
		return ""
	}
	if t.Content != nil {
		if s := t.Content.Text(); s != "" {
			return s
		}
	}
	if len(t.Chunks) > 0 {
		parts := make([]string, 0, len(t.Chunks))
		for _, chunk := range t.Chunks {
			parts = append(parts, chunk.Text)
		}
		return strings.Join(parts, " ")
	}
	return ""
}

// StoredTranscript is a transcript persisted for a user.
type StoredTranscript struct {
	ID        string
	UserID    string
	URL       string
	Kind      string // single | profile
	Content   string
	Lang      string
	CreatedAt time.Time
}
