package model

import (
	"encoding/json"
	"strconv"
	"time"
)

// FlexTimestamp is a posted-time value that upstream providers deliver either
// as an ISO-ish string or as a raw epoch number. It always holds the string
// form after decoding.
type FlexTimestamp string

// UnmarshalJSON accepts both string and numeric JSON values.
func (t *FlexTimestamp) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = FlexTimestamp(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*t = FlexTimestamp(n.String())
	return nil
}

// Time decodes the timestamp: RFC3339 and common ISO variants first, then
// integer epoch (milliseconds when the value is too large for seconds).
// Unzoned layouts are interpreted in the host's local timezone.
func (t FlexTimestamp) Time() (time.Time, bool) {
	s := string(t)
	if s == "" {
		return time.Time{}, false
	}

	zoned := []string{time.RFC3339Nano, time.RFC3339}
	for _, layout := range zoned {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed.Local(), true
		}
	}

	unzoned := []string{"2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}
	for _, layout := range unzoned {
		if parsed, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return parsed, true
		}
	}

	if epoch, err := strconv.ParseInt(s, 10, 64); err == nil {
		if epoch > 1e12 { // millisecond epoch
			return time.UnixMilli(epoch).Local(), true
		}
		return time.Unix(epoch, 0).Local(), true
	}

	return time.Time{}, false
}

// Reel is a single short-form video post with whatever metadata the listing
// provider returned. Counts default to 0 when absent; the analytics engine
// never mutates a Reel.
type Reel struct {
	ID            string        `json:"id"`
	URL           string        `json:"url"`
	Caption       string        `json:"caption,omitempty"`
	Thumbnail     string        `json:"thumbnail,omitempty"`
	LikesCount    int           `json:"likesCount,omitempty"`
	ViewsCount    int           `json:"viewsCount,omitempty"`
	CommentsCount int           `json:"commentsCount,omitempty"`
	Timestamp     FlexTimestamp `json:"timestamp,omitempty"`
	PostedTime    FlexTimestamp `json:"posted_time,omitempty"`
	VideoURL      string        `json:"videoUrl,omitempty"`
	Hashtags      []string      `json:"hashtags,omitempty"`
	MusicTitle    string        `json:"music_title,omitempty"`
	Transcript    *Transcript   `json:"transcript,omitempty"`
}

// EngagementScore is the unweighted likes+views+comments sum used as the
// common ranking currency across the analyses.
func (r Reel) EngagementScore() int {
	return r.LikesCount + r.ViewsCount + r.CommentsCount
}

// PostedAt returns the canonical posting time, preferring posted_time over
// timestamp when both are present.
func (r Reel) PostedAt() (time.Time, bool) {
	if ts, ok := r.PostedTime.Time(); ok {
		return ts, true
	}
	return r.Timestamp.Time()
}
