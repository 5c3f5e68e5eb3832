package supadata

import (
	"time"

	"repurpose-srv/internal/model"
	pkghttp "repurpose-srv/pkg/http"
)

const (
	// BaseURL is the Supadata transcript API root.
	BaseURL = "https://api.supadata.ai/v1"

	// RequestTimeout bounds a single transcript request.
	RequestTimeout = 60 * time.Second
)

// Job statuses returned while polling.
const (
	JobStatusQueued    = "queued"
	JobStatusActive    = "active"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// SupadataConfig holds the configuration for the Supadata client.
type SupadataConfig struct {
	APIKey  string
	BaseURL string
}

// supadataImpl implements ISupadata.
type supadataImpl struct {
	apiKey     string
	baseURL    string
	httpClient pkghttp.IClient
}

// Result is a transcript response or an async job handle. JobID is set when
// the provider deferred the work; Status is set when polling.
type Result struct {
	JobID      string
	Status     string
	Error      string
	Transcript *model.Transcript
}

// IsAsyncJob reports whether the provider deferred the transcript to a job.
func (r *Result) IsAsyncJob() bool {
	return r.JobID != ""
}

// apiResponse mirrors the provider's wire shape for both sync and async
// responses and for job polling.
type apiResponse struct {
	JobID          string                   `json:"jobId"`
	Status         string                   `json:"status"`
	Error          string                   `json:"error"`
	Content        *model.TranscriptContent `json:"content"`
	Lang           string                   `json:"lang"`
	AvailableLangs []string                 `json:"availableLangs"`
	Chunks         []model.TranscriptChunk  `json:"chunks"`
}

// apiError mirrors the provider's error body.
type apiError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
