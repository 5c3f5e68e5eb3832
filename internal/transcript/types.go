package transcript

import "repurpose-srv/internal/model"

// Kinds of transcript persistence: single on-demand fetches vs background
// profile prefetches.
const (
	KindSingle  = "single"
	KindProfile = "profile"
)

type GetTranscriptInput struct {
	URL string
}

// GetTranscriptOutput is either an immediate transcript or an async job
// handle. Async is set when the provider deferred the work.
type GetTranscriptOutput struct {
	Async      bool
	JobID      string
	Transcript model.Transcript
	FromCache  bool
}

type GetJobStatusInput struct {
	JobID string
}

type GetJobStatusOutput struct {
	Status     string
	Error      string
	Transcript *model.Transcript
}
