package transcript

import (
	"context"

	"repurpose-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	GetTranscript(ctx context.Context, sc model.Scope, input GetTranscriptInput) (GetTranscriptOutput, error)
	GetJobStatus(ctx context.Context, sc model.Scope, input GetJobStatusInput) (GetJobStatusOutput, error)
	// Prefetch fetches and stores a transcript in the background. Async jobs
	// are skipped rather than polled.
	Prefetch(ctx context.Context, sc model.Scope, input GetTranscriptInput) error
}
