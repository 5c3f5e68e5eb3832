package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"repurpose-srv/internal/model"
	"repurpose-srv/internal/transcript"
	"repurpose-srv/internal/transcript/repository"
	"repurpose-srv/pkg/supadata"
)

// supadataForUser resolves the client for a request: the user's own key when
// one is stored, otherwise the configured default.
func (uc *implUseCase) supadataForUser(ctx context.Context, userID string) supadata.ISupadata {
	if userID == "" {
		return uc.supadata
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil || user.SupadataAPIKeyEnc == "" {
		return uc.supadata
	}

	key, err := uc.encrypter.Decrypt(user.SupadataAPIKeyEnc)
	if err != nil {
		uc.l.Warnf(ctx, "transcript.usecase.supadataForUser: Failed to decrypt supadata key: %v", err)
		return uc.supadata
	}
	return uc.supadata.WithAPIKey(key)
}

func (uc *implUseCase) GetTranscript(ctx context.Context, sc model.Scope, input transcript.GetTranscriptInput) (transcript.GetTranscriptOutput, error) {
	url := strings.TrimSpace(input.URL)
	if url == "" {
		return transcript.GetTranscriptOutput{}, transcript.ErrURLRequired
	}

	if cached, err := uc.cacheRepo.GetTranscript(ctx, url); err == nil {
		return transcript.GetTranscriptOutput{
			Transcript: cached,
			FromCache:  true,
		}, nil
	}

	client := uc.supadataForUser(ctx, sc.UserID)
	result, err := client.FetchTranscript(ctx, url)
	if err != nil {
		return transcript.GetTranscriptOutput{}, uc.mapProviderError(ctx, err)
	}

	if result.IsAsyncJob() {
		return transcript.GetTranscriptOutput{
			Async: true,
			JobID: result.JobID,
		}, nil
	}

	t := model.Transcript{}
	if result.Transcript != nil {
		t = *result.Transcript
	}
	uc.store(ctx, sc.UserID, url, transcript.KindSingle, t)

	return transcript.GetTranscriptOutput{Transcript: t}, nil
}

func (uc *implUseCase) GetJobStatus(ctx context.Context, sc model.Scope, input transcript.GetJobStatusInput) (transcript.GetJobStatusOutput, error) {
	jobID := strings.TrimSpace(input.JobID)
	if jobID == "" {
		return transcript.GetJobStatusOutput{}, transcript.ErrJobIDRequired
	}

	client := uc.supadataForUser(ctx, sc.UserID)
	result, err := client.FetchJobStatus(ctx, jobID)
	if err != nil {
		return transcript.GetJobStatusOutput{}, uc.mapProviderError(ctx, err)
	}

	return transcript.GetJobStatusOutput{
		Status:     result.Status,
		Error:      result.Error,
		Transcript: result.Transcript,
	}, nil
}

func (uc *implUseCase) Prefetch(ctx context.Context, sc model.Scope, input transcript.GetTranscriptInput) error {
	url := strings.TrimSpace(input.URL)
	if url == "" {
		return transcript.ErrURLRequired
	}

	if _, err := uc.cacheRepo.GetTranscript(ctx, url); err == nil {
		return nil
	}

	client := uc.supadataForUser(ctx, sc.UserID)
	result, err := client.FetchTranscript(ctx, url)
	if err != nil {
		return uc.mapProviderError(ctx, err)
	}
	if result.IsAsyncJob() || result.Transcript == nil {
		return nil
	}

	uc.store(ctx, sc.UserID, url, transcript.KindProfile, *result.Transcript)
	return nil
}

// store caches and persists a fetched transcript. Both writes are best
// effort; the transcript is already in hand.
func (uc *implUseCase) store(ctx context.Context, userID, url, kind string, t model.Transcript) {
	if err := uc.cacheRepo.SetTranscript(ctx, repository.SetTranscriptOptions{
		URL:        url,
		Transcript: t,
	}); err != nil {
		uc.l.Warnf(ctx, "transcript.usecase.store: Failed to cache transcript: %v", err)
	}

	if userID == "" {
		return
	}
	if _, err := uc.repo.CreateTranscript(ctx, repository.CreateTranscriptOptions{
		ID:      uuid.New().String(),
		UserID:  userID,
		URL:     url,
		Kind:    kind,
		Content: t.Text(),
		Lang:    t.Lang,
	}); err != nil {
		uc.l.Warnf(ctx, "transcript.usecase.store: Failed to persist transcript: %v", err)
	}
}

func (uc *implUseCase) mapProviderError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, supadata.ErrRateLimited):
		return transcript.ErrRateLimited
	case errors.Is(err, supadata.ErrNotFound):
		return transcript.ErrNotFound
	case errors.Is(err, supadata.ErrInvalidInput):
		return transcript.ErrInvalidInput
	case errors.Is(err, supadata.ErrUnauthorized):
		uc.l.Errorf(ctx, "transcript.usecase: Provider rejected the API key: %v", err)
		return transcript.ErrUpstreamUnavailable
	default:
		uc.l.Errorf(ctx, "transcript.usecase: Provider request failed: %v", err)
		return transcript.ErrUpstreamUnavailable
	}
}
