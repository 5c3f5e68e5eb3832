package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"

	"repurpose-srv/internal/model"
	"repurpose-srv/internal/reel"
	"repurpose-srv/internal/reel/repository"
	"repurpose-srv/pkg/apify"
)

// apifyForUser resolves the client for a request: the user's own key when
// one is stored, otherwise the configured default.
func (uc *implUseCase) apifyForUser(ctx context.Context, userID string) apify.IApify {
	if userID == "" {
		return uc.apify
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil || user.ApifyAPIKeyEnc == "" {
		return uc.apify
	}

	key, err := uc.encrypter.Decrypt(user.ApifyAPIKeyEnc)
	if err != nil {
		uc.l.Warnf(ctx, "reel.usecase.apifyForUser: Failed to decrypt apify key: %v", err)
		return uc.apify
	}
	return uc.apify.WithAPIKey(key)
}

func (uc *implUseCase) GetTopReels(ctx context.Context, sc model.Scope, input reel.GetTopReelsInput) (reel.GetTopReelsOutput, error) {
	username := apify.ExtractUsername(input.ProfileURL)
	if username == "" {
		return reel.GetTopReelsOutput{}, reel.ErrInvalidProfileURL
	}

	client := uc.apifyForUser(ctx, sc.UserID)
	reels, err := client.FetchProfileReels(ctx, username)
	if err != nil {
		uc.l.Errorf(ctx, "reel.usecase.GetTopReels: FetchProfileReels failed: %v", err)
		return reel.GetTopReelsOutput{}, reel.ErrScrapeFailed
	}

	top := reels
	if len(top) > reel.TopReelsLimit {
		top = top[:reel.TopReelsLimit]
	}

	uc.publishTranscriptRequests(ctx, sc.UserID, top)

	return reel.GetTopReelsOutput{
		Username:      username,
		ProfileURL:    input.ProfileURL,
		TopReels:      top,
		TotalAnalyzed: len(reels),
	}, nil
}

// publishTranscriptRequests queues background transcript prefetches for the
// listed reels. Publish failures are logged, not surfaced.
func (uc *implUseCase) publishTranscriptRequests(ctx context.Context, userID string, reels []model.Reel) {
	for _, item := range reels {
		if item.URL == "" {
			continue
		}
		payload, err := json.Marshal(model.TranscriptFetchRequestedEvent{
			URL:    item.URL,
			UserID: userID,
		})
		if err != nil {
			uc.l.Errorf(ctx, "reel.usecase.publishTranscriptRequests: Failed to marshal event: %v", err)
			continue
		}
		if err := uc.producer.Publish([]byte(item.ID), payload); err != nil {
			uc.l.Warnf(ctx, "reel.usecase.publishTranscriptRequests: Failed to publish event for %s: %v", item.URL, err)
		}
	}
}

func (uc *implUseCase) GetReelMetadata(ctx context.Context, sc model.Scope, input reel.GetReelMetadataInput) (model.Reel, error) {
	if strings.TrimSpace(input.URL) == "" {
		return model.Reel{}, reel.ErrURLRequired
	}

	client := uc.apifyForUser(ctx, sc.UserID)
	item, err := client.FetchReelMetadata(ctx, input.URL)
	if err != nil {
		uc.l.Errorf(ctx, "reel.usecase.GetReelMetadata: FetchReelMetadata failed: %v", err)
		return model.Reel{}, reel.ErrScrapeFailed
	}
	if item == nil {
		return model.Reel{}, reel.ErrReelNotFound
	}
	return *item, nil
}

func (uc *implUseCase) SaveReel(ctx context.Context, sc model.Scope, input reel.SaveReelInput) (model.SavedReel, error) {
	if strings.TrimSpace(input.URL) == "" {
		return model.SavedReel{}, reel.ErrURLRequired
	}

	return uc.repo.CreateSavedReel(ctx, repository.CreateSavedReelOptions{
		ID:             uuid.New().String(),
		UserID:         sc.UserID,
		ReelID:         input.ReelID,
		URL:            input.URL,
		Caption:        input.Caption,
		Thumbnail:      input.Thumbnail,
		LikesCount:     input.LikesCount,
		ViewsCount:     input.ViewsCount,
		CommentsCount:  input.CommentsCount,
		Hashtags:       input.Hashtags,
		MusicTitle:     input.MusicTitle,
		PostedTime:     input.PostedTime,
		Username:       input.Username,
		Transcript:     input.Transcript,
		TranscriptLang: input.TranscriptLang,
	})
}

func (uc *implUseCase) ListSavedReels(ctx context.Context, sc model.Scope, input reel.ListSavedReelsInput) (reel.ListSavedReelsOutput, error) {
	reels, pag, err := uc.repo.ListSavedReels(ctx, repository.ListSavedReelsOptions{
		UserID:   sc.UserID,
		PagQuery: input.PagQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "reel.usecase.ListSavedReels: Failed to list saved reels: %v", err)
		return reel.ListSavedReelsOutput{}, err
	}

	return reel.ListSavedReelsOutput{
		Reels:     reels,
		Paginator: pag,
	}, nil
}

func (uc *implUseCase) DeleteSavedReel(ctx context.Context, sc model.Scope, input reel.DeleteSavedReelInput) error {
	if strings.TrimSpace(input.ID) == "" {
		return reel.ErrSavedReelNotFound
	}

	err := uc.repo.DeleteSavedReel(ctx, repository.DeleteSavedReelOptions{
		ID:     input.ID,
		UserID: sc.UserID,
	})
	if errors.Is(err, repository.ErrSavedReelNotFound) {
		return reel.ErrSavedReelNotFound
	}
	return err
}
