package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"repurpose-srv/internal/model"
	"repurpose-srv/internal/transcript/repository"
	pkgRedis "repurpose-srv/pkg/redis"
)

// transcriptTTL keeps fetched transcripts warm for a day. Transcripts are
// immutable per video, so a long TTL is safe.
const transcriptTTL = 24 * time.Hour

func transcriptKey(url string) string {
	return fmt.Sprintf("transcript:%s", url)
}

func (r *implCacheRepository) SetTranscript(ctx context.Context, opts repository.SetTranscriptOptions) error {
	data, err := json.Marshal(opts.Transcript)
	if err != nil {
		return err
	}
	if err := r.redis.Set(ctx, transcriptKey(opts.URL), data, transcriptTTL); err != nil {
		r.l.Errorf(ctx, "transcript.repository.redis.SetTranscript: Failed to save to cache: %v", err)
		return err
	}
	return nil
}

func (r *implCacheRepository) GetTranscript(ctx context.Context, url string) (model.Transcript, error) {
	data, err := r.redis.Get(ctx, transcriptKey(url))
	if err != nil {
		if errors.Is(err, pkgRedis.ErrNotFound) {
			return model.Transcript{}, repository.ErrTranscriptNotFound
		}
		return model.Transcript{}, err
	}

	var t model.Transcript
	if err := json.Unmarshal([]byte(data), &t); err != nil {
		r.l.Errorf(ctx, "transcript.repository.redis.GetTranscript: Failed to unmarshal transcript: %v", err)
		return model.Transcript{}, err
	}
	return t, nil
}
