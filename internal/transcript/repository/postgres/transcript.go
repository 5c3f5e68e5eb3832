package postgres

import (
	"context"
	"time"

	"repurpose-srv/internal/model"
	"repurpose-srv/internal/transcript/repository"
)

// CreateTranscript - Persist a fetched transcript for a user.
func (r *implRepository) CreateTranscript(ctx context.Context, opts repository.CreateTranscriptOptions) (model.StoredTranscript, error) {
	now := time.Now()

	const query = `
		INSERT INTO transcripts (id, user_id, url, kind, content, lang, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.db.ExecContext(ctx, query,
		opts.ID, opts.UserID, opts.URL, opts.Kind, opts.Content, opts.Lang, now,
	); err != nil {
		r.l.Errorf(ctx, "transcript.repository.postgres.CreateTranscript: Failed to insert transcript: %v", err)
		return model.StoredTranscript{}, repository.ErrTranscriptCreateFailed
	}

	return model.StoredTranscript{
		ID:        opts.ID,
		UserID:    opts.UserID,
		URL:       opts.URL,
		Kind:      opts.Kind,
		Content:   opts.Content,
		Lang:      opts.Lang,
		CreatedAt: now,
	}, nil
}

// ListTranscripts - List a user's stored transcripts, optionally filtered by URL.
func (r *implRepository) ListTranscripts(ctx context.Context, opts repository.ListTranscriptsOptions) ([]model.StoredTranscript, error) {
	const query = `
		SELECT id, user_id, url, kind, content, lang, created_at
		FROM transcripts
		WHERE user_id = $1 AND ($2 = '' OR url = $2)
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, opts.UserID, opts.URL)
	if err != nil {
		r.l.Errorf(ctx, "transcript.repository.postgres.ListTranscripts: Failed to query transcripts: %v", err)
		return nil, err
	}
	defer rows.Close()

	var transcripts []model.StoredTranscript
	for rows.Next() {
		var t model.StoredTranscript
		if err := rows.Scan(&t.ID, &t.UserID, &t.URL, &t.Kind, &t.Content, &t.Lang, &t.CreatedAt); err != nil {
			r.l.Errorf(ctx, "transcript.repository.postgres.ListTranscripts: Failed to scan transcript: %v", err)
			return nil, err
		}
		transcripts = append(transcripts, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "transcript.repository.postgres.ListTranscripts: Rows iteration failed: %v", err)
		return nil, err
	}
	return transcripts, nil
}
