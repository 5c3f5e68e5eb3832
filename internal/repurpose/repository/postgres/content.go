package postgres

import (
	"context"
	"time"

	"github.com/lib/pq"

	"repurpose-srv/internal/model"
	"repurpose-srv/internal/repurpose/repository"
	"repurpose-srv/pkg/paginator"
)

// CreateContent - Insert one generated rewrite for a user.
func (r *implRepository) CreateContent(ctx context.Context, opts repository.CreateContentOptions) (model.RepurposedContent, error) {
	now := time.Now()

	const query = `
		INSERT INTO repurposed_content (
			id, user_id, original_reel_id, goal, target_platform, tone,
			visual_preference, target_language, generated_script, generated_caption,
			suggested_hashtags, visual_suggestions, duration, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecContext(ctx, query,
		opts.ID, opts.UserID, opts.OriginalReelID, opts.Goal, opts.TargetPlatform, opts.Tone,
		opts.VisualPreference, opts.TargetLanguage, opts.GeneratedScript, opts.GeneratedCaption,
		pq.Array(opts.SuggestedHashtags), pq.Array(opts.VisualSuggestions), opts.Duration,
		now,
	)
	if err != nil {
		r.l.Errorf(ctx, "repurpose.repository.postgres.CreateContent: Failed to insert content: %v", err)
		return model.RepurposedContent{}, repository.ErrContentCreateFailed
	}

	return model.RepurposedContent{
		ID:                opts.ID,
		UserID:            opts.UserID,
		OriginalReelID:    opts.OriginalReelID,
		Goal:              opts.Goal,
		TargetPlatform:    opts.TargetPlatform,
		Tone:              opts.Tone,
		VisualPreference:  opts.VisualPreference,
		TargetLanguage:    opts.TargetLanguage,
		GeneratedScript:   opts.GeneratedScript,
		GeneratedCaption:  opts.GeneratedCaption,
		SuggestedHashtags: opts.SuggestedHashtags,
		VisualSuggestions: opts.VisualSuggestions,
		Duration:          opts.Duration,
		CreatedAt:         now,
	}, nil
}

// ListContents - List a user's generated content, newest first, with pagination.
func (r *implRepository) ListContents(ctx context.Context, opts repository.ListContentsOptions) ([]model.RepurposedContent, paginator.Paginator, error) {
	opts.PagQuery.Adjust()

	var total int64
	const countQuery = `SELECT COUNT(*) FROM repurposed_content WHERE user_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, opts.UserID).Scan(&total); err != nil {
		r.l.Errorf(ctx, "repurpose.repository.postgres.ListContents: Failed to count contents: %v", err)
		return nil, paginator.Paginator{}, err
	}

	const query = `
		SELECT id, user_id, original_reel_id, goal, target_platform, tone,
		       visual_preference, target_language, generated_script, generated_caption,
		       suggested_hashtags, visual_suggestions, duration, created_at
		FROM repurposed_content
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, opts.UserID, opts.PagQuery.Limit, opts.PagQuery.Offset())
	if err != nil {
		r.l.Errorf(ctx, "repurpose.repository.postgres.ListContents: Failed to query contents: %v", err)
		return nil, paginator.Paginator{}, err
	}
	defer rows.Close()

	contents := make([]model.RepurposedContent, 0, opts.PagQuery.Limit)
	for rows.Next() {
		var content model.RepurposedContent
		if err := rows.Scan(
			&content.ID, &content.UserID, &content.OriginalReelID, &content.Goal, &content.TargetPlatform, &content.Tone,
			&content.VisualPreference, &content.TargetLanguage, &content.GeneratedScript, &content.GeneratedCaption,
			pq.Array(&content.SuggestedHashtags), pq.Array(&content.VisualSuggestions), &content.Duration,
			&content.CreatedAt,
		); err != nil {
			r.l.Errorf(ctx, "repurpose.repository.postgres.ListContents: Failed to scan content: %v", err)
			return nil, paginator.Paginator{}, err
		}
		contents = append(contents, content)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "repurpose.repository.postgres.ListContents: Rows iteration failed: %v", err)
		return nil, paginator.Paginator{}, err
	}

	return contents, paginator.Paginator{
		Total:       total,
		Count:       int64(len(contents)),
		PerPage:     opts.PagQuery.Limit,
		CurrentPage: opts.PagQuery.Page,
	}, nil
}
