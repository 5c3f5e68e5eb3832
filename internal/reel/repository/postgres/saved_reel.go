package postgres

import (
	"context"
	"time"

	"github.com/lib/pq"

	"repurpose-srv/internal/model"
	"repurpose-srv/internal/reel/repository"
	"repurpose-srv/pkg/paginator"
)

// CreateSavedReel - Insert a bookmarked reel for a user.
func (r *implRepository) CreateSavedReel(ctx context.Context, opts repository.CreateSavedReelOptions) (model.SavedReel, error) {
	now := time.Now()

	const query = `
		INSERT INTO saved_reels (
			id, user_id, reel_id, url, caption, thumbnail,
			likes_count, views_count, comments_count, hashtags,
			music_title, posted_time, username, transcript, transcript_lang,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.db.ExecContext(ctx, query,
		opts.ID, opts.UserID, opts.ReelID, opts.URL, opts.Caption, opts.Thumbnail,
		opts.LikesCount, opts.ViewsCount, opts.CommentsCount, pq.Array(opts.Hashtags),
		opts.MusicTitle, opts.PostedTime, opts.Username, opts.Transcript, opts.TranscriptLang,
		now,
	)
	if err != nil {
		r.l.Errorf(ctx, "reel.repository.postgres.CreateSavedReel: Failed to insert saved reel: %v", err)
		return model.SavedReel{}, repository.ErrSavedReelCreateFailed
	}

	return model.SavedReel{
		ID:             opts.ID,
		UserID:         opts.UserID,
		ReelID:         opts.ReelID,
		URL:            opts.URL,
		Caption:        opts.Caption,
		Thumbnail:      opts.Thumbnail,
		LikesCount:     opts.LikesCount,
		ViewsCount:     opts.ViewsCount,
		CommentsCount:  opts.CommentsCount,
		Hashtags:       opts.Hashtags,
		MusicTitle:     opts.MusicTitle,
		PostedTime:     opts.PostedTime,
		Username:       opts.Username,
		Transcript:     opts.Transcript,
		TranscriptLang: opts.TranscriptLang,
		CreatedAt:      now,
	}, nil
}

// ListSavedReels - List a user's bookmarks, newest first, with pagination.
func (r *implRepository) ListSavedReels(ctx context.Context, opts repository.ListSavedReelsOptions) ([]model.SavedReel, paginator.Paginator, error) {
	opts.PagQuery.Adjust()

	var total int64
	const countQuery = `SELECT COUNT(*) FROM saved_reels WHERE user_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, opts.UserID).Scan(&total); err != nil {
		r.l.Errorf(ctx, "reel.repository.postgres.ListSavedReels: Failed to count saved reels: %v", err)
		return nil, paginator.Paginator{}, err
	}

	const query = `
		SELECT id, user_id, reel_id, url, caption, thumbnail,
		       likes_count, views_count, comments_count, hashtags,
		       music_title, posted_time, username, transcript, transcript_lang,
		       created_at
		FROM saved_reels
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, opts.UserID, opts.PagQuery.Limit, opts.PagQuery.Offset())
	if err != nil {
		r.l.Errorf(ctx, "reel.repository.postgres.ListSavedReels: Failed to query saved reels: %v", err)
		return nil, paginator.Paginator{}, err
	}
	defer rows.Close()

	reels := make([]model.SavedReel, 0, opts.PagQuery.Limit)
	for rows.Next() {
		var saved model.SavedReel
		if err := rows.Scan(
			&saved.ID, &saved.UserID, &saved.ReelID, &saved.URL, &saved.Caption, &saved.Thumbnail,
			&saved.LikesCount, &saved.ViewsCount, &saved.CommentsCount, pq.Array(&saved.Hashtags),
			&saved.MusicTitle, &saved.PostedTime, &saved.Username, &saved.Transcript, &saved.TranscriptLang,
			&saved.CreatedAt,
		); err != nil {
			r.l.Errorf(ctx, "reel.repository.postgres.ListSavedReels: Failed to scan saved reel: %v", err)
			return nil, paginator.Paginator{}, err
		}
		reels = append(reels, saved)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "reel.repository.postgres.ListSavedReels: Rows iteration failed: %v", err)
		return nil, paginator.Paginator{}, err
	}

	return reels, paginator.Paginator{
		Total:       total,
		Count:       int64(len(reels)),
		PerPage:     opts.PagQuery.Limit,
		CurrentPage: opts.PagQuery.Page,
	}, nil
}

// DeleteSavedReel - Delete a user's bookmark by id.
func (r *implRepository) DeleteSavedReel(ctx context.Context, opts repository.DeleteSavedReelOptions) error {
	const query = `DELETE FROM saved_reels WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, opts.ID, opts.UserID)
	if err != nil {
		r.l.Errorf(ctx, "reel.repository.postgres.DeleteSavedReel: Failed to delete saved reel: %v", err)
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "reel.repository.postgres.DeleteSavedReel: Failed to read affected rows: %v", err)
		return err
	}
	if affected == 0 {
		return repository.ErrSavedReelNotFound
	}
	return nil
}
