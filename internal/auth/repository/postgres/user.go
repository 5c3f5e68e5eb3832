package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"repurpose-srv/internal/auth/repository"
	"repurpose-srv/internal/model"
)

// CreateUser - Insert a new user record.
func (r *implRepository) CreateUser(ctx context.Context, opts repository.CreateUserOptions) (model.User, error) {
	now := time.Now()

	const query = `
		INSERT INTO users (id, email, created_at, updated_at)
		VALUES ($1, $2, $3, $3)`
	if _, err := r.db.ExecContext(ctx, query, opts.ID, opts.Email, now); err != nil {
		r.l.Errorf(ctx, "auth.repository.postgres.CreateUser: Failed to insert user: %v", err)
		return model.User{}, repository.ErrUserCreateFailed
	}

	return model.User{
		ID:        opts.ID,
		Email:     opts.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// GetUserByID - Get user by primary key.
func (r *implRepository) GetUserByID(ctx context.Context, id string) (model.User, error) {
	const query = `
		SELECT id, email,
		       COALESCE(supadata_api_key_enc, ''),
		       COALESCE(apify_api_key_enc, ''),
		       created_at, updated_at
		FROM users
		WHERE id = $1`
	return r.scanUser(ctx, r.db.QueryRowContext(ctx, query, id), "GetUserByID")
}

// GetUserByEmail - Get user by email.
func (r *implRepository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	const query = `
		SELECT id, email,
		       COALESCE(supadata_api_key_enc, ''),
		       COALESCE(apify_api_key_enc, ''),
		       created_at, updated_at
		FROM users
		WHERE email = $1`
	return r.scanUser(ctx, r.db.QueryRowContext(ctx, query, email), "GetUserByEmail")
}

// UpdateUserKeys - Store provider API keys, leaving nil fields untouched.
func (r *implRepository) UpdateUserKeys(ctx context.Context, opts repository.UpdateUserKeysOptions) error {
	const query = `
		UPDATE users
		SET supadata_api_key_enc = COALESCE($2, supadata_api_key_enc),
		    apify_api_key_enc = COALESCE($3, apify_api_key_enc),
		    updated_at = $4
		WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, opts.UserID, opts.SupadataAPIKeyEnc, opts.ApifyAPIKeyEnc, time.Now())
	if err != nil {
		r.l.Errorf(ctx, "auth.repository.postgres.UpdateUserKeys: Failed to update user: %v", err)
		return repository.ErrUserUpdateFailed
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "auth.repository.postgres.UpdateUserKeys: Failed to read affected rows: %v", err)
		return repository.ErrUserUpdateFailed
	}
	if affected == 0 {
		return repository.ErrUserNotFound
	}
	return nil
}

func (r *implRepository) scanUser(ctx context.Context, row *sql.Row, op string) (model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.SupadataAPIKeyEnc,
		&user.ApifyAPIKeyEnc,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, repository.ErrUserNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "auth.repository.postgres.%s: Failed to scan user: %v", op, err)
		return model.User{}, err
	}
	return user, nil
}
