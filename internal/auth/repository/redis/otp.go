package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"repurpose-srv/internal/auth/repository"
	pkgRedis "repurpose-srv/pkg/redis"
)

func codeKey(email string) string {
	return fmt.Sprintf("auth:otp:%s", email)
}

func (r *implOTPRepository) SetCode(ctx context.Context, opts repository.SetCodeOptions) error {
	ttl := time.Until(opts.ExpiresAt)
	if ttl <= 0 {
		return repository.ErrCodeNotFound
	}
	if err := r.redis.Set(ctx, codeKey(opts.Email), []byte(opts.Code), ttl); err != nil {
		r.l.Errorf(ctx, "auth.repository.redis.SetCode: Failed to store code: %v", err)
		return err
	}
	return nil
}

func (r *implOTPRepository) GetCode(ctx context.Context, email string) (string, error) {
	code, err := r.redis.Get(ctx, codeKey(email))
	if err != nil {
		if errors.Is(err, pkgRedis.ErrNotFound) {
			return "", repository.ErrCodeNotFound
		}
		r.l.Errorf(ctx, "auth.repository.redis.GetCode: Failed to read code: %v", err)
		return "", err
	}
	return code, nil
}

func (r *implOTPRepository) DeleteCode(ctx context.Context, email string) error {
	if err := r.redis.Delete(ctx, codeKey(email)); err != nil {
		r.l.Errorf(ctx, "auth.repository.redis.DeleteCode: Failed to delete code: %v", err)
		return err
	}
	return nil
}
