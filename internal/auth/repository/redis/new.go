package redis

import (
	"repurpose-srv/internal/auth/repository"
	"repurpose-srv/pkg/log"
	pkgRedis "repurpose-srv/pkg/redis"
)

type implOTPRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger) repository.OTPRepository {
	return &implOTPRepository{
		redis: redis,
		l:     l,
	}
}
