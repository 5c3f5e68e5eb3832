package redis

import (
	"repurpose-srv/internal/transcript/repository"
	"repurpose-srv/pkg/log"
	pkgRedis "repurpose-srv/pkg/redis"
)

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger) repository.RedisRepository {
	return &implCacheRepository{
		redis: redis,
		l:     l,
	}
}
