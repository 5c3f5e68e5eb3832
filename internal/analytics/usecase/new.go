package usecase

import (
	"repurpose-srv/internal/analytics"
	"repurpose-srv/internal/analytics/repository"
	"repurpose-srv/pkg/log"
)

type implUseCase struct {
	l    log.Logger
	repo repository.RedisRepository
}

var _ analytics.UseCase = &implUseCase{}

// New - Factory
func New(l log.Logger, repo repository.RedisRepository) analytics.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
