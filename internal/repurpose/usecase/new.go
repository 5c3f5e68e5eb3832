package usecase

import (
	"repurpose-srv/internal/repurpose"
	"repurpose-srv/internal/repurpose/repository"
	"repurpose-srv/pkg/log"
	"repurpose-srv/pkg/openai"
)

type implUseCase struct {
	l      log.Logger
	openai openai.IOpenAI
	repo   repository.PostgresRepository
}

var _ repurpose.UseCase = &implUseCase{}

// New - Factory
func New(l log.Logger, openaiClient openai.IOpenAI, repo repository.PostgresRepository) repurpose.UseCase {
	return &implUseCase{
		l:      l,
		openai: openaiClient,
		repo:   repo,
	}
}
