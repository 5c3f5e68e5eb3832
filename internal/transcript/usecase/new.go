package usecase

import (
	authRepo "repurpose-srv/internal/auth/repository"
	"repurpose-srv/internal/transcript"
	"repurpose-srv/internal/transcript/repository"
	"repurpose-srv/pkg/encrypter"
	"repurpose-srv/pkg/log"
	"repurpose-srv/pkg/supadata"
)

type implUseCase struct {
	l         log.Logger
	supadata  supadata.ISupadata
	cacheRepo repository.RedisRepository
	repo      repository.PostgresRepository
	userRepo  authRepo.UserRepository
	encrypter encrypter.Encrypter
}

var _ transcript.UseCase = &implUseCase{}

// New - Factory
func New(
	l log.Logger,
	supadataClient supadata.ISupadata,
	cacheRepo repository.RedisRepository,
	repo repository.PostgresRepository,
	userRepo authRepo.UserRepository,
	enc encrypter.Encrypter,
) transcript.UseCase {
	return &implUseCase{
		l:         l,
		supadata:  supadataClient,
		cacheRepo: cacheRepo,
		repo:      repo,
		userRepo:  userRepo,
		encrypter: enc,
	}
}
