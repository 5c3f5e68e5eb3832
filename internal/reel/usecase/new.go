package usecase

import (
	authRepo "repurpose-srv/internal/auth/repository"
	"repurpose-srv/internal/reel"
	"repurpose-srv/internal/reel/repository"
	"repurpose-srv/pkg/apify"
	"repurpose-srv/pkg/encrypter"
	"repurpose-srv/pkg/kafka"
	"repurpose-srv/pkg/log"
)

type implUseCase struct {
	l         log.Logger
	apify     apify.IApify
	repo      repository.PostgresRepository
	userRepo  authRepo.UserRepository
	encrypter encrypter.Encrypter
	producer  kafka.IProducer
}

var _ reel.UseCase = &implUseCase{}

// New - Factory
func New(
	l log.Logger,
	apifyClient apify.IApify,
	repo repository.PostgresRepository,
	userRepo authRepo.UserRepository,
	enc encrypter.Encrypter,
	producer kafka.IProducer,
) reel.UseCase {
	return &implUseCase{
		l:         l,
		apify:     apifyClient,
		repo:      repo,
		userRepo:  userRepo,
		encrypter: enc,
		producer:  producer,
	}
}
