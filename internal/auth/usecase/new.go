package usecase

import (
	"repurpose-srv/internal/auth"
	"repurpose-srv/internal/auth/repository"
	"repurpose-srv/pkg/email"
	"repurpose-srv/pkg/encrypter"
	"repurpose-srv/pkg/jwt"
	"repurpose-srv/pkg/log"
)

type implUseCase struct {
	l          log.Logger
	userRepo   repository.UserRepository
	otpRepo    repository.OTPRepository
	sender     email.ISender
	jwtManager *jwt.Manager
	encrypter  encrypter.Encrypter
}

var _ auth.UseCase = &implUseCase{}

// New - Factory
func New(
	l log.Logger,
	userRepo repository.UserRepository,
	otpRepo repository.OTPRepository,
	sender email.ISender,
	jwtManager *jwt.Manager,
	enc encrypter.Encrypter,
) auth.UseCase {
	return &implUseCase{
		l:          l,
		userRepo:   userRepo,
		otpRepo:    otpRepo,
		sender:     sender,
		jwtManager: jwtManager,
		encrypter:  enc,
	}
}
