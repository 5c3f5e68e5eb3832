package repository

import (
	"context"

	"repurpose-srv/internal/model"
)

//go:generate mockery --name UserRepository
type UserRepository interface {
	CreateUser(ctx context.Context, opts CreateUserOptions) (model.User, error)
	GetUserByID(ctx context.Context, id string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	UpdateUserKeys(ctx context.Context, opts UpdateUserKeysOptions) error
}

//go:generate mockery --name OTPRepository
type OTPRepository interface {
	SetCode(ctx context.Context, opts SetCodeOptions) error
	GetCode(ctx context.Context, email string) (string, error)
	DeleteCode(ctx context.Context, email string) error
}
