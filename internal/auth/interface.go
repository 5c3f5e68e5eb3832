package auth

import (
	"context"

	"repurpose-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	RequestCode(ctx context.Context, input RequestCodeInput) error
	VerifyCode(ctx context.Context, input VerifyCodeInput) (VerifyCodeOutput, error)
	Me(ctx context.Context, sc model.Scope) (MeOutput, error)
	UpdateKeys(ctx context.Context, sc model.Scope, input UpdateKeysInput) error
}
