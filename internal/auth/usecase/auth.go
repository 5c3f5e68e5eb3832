package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/google/uuid"

	"repurpose-srv/internal/auth"
	"repurpose-srv/internal/auth/repository"
	"repurpose-srv/internal/model"
	"repurpose-srv/pkg/email"
	"repurpose-srv/pkg/util"
)

func normalizeEmail(raw string) (string, error) {
	addr := strings.ToLower(strings.TrimSpace(raw))
	at := strings.Index(addr, "@")
	if at <= 0 || at == len(addr)-1 {
		return "", auth.ErrInvalidEmail
	}
	return addr, nil
}

func (uc *implUseCase) RequestCode(ctx context.Context, input auth.RequestCodeInput) error {
	addr, err := normalizeEmail(input.Email)
	if err != nil {
		return err
	}

	code, expiresAt := util.GenerateOTP()
	if err := uc.otpRepo.SetCode(ctx, repository.SetCodeOptions{
		Email:     addr,
		Code:      code,
		ExpiresAt: expiresAt,
	}); err != nil {
		uc.l.Errorf(ctx, "auth.usecase.RequestCode: Failed to store code: %v", err)
		return err
	}

	msg, err := email.NewEmail(ctx, email.EmailMeta{
		Recipient:    addr,
		TemplateType: email.MagicCodeTemplate,
	}, email.MagicCode{
		Email:         addr,
		Code:          code,
		CodeExpireMin: "10",
	})
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.RequestCode: Failed to render email: %v", err)
		return err
	}

	if err := uc.sender.Send(ctx, msg); err != nil {
		uc.l.Errorf(ctx, "auth.usecase.RequestCode: Failed to send email: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) VerifyCode(ctx context.Context, input auth.VerifyCodeInput) (auth.VerifyCodeOutput, error) {
	addr, err := normalizeEmail(input.Email)
	if err != nil {
		return auth.VerifyCodeOutput{}, err
	}
	if input.Code == "" {
		return auth.VerifyCodeOutput{}, auth.ErrCodeRequired
	}

	stored, err := uc.otpRepo.GetCode(ctx, addr)
	if err != nil {
		if errors.Is(err, repository.ErrCodeNotFound) {
			return auth.VerifyCodeOutput{}, auth.ErrInvalidCode
		}
		return auth.VerifyCodeOutput{}, err
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(input.Code)) != 1 {
		return auth.VerifyCodeOutput{}, auth.ErrInvalidCode
	}

	if err := uc.otpRepo.DeleteCode(ctx, addr); err != nil {
		uc.l.Warnf(ctx, "auth.usecase.VerifyCode: Failed to delete used code: %v", err)
	}

	user, err := uc.findOrCreateUser(ctx, addr)
	if err != nil {
		return auth.VerifyCodeOutput{}, err
	}

	token, err := uc.jwtManager.GenerateToken(user.ID, user.Email, "")
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.VerifyCode: Failed to sign token: %v", err)
		return auth.VerifyCodeOutput{}, err
	}

	return auth.VerifyCodeOutput{
		Token: token,
		User:  user,
	}, nil
}

func (uc *implUseCase) findOrCreateUser(ctx context.Context, addr string) (model.User, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, addr)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return model.User{}, err
	}

	return uc.userRepo.CreateUser(ctx, repository.CreateUserOptions{
		ID:    uuid.New().String(),
		Email: addr,
	})
}

func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (auth.MeOutput, error) {
	user, err := uc.userRepo.GetUserByID(ctx, sc.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return auth.MeOutput{}, auth.ErrUserNotFound
		}
		return auth.MeOutput{}, err
	}

	return auth.MeOutput{
		User:           user,
		HasSupadataKey: user.SupadataAPIKeyEnc != "",
		HasApifyKey:    user.ApifyAPIKeyEnc != "",
	}, nil
}

func (uc *implUseCase) UpdateKeys(ctx context.Context, sc model.Scope, input auth.UpdateKeysInput) error {
	if input.SupadataAPIKey == nil && input.ApifyAPIKey == nil {
		return auth.ErrNoKeysProvided
	}

	opts := repository.UpdateUserKeysOptions{UserID: sc.UserID}

	if input.SupadataAPIKey != nil {
		enc, err := uc.encryptKey(*input.SupadataAPIKey)
		if err != nil {
			uc.l.Errorf(ctx, "auth.usecase.UpdateKeys: Failed to encrypt supadata key: %v", err)
			return err
		}
		opts.SupadataAPIKeyEnc = &enc
	}
	if input.ApifyAPIKey != nil {
		enc, err := uc.encryptKey(*input.ApifyAPIKey)
		if err != nil {
			uc.l.Errorf(ctx, "auth.usecase.UpdateKeys: Failed to encrypt apify key: %v", err)
			return err
		}
		opts.ApifyAPIKeyEnc = &enc
	}

	if err := uc.userRepo.UpdateUserKeys(ctx, opts); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return auth.ErrUserNotFound
		}
		return err
	}
	return nil
}

// encryptKey stores empty input as empty, which clears the key.
func (uc *implUseCase) encryptKey(plain string) (string, error) {
	if plain == "" {
		return "", nil
	}
	return uc.encrypter.Encrypt(plain)
}
