package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"repurpose-srv/internal/auth"
	"repurpose-srv/internal/auth/repository"
	"repurpose-srv/internal/model"
	"repurpose-srv/pkg/email"
	"repurpose-srv/pkg/encrypter"
	"repurpose-srv/pkg/jwt"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Info(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Warn(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Error(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Fatal(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...interface{}) {}

type stubUserRepo struct {
	byEmail map[string]model.User
	byID    map[string]model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byEmail: make(map[string]model.User),
		byID:    make(map[string]model.User),
	}
}

func (s *stubUserRepo) CreateUser(ctx context.Context, opts repository.CreateUserOptions) (model.User, error) {
	user := model.User{ID: opts.ID, Email: opts.Email, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	s.byEmail[user.Email] = user
	s.byID[user.ID] = user
	return user, nil
}

func (s *stubUserRepo) GetUserByID(ctx context.Context, id string) (model.User, error) {
	user, ok := s.byID[id]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

func (s *stubUserRepo) GetUserByEmail(ctx context.Context, addr string) (model.User, error) {
	user, ok := s.byEmail[addr]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

func (s *stubUserRepo) UpdateUserKeys(ctx context.Context, opts repository.UpdateUserKeysOptions) error {
	user, ok := s.byID[opts.UserID]
	if !ok {
		return repository.ErrUserNotFound
	}
	if opts.SupadataAPIKeyEnc != nil {
		user.SupadataAPIKeyEnc = *opts.SupadataAPIKeyEnc
	}
	if opts.ApifyAPIKeyEnc != nil {
		user.ApifyAPIKeyEnc = *opts.ApifyAPIKeyEnc
	}
	s.byID[user.ID] = user
	s.byEmail[user.Email] = user
	return nil
}

type stubOTPRepo struct {
	codes map[string]string
}

func newStubOTPRepo() *stubOTPRepo {
	return &stubOTPRepo{codes: make(map[string]string)}
}

func (s *stubOTPRepo) SetCode(ctx context.Context, opts repository.SetCodeOptions) error {
	s.codes[opts.Email] = opts.Code
	return nil
}

func (s *stubOTPRepo) GetCode(ctx context.Context, addr string) (string, error) {
	code, ok := s.codes[addr]
	if !ok {
		return "", repository.ErrCodeNotFound
	}
	return code, nil
}

func (s *stubOTPRepo) DeleteCode(ctx context.Context, addr string) error {
	delete(s.codes, addr)
	return nil
}

type stubSender struct {
	sent []email.Email
	err  error
}

func (s *stubSender) Send(ctx context.Context, e email.Email) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, e)
	return nil
}

type fixture struct {
	uc       auth.UseCase
	userRepo *stubUserRepo
	otpRepo  *stubOTPRepo
	sender   *stubSender
	jwtMgr   *jwt.Manager
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	jwtMgr, err := jwt.New(jwt.Config{
		SecretKey: "0123456789abcdef0123456789abcdef",
		Issuer:    "repurpose-srv",
		Audience:  []string{"repurpose-dashboard"},
		TTL:       time.Hour,
	})
	if err != nil {
		t.Fatalf("failed to build jwt manager: %v", err)
	}

	userRepo := newStubUserRepo()
	otpRepo := newStubOTPRepo()
	sender := &stubSender{}
	enc := encrypter.New("0123456789abcdef0123456789abcdef")

	return fixture{
		uc:       New(nopLogger{}, userRepo, otpRepo, sender, jwtMgr, enc),
		userRepo: userRepo,
		otpRepo:  otpRepo,
		sender:   sender,
		jwtMgr:   jwtMgr,
	}
}

func TestRequestCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.uc.RequestCode(ctx, auth.RequestCodeInput{Email: "User@Example.com "}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	code, ok := f.otpRepo.codes["user@example.com"]
	if !ok || len(code) != 6 {
		t.Errorf("expected 6-digit code stored under normalized email, got %q", code)
	}
	if len(f.sender.sent) != 1 || f.sender.sent[0].Recipient != "user@example.com" {
		t.Errorf("expected one email to user@example.com, got %+v", f.sender.sent)
	}
}

func TestRequestCodeInvalidEmail(t *testing.T) {
	f := newFixture(t)

	for _, addr := range []string{"", "no-at-sign", "@host", "user@"} {
		if err := f.uc.RequestCode(context.Background(), auth.RequestCodeInput{Email: addr}); !errors.Is(err, auth.ErrInvalidEmail) {
			t.Errorf("email %q: expected ErrInvalidEmail, got %v", addr, err)
		}
	}
}

func TestVerifyCodeCreatesUserAndToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.uc.RequestCode(ctx, auth.RequestCodeInput{Email: "user@example.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	code := f.otpRepo.codes["user@example.com"]

	o, err := f.uc.VerifyCode(ctx, auth.VerifyCodeInput{Email: "user@example.com", Code: code})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.User.Email != "user@example.com" || o.User.ID == "" {
		t.Errorf("unexpected user: %+v", o.User)
	}

	payload, err := f.jwtMgr.Verify(o.Token)
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if payload.UserID != o.User.ID || payload.Email != "user@example.com" {
		t.Errorf("unexpected payload: %+v", payload)
	}

	// code is single-use
	if _, err := f.uc.VerifyCode(ctx, auth.VerifyCodeInput{Email: "user@example.com", Code: code}); !errors.Is(err, auth.ErrInvalidCode) {
		t.Errorf("expected ErrInvalidCode on reuse, got %v", err)
	}
}

func TestVerifyCodeReusesExistingUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	existing, _ := f.userRepo.CreateUser(ctx, repository.CreateUserOptions{ID: "u1", Email: "user@example.com"})
	f.otpRepo.codes["user@example.com"] = "123456"

	o, err := f.uc.VerifyCode(ctx, auth.VerifyCodeInput{Email: "user@example.com", Code: "123456"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.User.ID != existing.ID {
		t.Errorf("expected existing user %q, got %q", existing.ID, o.User.ID)
	}
}

func TestVerifyCodeWrongCode(t *testing.T) {
	f := newFixture(t)
	f.otpRepo.codes["user@example.com"] = "123456"

	_, err := f.uc.VerifyCode(context.Background(), auth.VerifyCodeInput{Email: "user@example.com", Code: "654321"})
	if !errors.Is(err, auth.ErrInvalidCode) {
		t.Errorf("expected ErrInvalidCode, got %v", err)
	}
}

func TestUpdateKeysEncryptsAtRest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, _ := f.userRepo.CreateUser(ctx, repository.CreateUserOptions{ID: "u1", Email: "user@example.com"})
	sc := model.Scope{UserID: user.ID}

	apifyKey := "apify_api_secret"
	if err := f.uc.UpdateKeys(ctx, sc, auth.UpdateKeysInput{ApifyAPIKey: &apifyKey}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := f.userRepo.byID["u1"].ApifyAPIKeyEnc
	if stored == "" || stored == apifyKey {
		t.Errorf("key should be stored encrypted, got %q", stored)
	}
	if f.userRepo.byID["u1"].SupadataAPIKeyEnc != "" {
		t.Error("supadata key should be untouched")
	}

	o, err := f.uc.Me(ctx, sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !o.HasApifyKey || o.HasSupadataKey {
		t.Errorf("unexpected key flags: %+v", o)
	}
}

func TestUpdateKeysRequiresAtLeastOne(t *testing.T) {
	f := newFixture(t)

	err := f.uc.UpdateKeys(context.Background(), model.Scope{UserID: "u1"}, auth.UpdateKeysInput{})
	if !errors.Is(err, auth.ErrNoKeysProvided) {
		t.Errorf("expected ErrNoKeysProvided, got %v", err)
	}
}

func TestMeUnknownUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Me(context.Background(), model.Scope{UserID: "missing"})
	if !errors.Is(err, auth.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
