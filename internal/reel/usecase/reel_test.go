package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	authRepo "repurpose-srv/internal/auth/repository"
	"repurpose-srv/internal/model"
	"repurpose-srv/internal/reel"
	"repurpose-srv/internal/reel/repository"
	"repurpose-srv/pkg/apify"
	"repurpose-srv/pkg/encrypter"
	"repurpose-srv/pkg/paginator"
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

type stubApify struct {
	reels    []model.Reel
	metadata *model.Reel
	err      error
	lastKey  string
}

func (s *stubApify) FetchProfileReels(ctx context.Context, username string) ([]model.Reel, error) {
	return s.reels, s.err
}

func (s *stubApify) FetchReelMetadata(ctx context.Context, reelURL string) (*model.Reel, error) {
	return s.metadata, s.err
}

func (s *stubApify) WithAPIKey(apiKey string) apify.IApify {
	if apiKey == "" {
		return s
	}
	s.lastKey = apiKey
	return s
}

type stubReelRepo struct {
	saved   []model.SavedReel
	deleted []string
}

func (s *stubReelRepo) CreateSavedReel(ctx context.Context, opts repository.CreateSavedReelOptions) (model.SavedReel, error) {
	saved := model.SavedReel{ID: opts.ID, UserID: opts.UserID, URL: opts.URL, Caption: opts.Caption}
	s.saved = append(s.saved, saved)
	return saved, nil
}

func (s *stubReelRepo) ListSavedReels(ctx context.Context, opts repository.ListSavedReelsOptions) ([]model.SavedReel, paginator.Paginator, error) {
	return s.saved, paginator.Paginator{
		Total:       int64(len(s.saved)),
		Count:       int64(len(s.saved)),
		PerPage:     opts.PagQuery.Limit,
		CurrentPage: opts.PagQuery.Page,
	}, nil
}

func (s *stubReelRepo) DeleteSavedReel(ctx context.Context, opts repository.DeleteSavedReelOptions) error {
	for _, saved := range s.saved {
		if saved.ID == opts.ID && saved.UserID == opts.UserID {
			s.deleted = append(s.deleted, opts.ID)
			return nil
		}
	}
	return repository.ErrSavedReelNotFound
}

type stubUserRepo struct {
	user model.User
	err  error
}

func (s *stubUserRepo) CreateUser(ctx context.Context, opts authRepo.CreateUserOptions) (model.User, error) {
	return s.user, s.err
}

func (s *stubUserRepo) GetUserByID(ctx context.Context, id string) (model.User, error) {
	if s.err != nil {
		return model.User{}, s.err
	}
	return s.user, nil
}

func (s *stubUserRepo) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return s.user, s.err
}

func (s *stubUserRepo) UpdateUserKeys(ctx context.Context, opts authRepo.UpdateUserKeysOptions) error {
	return s.err
}

type stubProducer struct {
	published [][]byte
	err       error
}

func (s *stubProducer) Publish(key, value []byte) error {
	if s.err != nil {
		return s.err
	}
	s.published = append(s.published, value)
	return nil
}

func (s *stubProducer) Close() error       { return nil }
func (s *stubProducer) HealthCheck() error { return nil }

type fixture struct {
	uc       reel.UseCase
	apify    *stubApify
	repo     *stubReelRepo
	userRepo *stubUserRepo
	producer *stubProducer
}

func newFixture() fixture {
	apifyClient := &stubApify{}
	repo := &stubReelRepo{}
	userRepo := &stubUserRepo{err: authRepo.ErrUserNotFound}
	producer := &stubProducer{}
	enc := encrypter.New("0123456789abcdef0123456789abcdef")

	return fixture{
		uc:       New(nopLogger{}, apifyClient, repo, userRepo, enc, producer),
		apify:    apifyClient,
		repo:     repo,
		userRepo: userRepo,
		producer: producer,
	}
}

func makeReels(n int) []model.Reel {
	reels := make([]model.Reel, 0, n)
	for i := 0; i < n; i++ {
		reels = append(reels, model.Reel{
			ID:  string(rune('a' + i)),
			URL: "https://www.instagram.com/reel/" + string(rune('a'+i)),
		})
	}
	return reels
}

func TestGetTopReels(t *testing.T) {
	f := newFixture()
	f.apify.reels = makeReels(8)

	o, err := f.uc.GetTopReels(context.Background(), model.Scope{UserID: "u1"}, reel.GetTopReelsInput{
		ProfileURL: "https://www.instagram.com/creator_1/",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if o.Username != "creator_1" {
		t.Errorf("expected username creator_1, got %q", o.Username)
	}
	if len(o.TopReels) != reel.TopReelsLimit {
		t.Errorf("expected %d top reels, got %d", reel.TopReelsLimit, len(o.TopReels))
	}
	if o.TotalAnalyzed != 8 {
		t.Errorf("expected totalAnalyzed 8, got %d", o.TotalAnalyzed)
	}
}

func TestGetTopReelsPublishesTranscriptRequests(t *testing.T) {
	f := newFixture()
	f.apify.reels = makeReels(3)

	_, err := f.uc.GetTopReels(context.Background(), model.Scope{UserID: "u1"}, reel.GetTopReelsInput{
		ProfileURL: "https://www.instagram.com/creator_1/",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.producer.published) != 3 {
		t.Fatalf("expected 3 transcript events, got %d", len(f.producer.published))
	}
	var event model.TranscriptFetchRequestedEvent
	if err := json.Unmarshal(f.producer.published[0], &event); err != nil {
		t.Fatalf("event is not valid JSON: %v", err)
	}
	if event.UserID != "u1" || event.URL == "" {
		t.Errorf("unexpected event payload: %+v", event)
	}
}

func TestGetTopReelsPublishFailureNotFatal(t *testing.T) {
	f := newFixture()
	f.apify.reels = makeReels(2)
	f.producer.err = errors.New("broker down")

	if _, err := f.uc.GetTopReels(context.Background(), model.Scope{UserID: "u1"}, reel.GetTopReelsInput{
		ProfileURL: "https://www.instagram.com/creator_1/",
	}); err != nil {
		t.Errorf("publish failure should not fail listing: %v", err)
	}
}

func TestGetTopReelsInvalidURL(t *testing.T) {
	f := newFixture()

	_, err := f.uc.GetTopReels(context.Background(), model.Scope{UserID: "u1"}, reel.GetTopReelsInput{
		ProfileURL: "https://example.com/not-instagram",
	})
	if !errors.Is(err, reel.ErrInvalidProfileURL) {
		t.Errorf("expected ErrInvalidProfileURL, got %v", err)
	}
}

func TestGetTopReelsUsesStoredKey(t *testing.T) {
	f := newFixture()
	enc := encrypter.New("0123456789abcdef0123456789abcdef")
	keyEnc, err := enc.Encrypt("user-apify-key")
	if err != nil {
		t.Fatalf("failed to encrypt key: %v", err)
	}
	f.userRepo.err = nil
	f.userRepo.user = model.User{ID: "u1", ApifyAPIKeyEnc: keyEnc}
	f.apify.reels = makeReels(1)

	if _, err := f.uc.GetTopReels(context.Background(), model.Scope{UserID: "u1"}, reel.GetTopReelsInput{
		ProfileURL: "https://www.instagram.com/creator_1/",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.apify.lastKey != "user-apify-key" {
		t.Errorf("expected decrypted user key to be applied, got %q", f.apify.lastKey)
	}
}

func TestGetReelMetadata(t *testing.T) {
	f := newFixture()
	f.apify.metadata = &model.Reel{ID: "r1", URL: "https://www.instagram.com/reel/r1"}

	got, err := f.uc.GetReelMetadata(context.Background(), model.Scope{UserID: "u1"}, reel.GetReelMetadataInput{
		URL: "https://www.instagram.com/reel/r1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "r1" {
		t.Errorf("unexpected reel: %+v", got)
	}
}

func TestGetReelMetadataNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.uc.GetReelMetadata(context.Background(), model.Scope{UserID: "u1"}, reel.GetReelMetadataInput{
		URL: "https://www.instagram.com/reel/missing",
	})
	if !errors.Is(err, reel.ErrReelNotFound) {
		t.Errorf("expected ErrReelNotFound, got %v", err)
	}
}

func TestGetReelMetadataRequiresURL(t *testing.T) {
	f := newFixture()

	_, err := f.uc.GetReelMetadata(context.Background(), model.Scope{UserID: "u1"}, reel.GetReelMetadataInput{})
	if !errors.Is(err, reel.ErrURLRequired) {
		t.Errorf("expected ErrURLRequired, got %v", err)
	}
}

func TestSaveAndDeleteReel(t *testing.T) {
	f := newFixture()
	sc := model.Scope{UserID: "u1"}
	ctx := context.Background()

	saved, err := f.uc.SaveReel(ctx, sc, reel.SaveReelInput{
		URL:     "https://www.instagram.com/reel/r1",
		Caption: "keep this one",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID == "" || saved.UserID != "u1" {
		t.Errorf("unexpected saved reel: %+v", saved)
	}

	if err := f.uc.DeleteSavedReel(ctx, sc, reel.DeleteSavedReelInput{ID: saved.ID}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err = f.uc.DeleteSavedReel(ctx, model.Scope{UserID: "someone-else"}, reel.DeleteSavedReelInput{ID: saved.ID})
	if !errors.Is(err, reel.ErrSavedReelNotFound) {
		t.Errorf("expected ErrSavedReelNotFound for foreign user, got %v", err)
	}
}
