package usecase

import (
	"context"
	"errors"
	"testing"

	authRepo "repurpose-srv/internal/auth/repository"
	"repurpose-srv/internal/model"
	"repurpose-srv/internal/transcript"
	"repurpose-srv/internal/transcript/repository"
	"repurpose-srv/pkg/encrypter"
	"repurpose-srv/pkg/supadata"
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

type stubSupadata struct {
	result *supadata.Result
	err    error
	calls  int
}

func (s *stubSupadata) FetchTranscript(ctx context.Context, videoURL string) (*supadata.Result, error) {
	s.calls++
	return s.result, s.err
}

func (s *stubSupadata) FetchJobStatus(ctx context.Context, jobID string) (*supadata.Result, error) {
	return s.result, s.err
}

func (s *stubSupadata) WithAPIKey(apiKey string) supadata.ISupadata { return s }

type stubCacheRepo struct {
	cached map[string]model.Transcript
}

func newStubCacheRepo() *stubCacheRepo {
	return &stubCacheRepo{cached: make(map[string]model.Transcript)}
}

func (s *stubCacheRepo) SetTranscript(ctx context.Context, opts repository.SetTranscriptOptions) error {
	s.cached[opts.URL] = opts.Transcript
	return nil
}

func (s *stubCacheRepo) GetTranscript(ctx context.Context, url string) (model.Transcript, error) {
	t, ok := s.cached[url]
	if !ok {
		return model.Transcript{}, repository.ErrTranscriptNotFound
	}
	return t, nil
}

type stubPGRepo struct {
	created []repository.CreateTranscriptOptions
}

func (s *stubPGRepo) CreateTranscript(ctx context.Context, opts repository.CreateTranscriptOptions) (model.StoredTranscript, error) {
	s.created = append(s.created, opts)
	return model.StoredTranscript{ID: opts.ID}, nil
}

func (s *stubPGRepo) ListTranscripts(ctx context.Context, opts repository.ListTranscriptsOptions) ([]model.StoredTranscript, error) {
	return nil, nil
}

type stubUserRepo struct{}

func (stubUserRepo) CreateUser(ctx context.Context, opts authRepo.CreateUserOptions) (model.User, error) {
	return model.User{}, authRepo.ErrUserNotFound
}

func (stubUserRepo) GetUserByID(ctx context.Context, id string) (model.User, error) {
	return model.User{}, authRepo.ErrUserNotFound
}

func (stubUserRepo) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return model.User{}, authRepo.ErrUserNotFound
}

func (stubUserRepo) UpdateUserKeys(ctx context.Context, opts authRepo.UpdateUserKeysOptions) error {
	return nil
}

type fixture struct {
	uc       transcript.UseCase
	provider *stubSupadata
	cache    *stubCacheRepo
	pg       *stubPGRepo
}

func newFixture() fixture {
	provider := &stubSupadata{}
	cache := newStubCacheRepo()
	pg := &stubPGRepo{}
	enc := encrypter.New("0123456789abcdef0123456789abcdef")

	return fixture{
		uc:       New(nopLogger{}, provider, cache, pg, stubUserRepo{}, enc),
		provider: provider,
		cache:    cache,
		pg:       pg,
	}
}

func plainTranscript(text string) *model.Transcript {
	return &model.Transcript{
		Content: &model.TranscriptContent{Plain: text},
		Lang:    "en",
	}
}

const videoURL = "https://www.instagram.com/reel/abc123"

func TestGetTranscriptSync(t *testing.T) {
	f := newFixture()
	f.provider.result = &supadata.Result{Transcript: plainTranscript("hello world")}
	sc := model.Scope{UserID: "u1"}

	o, err := f.uc.GetTranscript(context.Background(), sc, transcript.GetTranscriptInput{URL: videoURL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Async {
		t.Error("expected a sync result")
	}
	if o.Transcript.Text() != "hello world" {
		t.Errorf("unexpected transcript: %q", o.Transcript.Text())
	}

	// fetched transcript is cached and persisted
	if _, ok := f.cache.cached[videoURL]; !ok {
		t.Error("expected transcript in cache")
	}
	if len(f.pg.created) != 1 || f.pg.created[0].Kind != transcript.KindSingle {
		t.Errorf("expected one persisted single transcript, got %+v", f.pg.created)
	}
	if f.pg.created[0].Content != "hello world" || f.pg.created[0].Lang != "en" {
		t.Errorf("unexpected persisted content: %+v", f.pg.created[0])
	}
}

func TestGetTranscriptServedFromCache(t *testing.T) {
	f := newFixture()
	f.cache.cached[videoURL] = *plainTranscript("cached text")
	sc := model.Scope{UserID: "u1"}

	o, err := f.uc.GetTranscript(context.Background(), sc, transcript.GetTranscriptInput{URL: videoURL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !o.FromCache || o.Transcript.Text() != "cached text" {
		t.Errorf("expected cache hit, got %+v", o)
	}
	if f.provider.calls != 0 {
		t.Errorf("provider should not be called on cache hit, got %d calls", f.provider.calls)
	}
}

func TestGetTranscriptAsyncJob(t *testing.T) {
	f := newFixture()
	f.provider.result = &supadata.Result{JobID: "job-42"}
	sc := model.Scope{UserID: "u1"}

	o, err := f.uc.GetTranscript(context.Background(), sc, transcript.GetTranscriptInput{URL: videoURL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !o.Async || o.JobID != "job-42" {
		t.Errorf("expected async job handle, got %+v", o)
	}
	if len(f.pg.created) != 0 {
		t.Error("async jobs should not be persisted")
	}
}

func TestGetTranscriptProviderErrors(t *testing.T) {
	cases := []struct {
		name     string
		provider error
		want     error
	}{
		{"rate limited", supadata.ErrRateLimited, transcript.ErrRateLimited},
		{"not found", supadata.ErrNotFound, transcript.ErrNotFound},
		{"invalid input", supadata.ErrInvalidInput, transcript.ErrInvalidInput},
		{"unauthorized", supadata.ErrUnauthorized, transcript.ErrUpstreamUnavailable},
		{"unavailable", supadata.ErrUnavailable, transcript.ErrUpstreamUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			f.provider.err = tc.provider

			_, err := f.uc.GetTranscript(context.Background(), model.Scope{UserID: "u1"}, transcript.GetTranscriptInput{URL: videoURL})
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestGetJobStatus(t *testing.T) {
	f := newFixture()
	f.provider.result = &supadata.Result{
		Status:     supadata.JobStatusCompleted,
		Transcript: plainTranscript("done"),
	}

	o, err := f.uc.GetJobStatus(context.Background(), model.Scope{UserID: "u1"}, transcript.GetJobStatusInput{JobID: "job-42"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Status != supadata.JobStatusCompleted || o.Transcript == nil {
		t.Errorf("unexpected output: %+v", o)
	}
}

func TestGetJobStatusRequiresID(t *testing.T) {
	f := newFixture()

	_, err := f.uc.GetJobStatus(context.Background(), model.Scope{UserID: "u1"}, transcript.GetJobStatusInput{})
	if !errors.Is(err, transcript.ErrJobIDRequired) {
		t.Errorf("expected ErrJobIDRequired, got %v", err)
	}
}

func TestPrefetchStoresProfileKind(t *testing.T) {
	f := newFixture()
	f.provider.result = &supadata.Result{Transcript: plainTranscript("background fetch")}

	if err := f.uc.Prefetch(context.Background(), model.Scope{UserID: "u1"}, transcript.GetTranscriptInput{URL: videoURL}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.pg.created) != 1 || f.pg.created[0].Kind != transcript.KindProfile {
		t.Errorf("expected one profile transcript, got %+v", f.pg.created)
	}
}

func TestPrefetchSkipsWhenCached(t *testing.T) {
	f := newFixture()
	f.cache.cached[videoURL] = *plainTranscript("already here")

	if err := f.uc.Prefetch(context.Background(), model.Scope{UserID: "u1"}, transcript.GetTranscriptInput{URL: videoURL}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.provider.calls != 0 {
		t.Errorf("provider should not be called for cached url, got %d calls", f.provider.calls)
	}
}

func TestPrefetchSkipsAsyncJobs(t *testing.T) {
	f := newFixture()
	f.provider.result = &supadata.Result{JobID: "job-9"}

	if err := f.uc.Prefetch(context.Background(), model.Scope{UserID: "u1"}, transcript.GetTranscriptInput{URL: videoURL}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.pg.created) != 0 {
		t.Error("async jobs should not be persisted by prefetch")
	}
}
