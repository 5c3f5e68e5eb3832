package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"repurpose-srv/internal/model"
	"repurpose-srv/internal/repurpose"
	"repurpose-srv/internal/repurpose/repository"
	"repurpose-srv/pkg/openai"
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

type stubOpenAI struct {
	response string
	err      error
	lastReq  openai.ChatRequest
}

func (s *stubOpenAI) ChatCompletion(ctx context.Context, req openai.ChatRequest) (string, error) {
	s.lastReq = req
	return s.response, s.err
}

type stubContentRepo struct {
	created   []repository.CreateContentOptions
	createErr error
	listErr   error
}

func (s *stubContentRepo) CreateContent(ctx context.Context, opts repository.CreateContentOptions) (model.RepurposedContent, error) {
	if s.createErr != nil {
		return model.RepurposedContent{}, s.createErr
	}
	s.created = append(s.created, opts)
	return model.RepurposedContent{
		ID:                opts.ID,
		UserID:            opts.UserID,
		Goal:              opts.Goal,
		TargetPlatform:    opts.TargetPlatform,
		GeneratedScript:   opts.GeneratedScript,
		GeneratedCaption:  opts.GeneratedCaption,
		SuggestedHashtags: opts.SuggestedHashtags,
		VisualSuggestions: opts.VisualSuggestions,
		Duration:          opts.Duration,
	}, nil
}

func (s *stubContentRepo) ListContents(ctx context.Context, opts repository.ListContentsOptions) ([]model.RepurposedContent, paginator.Paginator, error) {
	if s.listErr != nil {
		return nil, paginator.Paginator{}, s.listErr
	}
	contents := make([]model.RepurposedContent, 0, len(s.created))
	for _, c := range s.created {
		if c.UserID == opts.UserID {
			contents = append(contents, model.RepurposedContent{ID: c.ID, UserID: c.UserID})
		}
	}
	return contents, paginator.Paginator{Total: int64(len(contents)), Count: int64(len(contents))}, nil
}

func validGenerateInput() repurpose.GenerateInput {
	return repurpose.GenerateInput{
		Goal:               repurpose.GoalExtractMessage,
		TargetPlatform:     "linkedin",
		Tone:               "educational",
		VisualPreference:   repurpose.VisualBRollIdeas,
		OriginalReelID:     "reel-1",
		OriginalTranscript: "how I grew my newsletter to 10k subscribers",
		OriginalCaption:    "growth story",
		OriginalHashtags:   []string{"growth", "newsletter"},
	}
}

func TestGenerate_Validation(t *testing.T) {
	tests := map[string]func(*repurpose.GenerateInput){
		"missing goal":              func(in *repurpose.GenerateInput) { in.Goal = "" },
		"missing platform":          func(in *repurpose.GenerateInput) { in.TargetPlatform = "" },
		"missing tone":              func(in *repurpose.GenerateInput) { in.Tone = "" },
		"missing visual preference": func(in *repurpose.GenerateInput) { in.VisualPreference = "" },
		"missing transcript":        func(in *repurpose.GenerateInput) { in.OriginalTranscript = "  " },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			uc := New(nopLogger{}, &stubOpenAI{}, &stubContentRepo{})
			input := validGenerateInput()
			mutate(&input)

			_, err := uc.Generate(context.Background(), model.Scope{UserID: "u1"}, input)
			if !errors.Is(err, repurpose.ErrMissingFields) {
				t.Errorf("got %v, want ErrMissingFields", err)
			}
		})
	}
}

func TestGenerate_UnknownPlatform(t *testing.T) {
	uc := New(nopLogger{}, &stubOpenAI{}, &stubContentRepo{})
	input := validGenerateInput()
	input.TargetPlatform = "myspace"

	_, err := uc.Generate(context.Background(), model.Scope{UserID: "u1"}, input)
	if !errors.Is(err, repurpose.ErrUnknownPlatform) {
		t.Errorf("got %v, want ErrUnknownPlatform", err)
	}
}

func TestGenerate_ParsesCompletionAndStores(t *testing.T) {
	client := &stubOpenAI{
		response: "Here is your content:\n" +
			`{"script":"new script","caption":"new caption","hashtags":["growth","career"],` +
			`"duration":"45 seconds","visualSuggestions":["office b-roll","typing closeup"]}`,
	}
	repo := &stubContentRepo{}
	uc := New(nopLogger{}, client, repo)

	o, err := uc.Generate(context.Background(), model.Scope{UserID: "u1"}, validGenerateInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if o.Content.GeneratedScript != "new script" {
		t.Errorf("got script %q, want %q", o.Content.GeneratedScript, "new script")
	}
	if o.Content.GeneratedCaption != "new caption" {
		t.Errorf("got caption %q, want %q", o.Content.GeneratedCaption, "new caption")
	}
	if len(o.Content.SuggestedHashtags) != 2 || o.Content.SuggestedHashtags[0] != "growth" {
		t.Errorf("got hashtags %v, want [growth career]", o.Content.SuggestedHashtags)
	}
	if o.Content.Duration != "45 seconds" {
		t.Errorf("got duration %q, want %q", o.Content.Duration, "45 seconds")
	}
	if len(repo.created) != 1 {
		t.Fatalf("got %d stored contents, want 1", len(repo.created))
	}
	if repo.created[0].UserID != "u1" {
		t.Errorf("got stored user %q, want u1", repo.created[0].UserID)
	}

	if client.lastReq.Model != openai.ModelGPT4 {
		t.Errorf("got model %q, want %q", client.lastReq.Model, openai.ModelGPT4)
	}
	if client.lastReq.Temperature != 0.7 || client.lastReq.MaxTokens != 2000 {
		t.Errorf("got temperature %v maxTokens %d, want 0.7 and 2000",
			client.lastReq.Temperature, client.lastReq.MaxTokens)
	}
}

func TestGenerate_PromptContents(t *testing.T) {
	client := &stubOpenAI{response: `{"script":"x"}`}
	uc := New(nopLogger{}, client, &stubContentRepo{})

	if _, err := uc.Generate(context.Background(), model.Scope{UserID: "u1"}, validGenerateInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	system := client.lastReq.Messages[0].Content
	for _, want := range []string{
		"Platform: LinkedIn",
		"Caption Limit: 3000 characters",
		"Hashtag Limit: 5 hashtags",
		"Goal: Extract the key message",
		"Visual: Suggest 5-7 B-roll shot ideas",
	} {
		if !strings.Contains(system, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}

	user := client.lastReq.Messages[1].Content
	if !strings.Contains(user, "#growth #newsletter") {
		t.Errorf("user prompt missing hashtags: %q", user)
	}
	if !strings.Contains(user, "Original Caption:\ngrowth story") {
		t.Errorf("user prompt missing caption: %q", user)
	}
}

func TestGenerate_FallbackOnUnparseableCompletion(t *testing.T) {
	client := &stubOpenAI{response: "sorry, I can only answer in prose"}
	uc := New(nopLogger{}, client, &stubContentRepo{})

	o, err := uc.Generate(context.Background(), model.Scope{UserID: "u1"}, validGenerateInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if o.Content.GeneratedScript != client.response {
		t.Errorf("got script %q, want raw completion", o.Content.GeneratedScript)
	}
	if o.Content.GeneratedCaption != "" {
		t.Errorf("got caption %q, want empty", o.Content.GeneratedCaption)
	}
	if o.Content.SuggestedHashtags == nil || len(o.Content.SuggestedHashtags) != 0 {
		t.Errorf("got hashtags %v, want empty slice", o.Content.SuggestedHashtags)
	}
}

func TestGenerate_StoreFailureNotFatal(t *testing.T) {
	client := &stubOpenAI{response: `{"script":"kept","caption":"c"}`}
	repo := &stubContentRepo{createErr: repository.ErrContentCreateFailed}
	uc := New(nopLogger{}, client, repo)

	o, err := uc.Generate(context.Background(), model.Scope{UserID: "u1"}, validGenerateInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Content.GeneratedScript != "kept" {
		t.Errorf("got script %q, want kept", o.Content.GeneratedScript)
	}
	if o.Content.ID == "" || o.Content.CreatedAt.IsZero() {
		t.Errorf("fallback content missing id or timestamp: %+v", o.Content)
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	client := &stubOpenAI{err: errors.New("rate limited")}
	uc := New(nopLogger{}, client, &stubContentRepo{})

	_, err := uc.Generate(context.Background(), model.Scope{UserID: "u1"}, validGenerateInput())
	if !errors.Is(err, repurpose.ErrGenerationFailed) {
		t.Errorf("got %v, want ErrGenerationFailed", err)
	}
}

func TestList_ScopedToCaller(t *testing.T) {
	repo := &stubContentRepo{}
	uc := New(nopLogger{}, &stubOpenAI{response: `{"script":"s"}`}, repo)

	if _, err := uc.Generate(context.Background(), model.Scope{UserID: "u1"}, validGenerateInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	o, err := uc.List(context.Background(), model.Scope{UserID: "u1"}, repurpose.ListInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(o.Contents) != 1 {
		t.Errorf("got %d contents, want 1", len(o.Contents))
	}

	other, err := uc.List(context.Background(), model.Scope{UserID: "u2"}, repurpose.ListInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(other.Contents) != 0 {
		t.Errorf("got %d contents for another user, want 0", len(other.Contents))
	}
}

func TestTranslate(t *testing.T) {
	t.Run("maps language code and counts runes", func(t *testing.T) {
		client := &stubOpenAI{response: "hola mundo"}
		uc := New(nopLogger{}, client, &stubContentRepo{})

		o, err := uc.Translate(context.Background(), model.Scope{UserID: "u1"}, repurpose.TranslateInput{
			Text:           "hello world",
			TargetLanguage: "es",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if o.TranslatedText != "hola mundo" {
			t.Errorf("got %q, want hola mundo", o.TranslatedText)
		}
		if o.OriginalLength != 11 || o.TranslatedLength != 10 {
			t.Errorf("got lengths %d/%d, want 11/10", o.OriginalLength, o.TranslatedLength)
		}
		if client.lastReq.Model != openai.ModelGPT35Turbo {
			t.Errorf("got model %q, want %q", client.lastReq.Model, openai.ModelGPT35Turbo)
		}
		if !strings.Contains(client.lastReq.Messages[0].Content, "Translate the following text to Spanish.") {
			t.Errorf("system prompt missing language name: %q", client.lastReq.Messages[0].Content)
		}
	})

	t.Run("unknown code passes through", func(t *testing.T) {
		client := &stubOpenAI{response: "ok"}
		uc := New(nopLogger{}, client, &stubContentRepo{})

		if _, err := uc.Translate(context.Background(), model.Scope{UserID: "u1"}, repurpose.TranslateInput{
			Text:           "hello",
			TargetLanguage: "sw",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(client.lastReq.Messages[0].Content, "Translate the following text to sw.") {
			t.Errorf("system prompt should carry the raw code: %q", client.lastReq.Messages[0].Content)
		}
	})

	t.Run("missing text or language", func(t *testing.T) {
		uc := New(nopLogger{}, &stubOpenAI{}, &stubContentRepo{})

		if _, err := uc.Translate(context.Background(), model.Scope{}, repurpose.TranslateInput{Text: " ", TargetLanguage: "es"}); !errors.Is(err, repurpose.ErrTextRequired) {
			t.Errorf("got %v, want ErrTextRequired", err)
		}
		if _, err := uc.Translate(context.Background(), model.Scope{}, repurpose.TranslateInput{Text: "hi"}); !errors.Is(err, repurpose.ErrTextRequired) {
			t.Errorf("got %v, want ErrTextRequired", err)
		}
	})

	t.Run("provider error", func(t *testing.T) {
		uc := New(nopLogger{}, &stubOpenAI{err: errors.New("boom")}, &stubContentRepo{})

		_, err := uc.Translate(context.Background(), model.Scope{}, repurpose.TranslateInput{Text: "hi", TargetLanguage: "fr"})
		if !errors.Is(err, repurpose.ErrTranslationFailed) {
			t.Errorf("got %v, want ErrTranslationFailed", err)
		}
	})
}
