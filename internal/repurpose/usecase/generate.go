package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"repurpose-srv/internal/model"
	"repurpose-srv/internal/repurpose"
	"repurpose-srv/internal/repurpose/repository"
	"repurpose-srv/pkg/openai"
)

// generatedContent mirrors the JSON object the completion is asked to return.
type generatedContent struct {
	Script            string   `json:"script"`
	Caption           string   `json:"caption"`
	Hashtags          []string `json:"hashtags"`
	Duration          string   `json:"duration"`
	VisualSuggestions []string `json:"visualSuggestions"`
}

// Generate rewrites the reel content through a chat completion and stores the
// result. Storage failures degrade the user's library, not the response.
func (uc *implUseCase) Generate(ctx context.Context, sc model.Scope, input repurpose.GenerateInput) (repurpose.GenerateOutput, error) {
	if input.Goal == "" || input.TargetPlatform == "" || input.Tone == "" ||
		input.VisualPreference == "" || strings.TrimSpace(input.OriginalTranscript) == "" {
		return repurpose.GenerateOutput{}, repurpose.ErrMissingFields
	}

	platform, ok := repurpose.PlatformConfigs[input.TargetPlatform]
	if !ok {
		return repurpose.GenerateOutput{}, repurpose.ErrUnknownPlatform
	}

	raw, err := uc.openai.ChatCompletion(ctx, openai.ChatRequest{
		Model: openai.ModelGPT4,
		Messages: []openai.Message{
			{Role: "system", Content: buildSystemPrompt(input, platform)},
			{Role: "user", Content: buildUserPrompt(input)},
		},
		Temperature: 0.7,
		MaxTokens:   2000,
	})
	if err != nil {
		uc.l.Errorf(ctx, "repurpose.usecase.Generate: ChatCompletion failed: %v", err)
		return repurpose.GenerateOutput{}, repurpose.ErrGenerationFailed
	}
	if raw == "" {
		uc.l.Errorf(ctx, "repurpose.usecase.Generate: Empty completion")
		return repurpose.GenerateOutput{}, repurpose.ErrGenerationFailed
	}

	parsed := uc.parseGeneratedContent(ctx, raw)

	opts := repository.CreateContentOptions{
		ID:                uuid.New().String(),
		UserID:            sc.UserID,
		OriginalReelID:    input.OriginalReelID,
		Goal:              input.Goal,
		TargetPlatform:    input.TargetPlatform,
		Tone:              input.Tone,
		VisualPreference:  input.VisualPreference,
		TargetLanguage:    input.TargetLanguage,
		GeneratedScript:   parsed.Script,
		GeneratedCaption:  parsed.Caption,
		SuggestedHashtags: parsed.Hashtags,
		VisualSuggestions: parsed.VisualSuggestions,
		Duration:          parsed.Duration,
	}

	content, err := uc.repo.CreateContent(ctx, opts)
	if err != nil {
		uc.l.Warnf(ctx, "repurpose.usecase.Generate: CreateContent failed: %v", err)
		content = model.RepurposedContent{
			ID:                opts.ID,
			UserID:            opts.UserID,
			OriginalReelID:    opts.OriginalReelID,
			Goal:              opts.Goal,
			TargetPlatform:    opts.TargetPlatform,
			Tone:              opts.Tone,
			VisualPreference:  opts.VisualPreference,
			TargetLanguage:    opts.TargetLanguage,
			GeneratedScript:   opts.GeneratedScript,
			GeneratedCaption:  opts.GeneratedCaption,
			SuggestedHashtags: opts.SuggestedHashtags,
			VisualSuggestions: opts.VisualSuggestions,
			Duration:          opts.Duration,
			CreatedAt:         time.Now(),
		}
	}

	return repurpose.GenerateOutput{Content: content}, nil
}

// parseGeneratedContent extracts the JSON object from a completion. Models
// wrap the object in prose or code fences, so the parse spans from the first
// opening brace to the last closing one. An unparseable completion falls back
// to the raw text as the script.
func (uc *implUseCase) parseGeneratedContent(ctx context.Context, raw string) generatedContent {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		var parsed generatedContent
		if err := json.Unmarshal([]byte(raw[start:end+1]), &parsed); err == nil {
			if parsed.Hashtags == nil {
				parsed.Hashtags = []string{}
			}
			if parsed.VisualSuggestions == nil {
				parsed.VisualSuggestions = []string{}
			}
			return parsed
		}
	}

	uc.l.Warnf(ctx, "repurpose.usecase.parseGeneratedContent: No JSON object in completion, falling back to raw text")
	return generatedContent{
		Script:            raw,
		Hashtags:          []string{},
		VisualSuggestions: []string{},
	}
}

// List returns the caller's stored generated content.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input repurpose.ListInput) (repurpose.ListOutput, error) {
	contents, pag, err := uc.repo.ListContents(ctx, repository.ListContentsOptions{
		UserID:   sc.UserID,
		PagQuery: input.PagQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "repurpose.usecase.List: ListContents failed: %v", err)
		return repurpose.ListOutput{}, err
	}

	return repurpose.ListOutput{
		Contents:   contents,
		Pagination: pag,
	}, nil
}
