package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"repurpose-srv/internal/model"
	"repurpose-srv/internal/repurpose"
	"repurpose-srv/pkg/openai"
)

// languageNames maps ISO codes to the names used in the translation prompt.
// Unknown codes pass through verbatim.
var languageNames = map[string]string{
	"es": "Spanish",
	"ar": "Arabic",
	"fr": "French",
	"de": "German",
	"pt": "Portuguese",
	"hi": "Hindi",
	"kn": "Kannada",
	"te": "Telugu",
	"ta": "Tamil",
}

// Translate translates free text with the lighter chat model.
func (uc *implUseCase) Translate(ctx context.Context, sc model.Scope, input repurpose.TranslateInput) (repurpose.TranslateOutput, error) {
	if strings.TrimSpace(input.Text) == "" || input.TargetLanguage == "" {
		return repurpose.TranslateOutput{}, repurpose.ErrTextRequired
	}

	langName, ok := languageNames[input.TargetLanguage]
	if !ok {
		langName = input.TargetLanguage
	}

	translated, err := uc.openai.ChatCompletion(ctx, openai.ChatRequest{
		Model: openai.ModelGPT35Turbo,
		Messages: []openai.Message{
			{
				Role: "system",
				Content: fmt.Sprintf("You are a professional translator. Translate the following text to %s. "+
					"Only return the translated text, nothing else. Maintain the same tone and style.", langName),
			},
			{Role: "user", Content: input.Text},
		},
		Temperature: 0.3,
		MaxTokens:   2000,
	})
	if err != nil {
		uc.l.Errorf(ctx, "repurpose.usecase.Translate: ChatCompletion failed: %v", err)
		return repurpose.TranslateOutput{}, repurpose.ErrTranslationFailed
	}

	return repurpose.TranslateOutput{
		TranslatedText:   translated,
		TargetLanguage:   input.TargetLanguage,
		OriginalLength:   utf8.RuneCountInString(input.Text),
		TranslatedLength: utf8.RuneCountInString(translated),
	}, nil
}
