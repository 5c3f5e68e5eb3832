package http

import (
	"repurpose-srv/internal/model"
	"repurpose-srv/internal/repurpose"
	"repurpose-srv/pkg/paginator"
	"repurpose-srv/pkg/util"
)

type generateReq struct {
	Goal             string `json:"goal" binding:"required"`
	TargetPlatform   string `json:"targetPlatform" binding:"required"`
	Tone             string `json:"tone" binding:"required"`
	VisualPreference string `json:"visualPreference" binding:"required"`
	TargetLanguage   string `json:"targetLanguage"`

	CustomInstructions string `json:"customInstructions"`

	OriginalReelID     string   `json:"originalReelId"`
	OriginalTranscript string   `json:"originalTranscript" binding:"required"`
	OriginalCaption    string   `json:"originalCaption"`
	OriginalHashtags   []string `json:"originalHashtags"`
}

func (r generateReq) toInput() repurpose.GenerateInput {
	return repurpose.GenerateInput{
		Goal:               r.Goal,
		TargetPlatform:     r.TargetPlatform,
		Tone:               r.Tone,
		VisualPreference:   r.VisualPreference,
		TargetLanguage:     r.TargetLanguage,
		CustomInstructions: r.CustomInstructions,
		OriginalReelID:     r.OriginalReelID,
		OriginalTranscript: r.OriginalTranscript,
		OriginalCaption:    r.OriginalCaption,
		OriginalHashtags:   r.OriginalHashtags,
	}
}

type generateResp struct {
	ID                string   `json:"id"`
	GeneratedScript   string   `json:"generatedScript"`
	GeneratedCaption  string   `json:"generatedCaption"`
	SuggestedHashtags []string `json:"suggestedHashtags"`
	Duration          string   `json:"duration"`
	VisualSuggestions []string `json:"visualSuggestions"`

	// Preference-specific aliases of visualSuggestions, populated for the
	// matching preference only.
	ThumbnailIdeas   []string `json:"thumbnailIdeas,omitempty"`
	BRollSuggestions []string `json:"bRollSuggestions,omitempty"`
	CarouselSlides   []string `json:"carouselSlides,omitempty"`
}

func (h *handler) newGenerateResp(o repurpose.GenerateOutput) generateResp {
	content := o.Content
	resp := generateResp{
		ID:                content.ID,
		GeneratedScript:   content.GeneratedScript,
		GeneratedCaption:  content.GeneratedCaption,
		SuggestedHashtags: content.SuggestedHashtags,
		Duration:          content.Duration,
		VisualSuggestions: content.VisualSuggestions,
	}

	switch content.VisualPreference {
	case repurpose.VisualThumbnails:
		resp.ThumbnailIdeas = content.VisualSuggestions
	case repurpose.VisualBRollIdeas:
		resp.BRollSuggestions = content.VisualSuggestions
	case repurpose.VisualCarouselPrompts:
		resp.CarouselSlides = content.VisualSuggestions
	}

	return resp
}

type listContentsReq struct {
	PagQuery paginator.PaginateQuery
}

func (r listContentsReq) toInput() repurpose.ListInput {
	return repurpose.ListInput{PagQuery: r.PagQuery}
}

type contentResp struct {
	ID                string   `json:"id"`
	OriginalReelID    string   `json:"originalReelId"`
	Goal              string   `json:"goal"`
	TargetPlatform    string   `json:"targetPlatform"`
	Tone              string   `json:"tone"`
	VisualPreference  string   `json:"visualPreference"`
	TargetLanguage    string   `json:"targetLanguage,omitempty"`
	GeneratedScript   string   `json:"generatedScript"`
	GeneratedCaption  string   `json:"generatedCaption"`
	SuggestedHashtags []string `json:"suggestedHashtags"`
	VisualSuggestions []string `json:"visualSuggestions"`
	Duration          string   `json:"duration"`
	CreatedAt         int64    `json:"createdAt"`
}

type listContentsResp struct {
	Contents   []contentResp               `json:"contents"`
	Pagination paginator.PaginatorResponse `json:"pagination"`
}

func (h *handler) newListContentsResp(o repurpose.ListOutput) listContentsResp {
	return listContentsResp{
		Contents: util.MapSlice(o.Contents, func(c model.RepurposedContent) contentResp {
			return contentResp{
				ID:                c.ID,
				OriginalReelID:    c.OriginalReelID,
				Goal:              c.Goal,
				TargetPlatform:    c.TargetPlatform,
				Tone:              c.Tone,
				VisualPreference:  c.VisualPreference,
				TargetLanguage:    c.TargetLanguage,
				GeneratedScript:   c.GeneratedScript,
				GeneratedCaption:  c.GeneratedCaption,
				SuggestedHashtags: c.SuggestedHashtags,
				VisualSuggestions: c.VisualSuggestions,
				Duration:          c.Duration,
				CreatedAt:         c.CreatedAt.UnixMilli(),
			}
		}),
		Pagination: o.Pagination.ToResponse(),
	}
}

type translateReq struct {
	Text           string `json:"text" binding:"required"`
	TargetLanguage string `json:"targetLanguage" binding:"required"`
}

func (r translateReq) toInput() repurpose.TranslateInput {
	return repurpose.TranslateInput{
		Text:           r.Text,
		TargetLanguage: r.TargetLanguage,
	}
}

type translateResp struct {
	TranslatedText   string `json:"translatedText"`
	TargetLanguage   string `json:"targetLanguage"`
	OriginalLength   int    `json:"originalLength"`
	TranslatedLength int    `json:"translatedLength"`
}

func (h *handler) newTranslateResp(o repurpose.TranslateOutput) translateResp {
	return translateResp{
		TranslatedText:   o.TranslatedText,
		TargetLanguage:   o.TargetLanguage,
		OriginalLength:   o.OriginalLength,
		TranslatedLength: o.TranslatedLength,
	}
}
