package repurpose

import (
	"repurpose-srv/internal/model"
	"repurpose-srv/pkg/paginator"
)

// Repurposing goals.
const (
	GoalRepostLanguage  = "repost-language"
	GoalCreateVersion   = "create-version"
	GoalExtractMessage  = "extract-message"
	GoalCarouselCaption = "carousel-caption"
	GoalBrandVoice      = "brand-voice"
)

// Visual preferences.
const (
	VisualTextOnly        = "text-only"
	VisualBRollIdeas      = "b-roll-ideas"
	VisualCarouselPrompts = "carousel-prompts"
	VisualThumbnails      = "thumbnail-suggestions"
)

// PlatformConfig describes the publishing constraints of a target platform.
// The values feed the generation prompt verbatim.
type PlatformConfig struct {
	Name          string
	IdealDuration string
	Tone          string
	CaptionLimit  int
	HashtagLimit  int
	Description   string
}

// PlatformConfigs maps a target platform id to its publishing constraints.
var PlatformConfigs = map[string]PlatformConfig{
	"instagram": {
		Name:          "Instagram",
		IdealDuration: "15-60 seconds",
		Tone:          "Authentic + Visual-first",
		CaptionLimit:  2200,
		HashtagLimit:  30,
		Description:   "Short, engaging videos with strong visual appeal. Focus on the first 3 seconds to hook viewers.",
	},
	"youtube": {
		Name:          "YouTube",
		IdealDuration: "8-15 minutes (Shorts: 60 seconds)",
		Tone:          "In-depth + Educational",
		CaptionLimit:  5000,
		HashtagLimit:  15,
		Description:   "Longer-form content with detailed explanations. Optimize for search with keywords in title and description.",
	},
	"tiktok": {
		Name:          "TikTok",
		IdealDuration: "15-60 seconds",
		Tone:          "Energetic + Trend-focused",
		CaptionLimit:  2200,
		HashtagLimit:  30,
		Description:   "Fast-paced, trending content with immediate hooks. Use popular sounds and challenges.",
	},
	"linkedin": {
		Name:          "LinkedIn",
		IdealDuration: "30-90 seconds",
		Tone:          "Professional + Storytelling",
		CaptionLimit:  3000,
		HashtagLimit:  5,
		Description:   "Professional insights and thought leadership. Share lessons, experiences, and industry knowledge.",
	},
	"twitter": {
		Name:          "Twitter (X)",
		IdealDuration: "30-45 seconds",
		Tone:          "Concise + Conversational",
		CaptionLimit:  280,
		HashtagLimit:  2,
		Description:   "Quick, punchy content. Get to the point immediately and spark conversation.",
	},
}

type GenerateInput struct {
	Goal             string
	TargetPlatform   string
	Tone             string
	VisualPreference string
	TargetLanguage   string

	CustomInstructions string

	OriginalReelID     string
	OriginalTranscript string
	OriginalCaption    string
	OriginalHashtags   []string
}

type GenerateOutput struct {
	Content model.RepurposedContent
}

type ListInput struct {
	PagQuery paginator.PaginateQuery
}

type ListOutput struct {
	Contents   []model.RepurposedContent
	Pagination paginator.Paginator
}

type TranslateInput struct {
	Text           string
	TargetLanguage string
}

type TranslateOutput struct {
	TranslatedText   string
	TargetLanguage   string
	OriginalLength   int
	TranslatedLength int
}
