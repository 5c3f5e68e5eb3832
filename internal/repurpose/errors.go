package repurpose

import "errors"

var (
	ErrMissingFields     = errors.New("goal, target platform, tone, visual preference and transcript are required")
	ErrUnknownPlatform   = errors.New("unknown target platform")
	ErrTextRequired      = errors.New("text and target language are required")
	ErrGenerationFailed  = errors.New("content generation failed")
	ErrTranslationFailed = errors.New("translation failed")
)
