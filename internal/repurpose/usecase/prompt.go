package usecase

import (
	"fmt"
	"strings"

	"repurpose-srv/internal/repurpose"
)

// buildSystemPrompt assembles the generation instructions from the platform
// constraints, the repurposing goal and the visual preference.
func buildSystemPrompt(input repurpose.GenerateInput, platform repurpose.PlatformConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are an expert content repurposing strategist specializing in social media optimization.

Platform: %s
Platform characteristics:
- Ideal Duration: %s
- Platform Tone: %s
- Caption Limit: %d characters
- Hashtag Limit: %d hashtags
- Description: %s

Desired Tone: %s
Visual Preference: %s

`, platform.Name, platform.IdealDuration, platform.Tone, platform.CaptionLimit,
		platform.HashtagLimit, platform.Description, input.Tone, input.VisualPreference)

	switch input.Goal {
	case repurpose.GoalRepostLanguage:
		targetLanguage := input.TargetLanguage
		if targetLanguage == "" {
			targetLanguage = "the target language"
		}
		fmt.Fprintf(&b, `Goal: Translate and adapt the content to %s.
- Maintain cultural relevance and idioms appropriate for the target language
- Adapt jokes, references, and examples to resonate with the target audience
- Keep the core message and value intact

`, targetLanguage)

	case repurpose.GoalCreateVersion:
		fmt.Fprintf(&b, `Goal: Create a %s version optimized for %s.
- Adapt the pacing to match platform expectations
- Restructure the hook and CTA for the platform
- Adjust content density based on ideal duration

`, platform.IdealDuration, platform.Name)

	case repurpose.GoalExtractMessage:
		b.WriteString(`Goal: Extract the key message and create a new script.
- Identify the core value proposition
- Create a fresh angle or perspective on the same topic
- Write a complete new script that conveys the same message differently

`)

	case repurpose.GoalCarouselCaption:
		b.WriteString(`Goal: Transform into a carousel post or caption format.
- Break down content into digestible slides (if carousel)
- Create engaging slide headlines
- Structure information for static visual consumption

`)

	case repurpose.GoalBrandVoice:
		b.WriteString(`Goal: Recreate in the user's brand voice.
- Adapt language, terminology, and style
- Maintain authenticity while covering the same topic
- Infuse personality and unique perspective

`)
	}

	switch input.VisualPreference {
	case repurpose.VisualTextOnly:
		b.WriteString("Visual: Provide text-only content with no visual suggestions.\n\n")
	case repurpose.VisualBRollIdeas:
		b.WriteString("Visual: Suggest 5-7 B-roll shot ideas that would accompany each section of the script.\n\n")
	case repurpose.VisualCarouselPrompts:
		b.WriteString("Visual: Create 5-10 carousel slide prompts with headlines and key points for each slide.\n\n")
	case repurpose.VisualThumbnails:
		b.WriteString("Visual: Provide 3-5 AI-generated thumbnail concepts with detailed descriptions for DALL-E or Midjourney.\n\n")
	}

	fmt.Fprintf(&b, `Format your response as a JSON object with the following structure:
{
  "script": "The repurposed script/content",
  "caption": "Social media caption (within %d chars)",
  "hashtags": ["hashtag1", "hashtag2", ...] (max %d),
  "duration": "Estimated duration",
  "visualSuggestions": [] // Array of visual suggestions based on preference
}`, platform.CaptionLimit, platform.HashtagLimit)

	return b.String()
}

// buildUserPrompt assembles the original content block.
func buildUserPrompt(input repurpose.GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Original Content:\n\nTranscript:\n%s\n\n", input.OriginalTranscript)

	if input.OriginalCaption != "" {
		fmt.Fprintf(&b, "Original Caption:\n%s\n\n", input.OriginalCaption)
	}

	if len(input.OriginalHashtags) > 0 {
		tags := make([]string, len(input.OriginalHashtags))
		for i, tag := range input.OriginalHashtags {
			tags[i] = "#" + tag
		}
		fmt.Fprintf(&b, "Original Hashtags:\n%s\n\n", strings.Join(tags, " "))
	}

	if input.CustomInstructions != "" {
		fmt.Fprintf(&b, "Custom Instructions:\n%s\n\n", input.CustomInstructions)
	}

	b.WriteString("Please repurpose this content according to the specifications above. Return a valid JSON object.")

	return b.String()
}
