package usecase

import (
	"regexp"
	"sort"
	"strings"

	"repurpose-srv/internal/analytics"
	"repurpose-srv/internal/model"
)

const maxTopKeywords = 10

var (
	hashtagTokenRegex = regexp.MustCompile(`#\w+`)
	nonWordRegex      = regexp.MustCompile(`[^\w\s]`)

	// Covers the common emoji blocks plus miscellaneous and dingbat symbols.
	emojiRegex = regexp.MustCompile(`[\x{1F600}-\x{1F64F}\x{1F300}-\x{1F5FF}\x{1F680}-\x{1F6FF}\x{1F700}-\x{1F77F}\x{1F780}-\x{1F7FF}\x{1F800}-\x{1F8FF}\x{1F900}-\x{1F9FF}\x{1FA00}-\x{1FA6F}\x{1FA70}-\x{1FAFF}\x{2600}-\x{26FF}\x{2700}-\x{27BF}]`)

	stopWords = map[string]struct{}{
		"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
		"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
		"from": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {},
		"been": {}, "being": {}, "have": {}, "has": {}, "had": {}, "do": {},
		"does": {}, "did": {}, "will": {}, "would": {}, "could": {}, "should": {},
		"may": {}, "might": {}, "can": {}, "this": {}, "that": {}, "these": {},
		"those": {}, "i": {}, "you": {}, "he": {}, "she": {}, "it": {}, "we": {},
		"they": {}, "my": {}, "your": {}, "his": {}, "her": {}, "its": {},
		"our": {}, "their": {},
	}

	callToActionWords = []string{
		"link", "bio", "comment", "follow", "subscribe",
		"click", "check", "visit", "shop", "buy",
	}
)

// analyzeCaptions summarizes writing patterns over the non-empty captions of
// the batch. Usage metrics are percentages of that caption set.
func analyzeCaptions(reels []model.Reel) analytics.CaptionReport {
	captions := make([]string, 0, len(reels))
	for _, reel := range reels {
		if len(reel.Caption) > 0 {
			captions = append(captions, reel.Caption)
		}
	}

	if len(captions) == 0 {
		return analytics.CaptionReport{
			TopKeywords:  []string{},
			CaptionStyle: analytics.CaptionStyleShort,
		}
	}

	totalLength := 0
	totalWords := 0
	emojiCount := 0
	questionCount := 0
	ctaCount := 0
	for _, caption := range captions {
		totalLength += charCount(caption)
		totalWords += len(splitWords(caption))
		emojiCount += len(emojiRegex.FindAllString(caption, -1))
		if strings.Contains(caption, "?") {
			questionCount++
		}
		lower := strings.ToLower(caption)
		for _, word := range callToActionWords {
			if strings.Contains(lower, word) {
				ctaCount++
				break
			}
		}
	}

	avgLength := roundMean(totalLength, len(captions))

	style := analytics.CaptionStyleShort
	if avgLength > 500 {
		style = analytics.CaptionStyleLong
	} else if avgLength > 150 {
		style = analytics.CaptionStyleMedium
	}

	return analytics.CaptionReport{
		AvgLength:         avgLength,
		AvgWordCount:      roundMean(totalWords, len(captions)),
		TopKeywords:       topKeywords(captions),
		CaptionStyle:      style,
		EmojiUsage:        roundMean(emojiCount*100, len(captions)),
		QuestionUsage:     roundMean(questionCount*100, len(captions)),
		CallToActionUsage: roundMean(ctaCount*100, len(captions)),
	}
}

// topKeywords extracts the most frequent meaningful words across all
// captions: hashtags and punctuation stripped, lowercased, stop words and
// short words dropped. Ties keep first-seen order.
func topKeywords(captions []string) []string {
	text := strings.ToLower(strings.Join(captions, " "))
	text = hashtagTokenRegex.ReplaceAllString(text, "")
	text = nonWordRegex.ReplaceAllString(text, "")

	freq := make(map[string]int)
	order := make([]string, 0)
	for _, word := range splitWords(text) {
		if len(word) <= 3 {
			continue
		}
		if _, skip := stopWords[word]; skip {
			continue
		}
		if _, seen := freq[word]; !seen {
			order = append(order, word)
		}
		freq[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})

	if len(order) > maxTopKeywords {
		order = order[:maxTopKeywords]
	}
	return order
}
