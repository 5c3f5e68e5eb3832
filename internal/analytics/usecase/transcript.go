package usecase

import (
	"sort"
	"strings"

	"repurpose-srv/internal/analytics"
	"repurpose-srv/internal/model"
)

const (
	maxPhraseCandidates = 10
	maxKeyPhrases       = 8
	maxTopTopics        = 5

	// Reels run about 45 seconds, which turns word totals into words/second.
	assumedReelSeconds = 45
)

var (
	positiveWords = []string{
		"good", "great", "awesome", "amazing", "love",
		"best", "happy", "excellent", "perfect", "wonderful",
	}
	negativeWords = []string{
		"bad", "worst", "hate", "terrible", "awful",
		"poor", "sad", "angry", "frustrated", "disappointed",
	}
)

// analyzeTranscripts summarizes spoken content across the reels that carry a
// transcript.
func analyzeTranscripts(reels []model.Reel) analytics.TranscriptReport {
	transcripts := make([]string, 0, len(reels))
	for _, reel := range reels {
		if text := reel.Transcript.Text(); text != "" {
			transcripts = append(transcripts, text)
		}
	}

	if len(transcripts) == 0 {
		return analytics.TranscriptReport{
			TopTopics:  []string{},
			PaceStyle:  analytics.PaceStyleMedium,
			KeyPhrases: []string{},
		}
	}

	totalLength := 0
	for _, t := range transcripts {
		totalLength += charCount(t)
	}

	allText := strings.ToLower(strings.Join(transcripts, " "))
	words := splitWords(allText)
	phrases := topPhrases(words)

	keyPhrases := phrases
	if len(keyPhrases) > maxKeyPhrases {
		keyPhrases = keyPhrases[:maxKeyPhrases]
	}
	topTopics := phrases
	if len(topTopics) > maxTopTopics {
		topTopics = topTopics[:maxTopTopics]
	}

	return analytics.TranscriptReport{
		AvgLength:      roundMean(totalLength, len(transcripts)),
		TopTopics:      topTopics,
		SentimentScore: sentimentScore(allText),
		PaceStyle:      paceStyle(len(words), len(transcripts)),
		KeyPhrases:     keyPhrases,
	}
}

// topPhrases collects the most frequent adjacent word pairs, skipping very
// short phrases. The length check runs on the joined phrase, so the space
// between the words counts. Ties keep first-seen order.
func topPhrases(words []string) []string {
	freq := make(map[string]int)
	order := make([]string, 0)
	for i := 0; i+1 < len(words); i++ {
		phrase := words[i] + " " + words[i+1]
		if charCount(phrase) <= 5 {
			continue
		}
		if _, seen := freq[phrase]; !seen {
			order = append(order, phrase)
		}
		freq[phrase]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})

	if len(order) > maxPhraseCandidates {
		order = order[:maxPhraseCandidates]
	}
	return order
}

// sentimentScore is (positive - negative) / (positive + negative) over
// substring occurrence counts, 0 when neither polarity appears, rounded to
// two decimals.
func sentimentScore(text string) float64 {
	positive := 0
	for _, word := range positiveWords {
		positive += strings.Count(text, word)
	}
	negative := 0
	for _, word := range negativeWords {
		negative += strings.Count(text, word)
	}
	if positive+negative == 0 {
		return 0
	}
	return round2(float64(positive-negative) / float64(positive+negative))
}

func paceStyle(totalWords, transcriptCount int) string {
	avgWords := float64(totalWords) / float64(transcriptCount)
	wordsPerSecond := avgWords / assumedReelSeconds
	switch {
	case wordsPerSecond > 3:
		return analytics.PaceStyleFast
	case wordsPerSecond < 2:
		return analytics.PaceStyleSlow
	default:
		return analytics.PaceStyleMedium
	}
}
