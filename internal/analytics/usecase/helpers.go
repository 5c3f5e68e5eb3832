package usecase

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// splitWords splits on whitespace runs. Leading and trailing whitespace
// produce empty tokens, which keeps word counts consistent with how the
// clients have historically computed them.
func splitWords(s string) []string {
	return whitespaceRegex.Split(s, -1)
}

func roundToInt(f float64) int {
	return int(math.Round(f))
}

func roundMean(total, count int) int {
	if count == 0 {
		return 0
	}
	return roundToInt(float64(total) / float64(count))
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// charCount counts characters, not bytes, so multi-byte captions are not
// over-weighted.
func charCount(s string) int {
	return utf8.RuneCountInString(s)
}

// formatNumber renders an integer with comma thousands separators, e.g.
// 1234567 -> "1,234,567".
func formatNumber(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// formatFloat renders a float with the shortest decimal representation, so
// 15.5 prints as "15.5" and 15.0 as "15".
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
