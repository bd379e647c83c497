package semantic

import (
	"strings"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

const privateUseStart rune = 0xE000

// Distance returns the Levenshtein distance between two strings, counted in
// runes with unit insertion, deletion and substitution costs
func Distance(a, b string) int {
	return edlib.LevenshteinDistance(a, b)
}

// Similarity converts Distance into a score in [0,1]:
// 1 - distance/max(len(a), len(b)). Two empty strings are fully similar.
func Similarity(a, b string) float64 {
	maxLen := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(Distance(a, b))/float64(maxLen)
}

// SequenceDistance is the Levenshtein distance over token sequences.
// Tokens are compared as whole words, ignoring case.
func SequenceDistance(a, b []string) int {
	symbols := make(map[string]rune, len(a)+len(b))
	return edlib.LevenshteinDistance(encodeTokens(a, symbols), encodeTokens(b, symbols))
}

// encodeTokens maps each distinct lowercased token to one rune, starting at
// the private use area, so edlib's rune distance counts whole tokens
func encodeTokens(tokens []string, symbols map[string]rune) string {
	var sb strings.Builder
	for _, token := range tokens {
		key := strings.ToLower(token)
		r, ok := symbols[key]
		if !ok {
			r = privateUseStart + rune(len(symbols))
			symbols[key] = r
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// SequenceSimilarity converts SequenceDistance into a score in [0,1].
// Unlike Similarity, an empty sequence on either side scores 0.
func SequenceSimilarity(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	maxLen := max(len(a), len(b))
	return 1.0 - float64(SequenceDistance(a, b))/float64(maxLen)
}
