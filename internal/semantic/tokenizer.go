package semantic

import (
	"strings"
	"unicode"
)

// Tokenizer splits text into sentences and sentences into normalized words.
// Besides whitespace, camelCase and Hungarian notation are split into words,
// with runs of capitals kept together as a single acronym word.
type Tokenizer struct {
	// MinLength is the minimum word length a word needs before stemming is
	// attempted. Pure word splitting always keeps every non-empty word.
	MinLength int
	// PrepareAcronyms lowercases isolated capitals before splitting so that
	// HTTPServer yields "http" and "server" instead of one word per letter.
	PrepareAcronyms bool
}

// DefaultTokenizer stems every non-empty word and prepares acronyms
var DefaultTokenizer = Tokenizer{MinLength: 1, PrepareAcronyms: true}

// Sentences splits text on newlines and on periods followed by whitespace and
// an uppercase letter or digit. Splits falling inside open (), [] or {} are
// not committed; the fragment is merged into the growing sentence instead.
func (t Tokenizer) Sentences(text string) []string {
	fragments := splitFragments(text)
	sentences := make([]string, 0, len(fragments))

	var current strings.Builder
	balance := 0
	for _, fragment := range fragments {
		balance += bracketBalance(fragment)
		if balance > 0 {
			current.WriteString(fragment)
			current.WriteByte(' ')
			continue
		}
		current.WriteString(fragment)
		if sentence := current.String(); strings.TrimSpace(sentence) != "" {
			sentences = append(sentences, sentence)
		}
		current.Reset()
	}

	if tail := strings.TrimRight(current.String(), " "); strings.TrimSpace(tail) != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}

// Words returns the lowercase words of a sentence without stemming
func (t Tokenizer) Words(sentence string) []string {
	if t.PrepareAcronyms {
		sentence = PrepareAcronyms(sentence)
	}
	return splitWords(sentence, 1)
}

// StemWords splits a sentence and stems every word long enough to be
// stemmed. Words the stemmer reports no stem for are dropped.
func (t Tokenizer) StemWords(sentence string, stemmer Stemmer) []string {
	if t.PrepareAcronyms {
		sentence = PrepareAcronyms(sentence)
	}
	return stemAll(splitWords(sentence, t.MinLength), stemmer)
}

// StemWordsUnprepared is StemWords without acronym preparation
func (t Tokenizer) StemWordsUnprepared(sentence string, stemmer Stemmer) []string {
	return stemAll(splitWords(sentence, t.MinLength), stemmer)
}

// PrepareAcronyms lowercases every isolated capital: an uppercase letter whose
// left neighbour is missing, non-alphabetic or uppercase and whose right
// neighbour is missing, non-alphabetic or uppercase. Neighbours are always
// read from the original text.
func PrepareAcronyms(s string) string {
	runes := []rune(s)
	prepared := make([]rune, len(runes))
	copy(prepared, runes)

	for i, r := range runes {
		if !unicode.IsUpper(r) {
			continue
		}
		opensRun := i == 0 || !unicode.IsLetter(runes[i-1]) || unicode.IsUpper(runes[i-1])
		closesRun := i == len(runes)-1 || !unicode.IsLetter(runes[i+1]) || unicode.IsUpper(runes[i+1])
		if opensRun && closesRun {
			prepared[i] = unicode.ToLower(r)
		}
	}
	return string(prepared)
}

// MergeWords joins words with single spaces
func MergeWords(words []string) string {
	return strings.Join(words, " ")
}

func stemAll(words []string, stemmer Stemmer) []string {
	stems := make([]string, 0, len(words))
	for _, word := range words {
		if stem, ok := stemmer.Stem(word); ok {
			stems = append(stems, stem)
		}
	}
	return stems
}

// splitWords replaces everything outside [A-Za-z0-9 ] with a space, then
// breaks at spaces and before every uppercase letter
func splitWords(s string, minLength int) []string {
	words := make([]string, 0, 8)
	buffer := make([]byte, 0, 32)

	flush := func() {
		if len(buffer) > 0 && len(buffer) >= minLength {
			words = append(words, strings.ToLower(string(buffer)))
		}
		buffer = buffer[:0]
	}

	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			flush()
			buffer = append(buffer, byte(r))
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			buffer = append(buffer, byte(r))
		default:
			flush()
		}
	}
	flush()

	return words
}

// splitFragments cuts text at newlines and at ". " boundaries. The period and
// the whitespace after it are consumed by the split.
func splitFragments(text string) []string {
	var fragments []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			fragments = append(fragments, text[start:i])
			start = i + 1
		case '.':
			j := i + 1
			for j < len(text) && isSpace(text[j]) {
				j++
			}
			if j == i+1 {
				continue
			}
			if j == len(text) || isSentenceStart(text[j]) {
				fragments = append(fragments, text[start:i])
				start = j
				i = j - 1
			}
		}
	}
	if start < len(text) {
		fragments = append(fragments, text[start:])
	}
	return fragments
}

func bracketBalance(fragment string) int {
	balance := 0
	for i := 0; i < len(fragment); i++ {
		switch fragment[i] {
		case '(', '[', '{':
			balance++
		case ')', ']', '}':
			balance--
		}
	}
	return balance
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isSentenceStart(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
