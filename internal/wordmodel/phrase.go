package wordmodel

import (
	"strings"

	"github.com/standardbeagle/wordmodel/internal/semantic"
)

// PhraseTrigram widens trigrams so that phrases neither start nor end on a
// stopword. Phrases do not overlap: scanning resumes after the right edge of
// the previous phrase and the left edge never reaches back past that point.
// One to two words left over at the end of a sentence form a final, shorter
// phrase, and a leftover run of only stopwords is dropped.
//
// Feature keys match when their word sequences are at most one edit apart.
type PhraseTrigram struct {
	stemmed
	stopwords *semantic.StopwordCache
}

// NewPhraseTrigram creates the extractor. A nil cache uses the default
// stopword list.
func NewPhraseTrigram(tokenizer semantic.Tokenizer, stemmer semantic.Stemmer, stopwords *semantic.StopwordCache) (*PhraseTrigram, error) {
	if err := requireStemmer(ModelPhraseTrigram, stemmer); err != nil {
		return nil, err
	}
	if stopwords == nil {
		stopwords = semantic.NewStopwordCache(nil)
	}
	return &PhraseTrigram{
		stemmed:   stemmed{tokenizer: tokenizer, stemmer: stemmer},
		stopwords: stopwords,
	}, nil
}

func (p *PhraseTrigram) Name() string { return ModelPhraseTrigram }

func (p *PhraseTrigram) Features(sentence string) []string {
	words := p.words(sentence)
	n := len(words)
	if n == 0 {
		return []string{}
	}
	if n <= 2 {
		return []string{strings.Join(words, " ")}
	}

	stop := make([]bool, n)
	for i, word := range words {
		stop[i] = p.stopwords.IsStemmedStopword(p.stemmer, word)
	}

	phrases := make([]string, 0, n/3+1)
	for i := 0; i < n; {
		first, last := phraseSpan(stop, i, i, min(i+2, n-1))
		if stop[first] && len(phrases) > 0 {
			// only stopwords remain
			break
		}
		phrases = append(phrases, strings.Join(words[first:last+1], " "))
		i = last + 1
	}
	return phrases
}

// phraseSpan widens [first, last] outward over stopwords, the left edge
// stopping at floor. An edge that ends up on a stopword at a boundary is
// pulled back inward while the span still holds another word.
func phraseSpan(stop []bool, floor, first, last int) (int, int) {
	for stop[last] && last < len(stop)-1 {
		last++
	}
	for stop[first] && first > floor {
		first--
	}
	for stop[first] && first < last {
		first++
	}
	for stop[last] && last > first {
		last--
	}
	return first, last
}

// Equal matches phrases whose word sequences differ by at most one word
func (p *PhraseTrigram) Equal(a, b string) bool {
	return semantic.SequenceDistance(strings.Fields(a), strings.Fields(b)) <= 1
}
