package wordmodel

import (
	"fmt"
	"strings"

	wmerrors "github.com/standardbeagle/wordmodel/internal/errors"
	"github.com/standardbeagle/wordmodel/internal/semantic"
)

// DefaultWindow is the skip-gram window used when none is configured
const DefaultWindow = 5

// NGram groups N consecutive stems, e.g. ABCDEF gives the 4-grams ABCD, BCDE
// and CDEF. Sentences with fewer than N words give one feature holding every
// word.
type NGram struct {
	stemmed
	n int
}

// NewNGram creates an n-gram extractor; n must be at least 1
func NewNGram(tokenizer semantic.Tokenizer, stemmer semantic.Stemmer, n int) (*NGram, error) {
	if err := requireStemmer(ModelNGram, stemmer); err != nil {
		return nil, err
	}
	if err := requirePositive("ngram", n); err != nil {
		return nil, err
	}
	return &NGram{stemmed: stemmed{tokenizer: tokenizer, stemmer: stemmer}, n: n}, nil
}

func (g *NGram) Name() string { return fmt.Sprintf("%s-%d", ModelNGram, g.n) }

func (g *NGram) Features(sentence string) []string {
	return shrinkingGrams(g.words(sentence), g.n)
}

// shrinkingGrams is grams, except that too few words give a single feature
func shrinkingGrams(words []string, n int) []string {
	if len(words) == 0 {
		return []string{}
	}
	if len(words) < n {
		return []string{strings.Join(words, " ")}
	}
	return grams(words, n)
}

// MultiGram concatenates the 1-gram through N-gram features of a sentence
type MultiGram struct {
	stemmed
	n int
}

// NewMultiGram creates a multi-gram extractor; n must be at least 1
func NewMultiGram(tokenizer semantic.Tokenizer, stemmer semantic.Stemmer, n int) (*MultiGram, error) {
	if err := requireStemmer(ModelMultiGram, stemmer); err != nil {
		return nil, err
	}
	if err := requirePositive("ngram", n); err != nil {
		return nil, err
	}
	return &MultiGram{stemmed: stemmed{tokenizer: tokenizer, stemmer: stemmer}, n: n}, nil
}

func (g *MultiGram) Name() string { return fmt.Sprintf("%s-%d", ModelMultiGram, g.n) }

func (g *MultiGram) Features(sentence string) []string {
	words := g.words(sentence)
	features := make([]string, 0, len(words)*g.n)
	for n := 1; n <= g.n; n++ {
		features = append(features, shrinkingGrams(words, n)...)
	}
	return features
}

// Bigram groups every pair of consecutive stems. Unlike NGram with N=2, a
// single word gives no feature.
type Bigram struct {
	stemmed
}

// NewBigram creates a bigram extractor
func NewBigram(tokenizer semantic.Tokenizer, stemmer semantic.Stemmer) (*Bigram, error) {
	if err := requireStemmer(ModelBigram, stemmer); err != nil {
		return nil, err
	}
	return &Bigram{stemmed{tokenizer: tokenizer, stemmer: stemmer}}, nil
}

func (g *Bigram) Name() string { return ModelBigram }

func (g *Bigram) Features(sentence string) []string {
	return bigrams(g.words(sentence))
}

func bigrams(words []string) []string {
	if len(words) < 2 {
		return []string{}
	}
	out := make([]string, 0, len(words)-1)
	for i := 0; i+1 < len(words); i++ {
		out = append(out, words[i]+" "+words[i+1])
	}
	return out
}

// Skipgram pairs every stem with each of the next window stems
type Skipgram struct {
	stemmed
	window int
}

// NewSkipgram creates a skip-gram extractor; window must be at least 1
func NewSkipgram(tokenizer semantic.Tokenizer, stemmer semantic.Stemmer, window int) (*Skipgram, error) {
	if err := requireStemmer(ModelSkipgram, stemmer); err != nil {
		return nil, err
	}
	if err := requirePositive("window", window); err != nil {
		return nil, err
	}
	return &Skipgram{stemmed: stemmed{tokenizer: tokenizer, stemmer: stemmer}, window: window}, nil
}

func (g *Skipgram) Name() string { return fmt.Sprintf("%s-%d", ModelSkipgram, g.window) }

// Window returns the maximum distance between paired words
func (g *Skipgram) Window() int { return g.window }

func (g *Skipgram) Features(sentence string) []string {
	words := g.words(sentence)
	features := make([]string, 0, SkipgramCount(len(words), g.window))
	for i := 0; i < len(words)-1; i++ {
		for j := 0; j < g.window && i+j+1 < len(words); j++ {
			features = append(features, words[i]+" "+words[i+j+1])
		}
	}
	return features
}

// SkipgramCount is the number of features Skipgram yields for n words
func SkipgramCount(n, window int) int {
	count := 0
	for i := 0; i < n-1; i++ {
		count += min(window, n-1-i)
	}
	return count
}

// BigramWithoutStopwords removes stopwords, digit-led words and stems shorter
// than two characters, then groups the remaining stems into bigrams
type BigramWithoutStopwords struct {
	stemmed
	stopwords *semantic.StopwordCache
}

// NewBigramWithoutStopwords creates the extractor. A nil cache uses the
// default stopword list.
func NewBigramWithoutStopwords(tokenizer semantic.Tokenizer, stemmer semantic.Stemmer, stopwords *semantic.StopwordCache) (*BigramWithoutStopwords, error) {
	if err := requireStemmer(ModelBigramWithoutStopwords, stemmer); err != nil {
		return nil, err
	}
	if stopwords == nil {
		stopwords = semantic.NewStopwordCache(nil)
	}
	return &BigramWithoutStopwords{
		stemmed:   stemmed{tokenizer: tokenizer, stemmer: stemmer},
		stopwords: stopwords,
	}, nil
}

func (g *BigramWithoutStopwords) Name() string { return ModelBigramWithoutStopwords }

func (g *BigramWithoutStopwords) Features(sentence string) []string {
	words := g.words(sentence)
	kept := words[:0]
	for _, word := range words {
		if len(word) >= 2 && !g.stopwords.IsStemmedStopword(g.stemmer, word) {
			kept = append(kept, word)
		}
	}
	return bigrams(kept)
}

func requireStemmer(model string, stemmer semantic.Stemmer) error {
	if stemmer == nil {
		return wmerrors.NewConfigError("stemmer", "",
			fmt.Errorf("model %s requires a stemmer", model))
	}
	return nil
}

func requirePositive(field string, value int) error {
	if value < 1 {
		return wmerrors.NewConfigError(field, fmt.Sprint(value),
			fmt.Errorf("invalid %s: %d (must be >= 1)", field, value))
	}
	return nil
}
