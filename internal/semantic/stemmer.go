package semantic

import (
	"fmt"
	"strings"

	porterstemmer "github.com/blevesearch/go-porterstemmer"
	"github.com/kljensen/snowball"
	"github.com/surgebase/porter2"

	wmerrors "github.com/standardbeagle/wordmodel/internal/errors"
)

// Stemmer reduces a lowercase word to its stem.
// The boolean result is false when the stemmer has no stem for the word, in
// which case callers drop the word.
type Stemmer interface {
	// Name is a stable identifier for the stemming rules in use
	Name() string
	Stem(word string) (string, bool)
}

// Wrapper is implemented by wrappers that record or filter words without
// changing the stems produced by the stemmer they wrap
type Wrapper interface {
	Underlying() Stemmer
}

// Supported stemming algorithms
const (
	AlgorithmPorter2  = "porter2"
	AlgorithmPorter   = "porter"
	AlgorithmSnowball = "snowball"
	AlgorithmNone     = "none"

	// IteratedPrefix selects the iterated variant of an algorithm, e.g. "iterated-porter"
	IteratedPrefix = "iterated-"
)

const maxIterations = 32

var validAlgorithms = map[string]bool{
	AlgorithmPorter2:  true,
	AlgorithmPorter:   true,
	AlgorithmSnowball: true,
	AlgorithmNone:     true,
}

// algorithmStemmer applies one of the library stemming algorithms after
// honouring an exclusion list and a minimum word length
type algorithmStemmer struct {
	algorithm  string
	minLength  int
	exclusions map[string]bool
}

// NewStemmer creates a stemmer for the named algorithm.
// Words shorter than minLength and excluded words are returned unchanged.
func NewStemmer(algorithm string, minLength int, exclusions map[string]bool) (Stemmer, error) {
	if algorithm == "" {
		algorithm = AlgorithmPorter2
	}
	if minLength < 0 {
		return nil, wmerrors.NewConfigError("stemmer.min_length", fmt.Sprint(minLength),
			fmt.Errorf("invalid min length: %d (must be >= 0)", minLength))
	}

	if base, ok := strings.CutPrefix(algorithm, IteratedPrefix); ok {
		stemmer, err := NewStemmer(base, minLength, exclusions)
		if err != nil {
			return nil, err
		}
		return Iterated(stemmer), nil
	}

	if !validAlgorithms[algorithm] {
		return nil, wmerrors.NewConfigError("stemmer.algorithm", algorithm,
			fmt.Errorf("invalid algorithm: %s (must be porter2, porter, snowball or none)", algorithm))
	}

	normalized := make(map[string]bool, len(exclusions))
	for word, excluded := range exclusions {
		if excluded {
			normalized[strings.ToLower(word)] = true
		}
	}

	return &algorithmStemmer{
		algorithm:  algorithm,
		minLength:  minLength,
		exclusions: normalized,
	}, nil
}

// Name returns the algorithm name
func (s *algorithmStemmer) Name() string {
	return s.algorithm
}

// Stem returns the stem of a word, or the word itself if it is excluded or too short
func (s *algorithmStemmer) Stem(word string) (string, bool) {
	if s.exclusions[word] || len(word) < s.minLength {
		return word, true
	}

	switch s.algorithm {
	case AlgorithmPorter2:
		return porter2.Stem(word), true
	case AlgorithmPorter:
		return porterstemmer.StemString(word), true
	case AlgorithmSnowball:
		stem, err := snowball.Stem(word, "english", false)
		if err != nil {
			return "", false
		}
		return stem, true
	default:
		return word, true
	}
}

// NoStemmer returns words as-is
type NoStemmer struct{}

// Name implements Stemmer
func (NoStemmer) Name() string { return "NoStemmer" }

// Stem implements Stemmer
func (NoStemmer) Stem(word string) (string, bool) { return word, true }

type iteratedStemmer struct {
	base Stemmer
}

// Iterated re-applies base to its own output until the stem stops changing.
// Words of two characters or fewer are never stemmed.
func Iterated(base Stemmer) Stemmer {
	return &iteratedStemmer{base: base}
}

func (s *iteratedStemmer) Name() string {
	return IteratedPrefix + s.base.Name()
}

func (s *iteratedStemmer) Stem(word string) (string, bool) {
	current := word
	for i := 0; i < maxIterations && len(current) > 2; i++ {
		next, ok := s.base.Stem(current)
		if !ok {
			if i == 0 {
				return "", false
			}
			break
		}
		if next == current {
			break
		}
		current = next
	}
	return current, true
}

type stopwordFilter struct {
	base      Stemmer
	stopwords map[string]struct{}
}

// StopwordFilter wraps base so that stopwords have no stem and are therefore
// dropped by the tokenizer
func StopwordFilter(base Stemmer, stopwords []string) Stemmer {
	set := make(map[string]struct{}, len(stopwords))
	for _, word := range stopwords {
		set[strings.ToLower(word)] = struct{}{}
	}
	return &stopwordFilter{base: base, stopwords: set}
}

func (s *stopwordFilter) Name() string {
	return s.base.Name()
}

func (s *stopwordFilter) Stem(word string) (string, bool) {
	if _, ok := s.stopwords[word]; ok {
		return "", false
	}
	return s.base.Stem(word)
}

func (s *stopwordFilter) Underlying() Stemmer {
	return s.base
}

// Unwrap strips recording and filtering wrappers from a stemmer
func Unwrap(stemmer Stemmer) Stemmer {
	for {
		wrapper, ok := stemmer.(Wrapper)
		if !ok {
			return stemmer
		}
		stemmer = wrapper.Underlying()
	}
}
