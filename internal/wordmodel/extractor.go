// Package wordmodel converts sentences into feature keys and feature keys into
// presence vectors.
//
// An Extractor turns one sentence into a sequence of feature keys (stems,
// n-grams of stems, lexical expansions). A Pipeline owns one Extractor and the
// Vocabulary that assigns each feature key a stable integer id, so that
// sentences can be compared as vectors:
//
//	pipeline, _ := wordmodel.New(wordmodel.Options{Model: wordmodel.ModelBagOfWords, Stemmer: stemmer})
//	a := pipeline.FeatureVector("getActionSheetPanes")
//	b := pipeline.FeatureVector("getActionToPanes")
//	score := wordmodel.Cosine(a, b)
//
// Pipelines are not safe for concurrent use.
package wordmodel

import (
	"strings"

	"github.com/standardbeagle/wordmodel/internal/semantic"
)

// Extractor converts a sentence into feature keys.
// Duplicate keys are kept; an empty sentence yields no keys.
type Extractor interface {
	Name() string
	Features(sentence string) []string
}

// Equaler is implemented by extractors whose feature keys match on something
// looser than exact string equality
type Equaler interface {
	Equal(a, b string) bool
}

// Equal reports whether two feature keys of ex match. Extractors that do not
// implement Equaler compare exactly; empty keys never match.
func Equal(ex Extractor, a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if eq, ok := ex.(Equaler); ok {
		return eq.Equal(a, b)
	}
	return a == b
}

// stemmed holds the collaborators shared by every stemming extractor
type stemmed struct {
	tokenizer semantic.Tokenizer
	stemmer   semantic.Stemmer
}

func (s stemmed) words(sentence string) []string {
	return s.tokenizer.StemWords(sentence, s.stemmer)
}

// Stemmer returns the stemmer the extractor was built with
func (s stemmed) Stemmer() semantic.Stemmer {
	return s.stemmer
}

// grams joins every run of n consecutive words
func grams(words []string, n int) []string {
	if n <= 0 || len(words) < n {
		return []string{}
	}
	out := make([]string, 0, len(words)-n+1)
	for i := 0; i+n <= len(words); i++ {
		out = append(out, strings.Join(words[i:i+n], " "))
	}
	return out
}
