package wordmodel

import (
	"strings"

	"github.com/standardbeagle/wordmodel/internal/debug"
	"github.com/standardbeagle/wordmodel/internal/semantic"
)

// Pipeline owns one Extractor and the Vocabulary its feature keys are indexed
// in. Vectors from one Pipeline are comparable with each other, never with
// vectors from another Pipeline.
type Pipeline struct {
	extractor  Extractor
	tokenizer  semantic.Tokenizer
	stopwords  *semantic.StopwordCache
	vocabulary *Vocabulary
}

// NewPipeline creates a pipeline with an empty vocabulary
func NewPipeline(extractor Extractor) *Pipeline {
	return &Pipeline{
		extractor:  extractor,
		tokenizer:  semantic.DefaultTokenizer,
		vocabulary: NewVocabulary(),
	}
}

// Extractor returns the extractor
func (p *Pipeline) Extractor() Extractor {
	return p.extractor
}

// Stemmer returns the stemmer of the extractor, or nil if it has none
func (p *Pipeline) Stemmer() semantic.Stemmer {
	if s, ok := p.extractor.(interface{ Stemmer() semantic.Stemmer }); ok {
		return s.Stemmer()
	}
	return nil
}

// Features returns the feature keys of one sentence
func (p *Pipeline) Features(sentence string) []string {
	return p.extractor.Features(sentence)
}

// TextFeatures splits text into sentences and concatenates their features
func (p *Pipeline) TextFeatures(text string) []string {
	var features []string
	for _, sentence := range p.tokenizer.Sentences(text) {
		features = append(features, p.extractor.Features(sentence)...)
	}
	if features == nil {
		return []string{}
	}
	return features
}

// FeatureVector extracts a sentence and returns its presence vector. New
// feature keys are added to the vocabulary first, so the vector is as long as
// the vocabulary after the call.
func (p *Pipeline) FeatureVector(sentence string) []float64 {
	return p.vectorize(p.Features(sentence))
}

// TextVector is FeatureVector over every sentence of text
func (p *Pipeline) TextVector(text string) []float64 {
	return p.vectorize(p.TextFeatures(text))
}

// Vector returns the presence vector of features already extracted by this
// pipeline, growing the vocabulary as needed
func (p *Pipeline) Vector(features []string) []float64 {
	return p.vectorize(features)
}

func (p *Pipeline) vectorize(features []string) []float64 {
	before := p.vocabulary.Len()
	ids := make([]int, len(features))
	for i, feature := range features {
		ids[i] = p.vocabulary.Assign(feature)
	}
	if grown := p.vocabulary.Len() - before; grown > 0 {
		debug.LogPipeline("%s: vocabulary grew by %d to %d", p.extractor.Name(), grown, p.vocabulary.Len())
	}

	vector := make([]float64, p.vocabulary.Len())
	for _, id := range ids {
		vector[id] = 1
	}
	return vector
}

// VectorToSentence joins the feature keys of every non-zero component of
// vector in id order
func (p *Pipeline) VectorToSentence(vector []float64) string {
	keys := make([]string, 0, len(vector))
	for id, value := range vector {
		if value == 0 {
			continue
		}
		if key, ok := p.vocabulary.Key(id); ok {
			keys = append(keys, key)
		}
	}
	return strings.Join(keys, " ")
}

// Len returns the current vocabulary size
func (p *Pipeline) Len() int {
	return p.vocabulary.Len()
}

// Keys returns the vocabulary in id order
func (p *Pipeline) Keys() []string {
	return p.vocabulary.Keys()
}

// Equal reports whether two feature keys match under the extractor's rules
func (p *Pipeline) Equal(a, b string) bool {
	return Equal(p.extractor, a, b)
}

// Interpret maps each feature key back to the words most often seen for its
// stems. ok is false when the stemmer does not record words. Stems never seen
// are kept as they are.
func (p *Pipeline) Interpret(features []string) (words []string, ok bool) {
	invertible, ok := p.Stemmer().(*semantic.InvertibleStemmer)
	if !ok {
		return nil, false
	}

	words = make([]string, len(features))
	for i, feature := range features {
		stems := strings.Fields(feature)
		best := invertible.BestInterpretations(stems)
		for j, word := range best {
			if word == "" {
				best[j] = stems[j]
			}
		}
		words[i] = strings.Join(best, " ")
	}
	return words, true
}

// Reset starts a new session: the vocabulary, the stopword cache and any
// recorded stem interpretations are cleared
func (p *Pipeline) Reset() {
	p.vocabulary.Reset()
	if p.stopwords != nil {
		p.stopwords.Reset()
	}
	if invertible, ok := p.Stemmer().(*semantic.InvertibleStemmer); ok {
		invertible.Reset()
	}
	debug.LogPipeline("%s: reset", p.extractor.Name())
}
