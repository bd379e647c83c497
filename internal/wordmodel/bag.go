package wordmodel

import (
	"github.com/standardbeagle/wordmodel/internal/semantic"
)

// BagOfWords uses every stemmed word as a feature
type BagOfWords struct {
	stemmed
}

// NewBagOfWords creates a bag-of-words extractor
func NewBagOfWords(tokenizer semantic.Tokenizer, stemmer semantic.Stemmer) (*BagOfWords, error) {
	if err := requireStemmer(ModelBagOfWords, stemmer); err != nil {
		return nil, err
	}
	return &BagOfWords{stemmed{tokenizer: tokenizer, stemmer: stemmer}}, nil
}

func (b *BagOfWords) Name() string { return ModelBagOfWords }

func (b *BagOfWords) Features(sentence string) []string {
	return b.words(sentence)
}

// BagOfUnstemmedWords uses every word as a feature without stemming.
// Feature spaces are larger and sparser than with BagOfWords.
type BagOfUnstemmedWords struct {
	tokenizer semantic.Tokenizer
}

// NewBagOfUnstemmedWords creates an extractor that needs no stemmer
func NewBagOfUnstemmedWords(tokenizer semantic.Tokenizer) *BagOfUnstemmedWords {
	return &BagOfUnstemmedWords{tokenizer: tokenizer}
}

func (b *BagOfUnstemmedWords) Name() string { return ModelBagOfUnstemmedWords }

func (b *BagOfUnstemmedWords) Features(sentence string) []string {
	return b.tokenizer.Words(sentence)
}
